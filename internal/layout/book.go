package layout

// Идентификаторы секции и блока, синтезируемых для поездки без
// сохраненного макета.
const (
	defaultSectionID    = "main"
	defaultSectionTitle = "Trip Memories"
	defaultBlockID      = "default"
)

// DefaultSections синтезирует книгу по умолчанию для поездки без макета:
// одна секция с одним triple-блоком, содержащим все фотографии в переданном
// порядке, и по одному текстовому блоку на каждую заметку.
func DefaultSections(photos []PhotoStub, notes []NoteStub) []Section {
	if photos == nil {
		photos = []PhotoStub{}
	}
	content := []Block{{ID: defaultBlockID, Type: BlockTriple, Photos: photos}}
	for _, n := range notes {
		content = append(content, Block{ID: n.ID, Type: n.Type, Content: n.Content, Date: n.Date})
	}
	return []Section{{ID: defaultSectionID, Title: defaultSectionTitle, Content: content}}
}

// SplitWidths вычисляет относительные ширины колонок double-блока (в
// процентах) пропорционально соотношениям сторон двух фотографий. Пока
// хотя бы одно соотношение неизвестно (<= 0), возвращает поровну 50/50.
func SplitWidths(ratio1, ratio2 float64) (float64, float64) {
	if ratio1 <= 0 || ratio2 <= 0 {
		return 50, 50
	}
	total := ratio1 + ratio2
	return ratio1 / total * 100, ratio2 / total * 100
}
