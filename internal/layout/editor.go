package layout

import "github.com/google/uuid"

// NoteStub - заметка поездки в том виде, в котором она попадает в документ
// (текстовый блок quote/summary с содержимым и датой).
type NoteStub struct {
	ID      string
	Type    BlockType
	Content string
	Date    string
}

// Editor реализует конечный автомат редактирования документа: держит
// текущий массив секций и применяет к нему структурные мутации. Каждая
// мутация строит новый массив (copy-on-write), после чего вызывающая
// сторона целиком сохраняет Sections() через обработчик макета.
type Editor struct {
	sections []Section
}

// NewEditor создает редактор поверх последнего сохраненного документа
// (nil - пустая книга).
func NewEditor(initial []Section) *Editor {
	sections := make([]Section, len(initial))
	copy(sections, initial)
	return &Editor{sections: sections}
}

// Sections возвращает текущее состояние документа.
func (e *Editor) Sections() []Section {
	return e.sections
}

// AddSection добавляет пустую секцию в конец книги и возвращает ее.
func (e *Editor) AddSection(title string) Section {
	section := Section{ID: uuid.NewString(), Title: title, Content: []Block{}}
	e.sections = InsertAt(e.sections, len(e.sections), section)
	return section
}

// RemoveSection удаляет секцию по идентификатору; неизвестный id - no-op.
func (e *Editor) RemoveSection(sectionID string) {
	if i := e.sectionIndex(sectionID); i >= 0 {
		e.sections = RemoveAt(e.sections, i)
	}
}

// MoveSectionUp поднимает секцию на одну позицию; первая секция - no-op.
func (e *Editor) MoveSectionUp(sectionID string) {
	e.sections = MoveUp(e.sections, e.sectionIndex(sectionID))
}

// MoveSectionDown опускает секцию на одну позицию; последняя секция - no-op.
func (e *Editor) MoveSectionDown(sectionID string) {
	e.sections = MoveDown(e.sections, e.sectionIndex(sectionID))
}

// AddPhotoGroup добавляет в конец секции пустую фотогруппу указанного типа
// (single/double/triple) и возвращает ее. Для текстовых типов и неизвестной
// секции возвращает пустой блок и false.
func (e *Editor) AddPhotoGroup(sectionID string, t BlockType) (Block, bool) {
	block := Block{ID: uuid.NewString(), Type: t, Photos: []PhotoStub{}}
	if !block.IsPhotoGroup() {
		return Block{}, false
	}
	if !e.updateSection(sectionID, func(s *Section) {
		s.Content = InsertAt(s.Content, len(s.Content), block)
	}) {
		return Block{}, false
	}
	return block, true
}

// AddNotes добавляет выбранные заметки в конец секции, по одному текстовому
// блоку на заметку.
func (e *Editor) AddNotes(sectionID string, notes []NoteStub) {
	e.updateSection(sectionID, func(s *Section) {
		content := s.Content
		for _, n := range notes {
			block := Block{ID: uuid.NewString(), Type: n.Type, Content: n.Content, Date: n.Date}
			content = InsertAt(content, len(content), block)
		}
		s.Content = content
	})
}

// AddPhotos дописывает фотографии в фотогруппу, обрезая выбор до остатка
// вместимости блока (1/2/3 в зависимости от типа). Лишние фото молча
// отбрасываются.
func (e *Editor) AddPhotos(sectionID, blockID string, photos []PhotoStub) {
	e.updateBlock(sectionID, blockID, func(b *Block) {
		if !b.IsPhotoGroup() {
			return
		}
		merged := make([]PhotoStub, 0, len(b.Photos)+len(photos))
		merged = append(merged, b.Photos...)
		merged = append(merged, photos...)
		if limit := b.Capacity(); len(merged) > limit {
			merged = merged[:limit]
		}
		b.Photos = merged
	})
}

// RemovePhoto убирает фотографию из фотогруппы по идентификатору фото.
func (e *Editor) RemovePhoto(sectionID, blockID string, photoID int) {
	e.updateBlock(sectionID, blockID, func(b *Block) {
		if !b.IsPhotoGroup() {
			return
		}
		photos := make([]PhotoStub, 0, len(b.Photos))
		for _, p := range b.Photos {
			if p.ID != photoID {
				photos = append(photos, p)
			}
		}
		b.Photos = photos
	})
}

// RemoveBlock удаляет блок контента из секции.
func (e *Editor) RemoveBlock(sectionID, blockID string) {
	e.updateSection(sectionID, func(s *Section) {
		if i := blockIndex(s.Content, blockID); i >= 0 {
			s.Content = RemoveAt(s.Content, i)
		}
	})
}

// MoveBlockUp поднимает блок внутри секции; первый блок - no-op.
func (e *Editor) MoveBlockUp(sectionID, blockID string) {
	e.updateSection(sectionID, func(s *Section) {
		s.Content = MoveUp(s.Content, blockIndex(s.Content, blockID))
	})
}

// MoveBlockDown опускает блок внутри секции; последний блок - no-op.
func (e *Editor) MoveBlockDown(sectionID, blockID string) {
	e.updateSection(sectionID, func(s *Section) {
		s.Content = MoveDown(s.Content, blockIndex(s.Content, blockID))
	})
}

// UnusedPhotos возвращает фотографии из пула, еще не занятые ни одной
// фотогруппой документа. Именно этот список предлагает модальное окно
// выбора контента.
func (e *Editor) UnusedPhotos(all []PhotoStub) []PhotoStub {
	used := UsedPhotoIDs(e.sections)
	unused := make([]PhotoStub, 0, len(all))
	for _, p := range all {
		if _, ok := used[p.ID]; !ok {
			unused = append(unused, p)
		}
	}
	return unused
}

func (e *Editor) sectionIndex(sectionID string) int {
	for i, s := range e.sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}

func blockIndex(blocks []Block, blockID string) int {
	for i, b := range blocks {
		if b.ID == blockID {
			return i
		}
	}
	return -1
}

// updateSection применяет мутацию к копии найденной секции и подменяет ею
// массив секций. Возвращает false, если секция не найдена.
func (e *Editor) updateSection(sectionID string, mutate func(*Section)) bool {
	i := e.sectionIndex(sectionID)
	if i < 0 {
		return false
	}
	sections := make([]Section, len(e.sections))
	copy(sections, e.sections)
	section := sections[i]
	mutate(&section)
	sections[i] = section
	e.sections = sections
	return true
}

func (e *Editor) updateBlock(sectionID, blockID string, mutate func(*Block)) {
	e.updateSection(sectionID, func(s *Section) {
		i := blockIndex(s.Content, blockID)
		if i < 0 {
			return
		}
		content := make([]Block, len(s.Content))
		copy(content, s.Content)
		block := content[i]
		mutate(&block)
		content[i] = block
		s.Content = content
	})
}
