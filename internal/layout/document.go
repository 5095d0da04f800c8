// Package layout реализует модель документа макета фотокниги: дерево
// "секции -> блоки контента", которое клиент редактирует целиком и которое
// хранится в базе как один JSON-документ на поездку.
package layout

import (
	"encoding/json"
	"fmt"
)

// BlockType - дискриминатор блока контента внутри секции.
type BlockType string

// Допустимые типы блоков. Первые три - фотогруппы с вместимостью 1/2/3,
// последние два - текстовые блоки.
const (
	BlockSingle  BlockType = "single"
	BlockDouble  BlockType = "double"
	BlockTriple  BlockType = "triple"
	BlockQuote   BlockType = "quote"
	BlockSummary BlockType = "summary"
)

// PhotoStub - денормализованная копия фотографии внутри фотогруппы.
// Ссылочная целостность с живыми строками photos не поддерживается:
// блок может ссылаться на уже удаленное фото.
type PhotoStub struct {
	ID      int    `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	TakenAt string `json:"takenAt,omitempty"`
}

// Block - блок контента секции: размеченное объединение фотогруппы
// (single/double/triple, массив photos) и текстового блока
// (quote/summary, content + date). Заполнены только поля своего варианта.
type Block struct {
	ID      string
	Type    BlockType
	Photos  []PhotoStub // только для фотогрупп
	Content string      // только для текстовых блоков
	Date    string      // только для текстовых блоков
}

// Section - именованная секция фотокниги с упорядоченным списком блоков.
type Section struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content []Block `json:"content"`
}

// IsPhotoGroup сообщает, является ли блок фотогруппой.
func (b Block) IsPhotoGroup() bool {
	return b.Type == BlockSingle || b.Type == BlockDouble || b.Type == BlockTriple
}

// IsText сообщает, является ли блок текстовым (цитата или итог).
func (b Block) IsText() bool {
	return b.Type == BlockQuote || b.Type == BlockSummary
}

// Capacity возвращает вместимость фотогруппы (1/2/3) или 0 для текстовых блоков.
func (b Block) Capacity() int {
	switch b.Type {
	case BlockSingle:
		return 1
	case BlockDouble:
		return 2
	case BlockTriple:
		return 3
	default:
		return 0
	}
}

type photoGroupJSON struct {
	ID     string      `json:"id"`
	Type   BlockType   `json:"type"`
	Photos []PhotoStub `json:"photos"`
}

type textBlockJSON struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
	Date    string    `json:"date"`
}

// UnmarshalJSON разбирает блок по дискриминатору type. Неизвестный тип или
// отсутствие обязательных полей варианта - ошибка схемы, текст которой
// возвращается клиенту в ответе 400.
func (b *Block) UnmarshalJSON(data []byte) error {
	var head struct {
		ID   string    `json:"id"`
		Type BlockType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	switch head.Type {
	case BlockSingle, BlockDouble, BlockTriple:
		var pg struct {
			Photos *[]PhotoStub `json:"photos"`
		}
		if err := json.Unmarshal(data, &pg); err != nil {
			return err
		}
		if pg.Photos == nil {
			return fmt.Errorf("блок %q: фотогруппа типа %q без поля photos", head.ID, head.Type)
		}
		*b = Block{ID: head.ID, Type: head.Type, Photos: *pg.Photos}
		return nil
	case BlockQuote, BlockSummary:
		var tb struct {
			Content *string `json:"content"`
			Date    *string `json:"date"`
		}
		if err := json.Unmarshal(data, &tb); err != nil {
			return err
		}
		if tb.Content == nil || tb.Date == nil {
			return fmt.Errorf("блок %q: текстовый блок типа %q без полей content/date", head.ID, head.Type)
		}
		*b = Block{ID: head.ID, Type: head.Type, Content: *tb.Content, Date: *tb.Date}
		return nil
	default:
		return fmt.Errorf("блок %q: недопустимый тип контента %q", head.ID, head.Type)
	}
}

// MarshalJSON сериализует только поля варианта, соответствующего типу блока,
// чтобы сохраненный документ совпадал с тем, что прислал клиент.
func (b Block) MarshalJSON() ([]byte, error) {
	switch {
	case b.IsPhotoGroup():
		photos := b.Photos
		if photos == nil {
			photos = []PhotoStub{}
		}
		return json.Marshal(photoGroupJSON{ID: b.ID, Type: b.Type, Photos: photos})
	case b.IsText():
		return json.Marshal(textBlockJSON{ID: b.ID, Type: b.Type, Content: b.Content, Date: b.Date})
	default:
		return nil, fmt.Errorf("блок %q: недопустимый тип контента %q", b.ID, b.Type)
	}
}

// ValidateSections проверяет документ на соответствие схеме после разбора:
// у каждой секции должен присутствовать список content, каждый блок -
// принадлежать одному из допустимых вариантов. Вместимость фотогрупп здесь
// намеренно не проверяется: документ по умолчанию кладет все фото поездки
// в один triple-блок.
func ValidateSections(sections []Section) error {
	for _, s := range sections {
		if s.Content == nil {
			return fmt.Errorf("секция %q: отсутствует поле content", s.ID)
		}
		for _, b := range s.Content {
			if !b.IsPhotoGroup() && !b.IsText() {
				return fmt.Errorf("блок %q: недопустимый тип контента %q", b.ID, b.Type)
			}
		}
	}
	return nil
}

// UsedPhotoIDs собирает идентификаторы всех фотографий, на которые ссылается
// хотя бы одна фотогруппа документа.
func UsedPhotoIDs(sections []Section) map[int]struct{} {
	used := make(map[int]struct{})
	for _, s := range sections {
		for _, b := range s.Content {
			if !b.IsPhotoGroup() {
				continue
			}
			for _, p := range b.Photos {
				used[p.ID] = struct{}{}
			}
		}
	}
	return used
}
