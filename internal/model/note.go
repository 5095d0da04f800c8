package model

import "time"

// Типы заметок: цитата и итог поездки.
const (
	NoteTypeQuote   = "quote"
	NoteTypeSummary = "summary"
)

// Note представляет текстовую заметку поездки (цитату или итог).
type Note struct {
	ID      int       `db:"id" json:"id"`
	Content string    `db:"content" json:"content"`
	Type    string    `db:"type" json:"type"`
	Date    time.Time `db:"date" json:"date"`
	TripID  int       `db:"trip_id" json:"tripId"`
}
