package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

// NoteRepository обеспечивает доступ к заметкам поездок в базе данных.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create сохраняет новую заметку; дату проставляет база. Возвращает ID и дату.
func (r *NoteRepository) Create(note *model.Note) error {
	query := `INSERT INTO notes (content, type, trip_id) VALUES ($1, $2, $3) RETURNING id, date`
	err := r.db.QueryRow(query, note.Content, note.Type, note.TripID).Scan(&note.ID, &note.Date)
	if err != nil {
		return fmt.Errorf("не удалось создать заметку: %w", err)
	}
	return nil
}

// ListByTrip возвращает заметки поездки, новые (по дате) первыми.
func (r *NoteRepository) ListByTrip(tripID int) ([]model.Note, error) {
	notes := []model.Note{}
	err := r.db.Select(&notes, "SELECT * FROM notes WHERE trip_id=$1 ORDER BY date DESC", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении заметок поездки: %w", err)
	}
	return notes, nil
}

// DeleteInTrip удаляет заметку, только если она принадлежит указанной
// поездке. Возвращает true, если запись была удалена.
func (r *NoteRepository) DeleteInTrip(noteID, tripID int) (bool, error) {
	res, err := r.db.Exec("DELETE FROM notes WHERE id=$1 AND trip_id=$2", noteID, tripID)
	if err != nil {
		return false, fmt.Errorf("не удалось удалить заметку: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
