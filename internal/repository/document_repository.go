package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

// DocumentRepository обеспечивает доступ к документам поездок в базе данных.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository создает новый репозиторий документов.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create сохраняет новый документ поездки. Возвращает ID и время создания.
func (r *DocumentRepository) Create(doc *model.Document) error {
	query := `INSERT INTO documents (name, url, trip_id) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRow(query, doc.Name, doc.URL, doc.TripID).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("не удалось сохранить документ: %w", err)
	}
	return nil
}

// ListByTrip возвращает все документы поездки.
func (r *DocumentRepository) ListByTrip(tripID int) ([]model.Document, error) {
	documents := []model.Document{}
	err := r.db.Select(&documents, "SELECT * FROM documents WHERE trip_id=$1", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении документов поездки: %w", err)
	}
	return documents, nil
}
