package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

// PhotoRepository обеспечивает доступ к данным фотографий в базе данных.
type PhotoRepository struct {
	db *sqlx.DB
}

// NewPhotoRepository создает новый репозиторий фотографий.
func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create сохраняет новую фотографию поездки. Возвращает ID и время создания.
func (r *PhotoRepository) Create(photo *model.Photo) error {
	query := `INSERT INTO photos (url, caption, taken_at, trip_id)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.db.QueryRow(query, photo.URL, photo.Caption, photo.TakenAt, photo.TripID).
		Scan(&photo.ID, &photo.CreatedAt)
	if err != nil {
		return fmt.Errorf("не удалось сохранить фотографию: %w", err)
	}
	return nil
}

// ListByTrip возвращает фотографии поездки, новые первыми.
func (r *PhotoRepository) ListByTrip(tripID int) ([]model.Photo, error) {
	photos := []model.Photo{}
	err := r.db.Select(&photos, "SELECT * FROM photos WHERE trip_id=$1 ORDER BY created_at DESC", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении фотографий поездки: %w", err)
	}
	return photos, nil
}

// UpdateOrder применяет новый порядок фотографий одной транзакцией:
// либо обновляются все перечисленные позиции, либо ни одна. Каждое
// обновление дополнительно фильтруется по trip_id, чтобы нельзя было
// переставить фото чужой поездки.
func (r *PhotoRepository) UpdateOrder(tripID int, orders []model.PhotoOrder) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, o := range orders {
		_, err := tx.Exec("UPDATE photos SET order_index=$1 WHERE id=$2 AND trip_id=$3", o.Order, o.ID, tripID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("не удалось обновить порядок фотографий: %w", err)
		}
	}
	return tx.Commit()
}
