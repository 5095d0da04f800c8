package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

// TripRepository обеспечивает доступ к данным поездок в базе данных.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий поездок.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create создает новую поездку. Возвращает ID созданной записи.
func (r *TripRepository) Create(trip *model.Trip) (int, error) {
	query := `INSERT INTO trips (title, description, location, start_date, end_date, user_id, share_link)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int
	err := r.db.QueryRow(query, trip.Title, trip.Description, trip.Location,
		trip.StartDate, trip.EndDate, trip.UserID, trip.ShareLink).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать поездку: %w", err)
	}
	return id, nil
}

// GetByID возвращает поездку по идентификатору.
func (r *TripRepository) GetByID(id int) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, "SELECT * FROM trips WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetByShareLink возвращает поездку по токену публичной ссылки.
func (r *TripRepository) GetByShareLink(shareLink string) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, "SELECT * FROM trips WHERE share_link=$1", shareLink)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListByUser возвращает все поездки пользователя, новые (по дате начала) первыми.
func (r *TripRepository) ListByUser(userID string) ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips, "SELECT * FROM trips WHERE user_id=$1 ORDER BY start_date DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка поездок: %w", err)
	}
	return trips, nil
}
