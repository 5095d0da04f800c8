package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

// CountryRepository обеспечивает доступ к данным посещенных стран в базе данных.
type CountryRepository struct {
	db *sqlx.DB
}

// NewCountryRepository создает новый репозиторий стран.
func NewCountryRepository(db *sqlx.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

// Create добавляет страну к поездке. Возвращает ID созданной записи.
func (r *CountryRepository) Create(country *model.Country) (int, error) {
	query := `INSERT INTO countries (code, name, trip_id) VALUES ($1, $2, $3) RETURNING id`
	var id int
	err := r.db.QueryRow(query, country.Code, country.Name, country.TripID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось добавить страну: %w", err)
	}
	return id, nil
}

// ListByTrip возвращает все страны поездки.
func (r *CountryRepository) ListByTrip(tripID int) ([]model.Country, error) {
	countries := []model.Country{}
	err := r.db.Select(&countries, "SELECT * FROM countries WHERE trip_id=$1", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка стран: %w", err)
	}
	return countries, nil
}

// GetByIDInTrip возвращает страну по идентификатору, только если она
// принадлежит указанной поездке (sql.ErrNoRows в противном случае).
func (r *CountryRepository) GetByIDInTrip(countryID, tripID int) (*model.Country, error) {
	var country model.Country
	err := r.db.Get(&country, "SELECT * FROM countries WHERE id=$1 AND trip_id=$2", countryID, tripID)
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// Delete удаляет страну по идентификатору.
func (r *CountryRepository) Delete(countryID int) error {
	_, err := r.db.Exec("DELETE FROM countries WHERE id=$1", countryID)
	if err != nil {
		return fmt.Errorf("не удалось удалить страну: %w", err)
	}
	return nil
}
