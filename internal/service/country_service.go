package service

import (
	"database/sql"
	"errors"

	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/repository"
)

// CountryService содержит бизнес-логику, связанную с посещенными странами.
type CountryService struct {
	countryRepo *repository.CountryRepository
}

// NewCountryService создает новый сервис стран.
func NewCountryService(countryRepo *repository.CountryRepository) *CountryService {
	return &CountryService{countryRepo: countryRepo}
}

// AddCountry добавляет страну к поездке.
func (s *CountryService) AddCountry(code, name string, tripID int) (*model.Country, error) {
	country := &model.Country{Code: code, Name: name, TripID: tripID}
	id, err := s.countryRepo.Create(country)
	if err != nil {
		return nil, err
	}
	country.ID = id
	return country, nil
}

// DeleteCountry удаляет страну, предварительно убедившись, что она
// принадлежит указанной поездке. Страна чужой поездки - ErrCountryNotFound,
// удаление не выполняется.
func (s *CountryService) DeleteCountry(countryID, tripID int) error {
	if _, err := s.countryRepo.GetByIDInTrip(countryID, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCountryNotFound
		}
		return err
	}
	return s.countryRepo.Delete(countryID)
}
