package service

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/repository"
)

// TripService содержит бизнес-логику, связанную с поездками, включая
// единую проверку владения, которой пользуются все остальные обработчики.
type TripService struct {
	tripRepo     *repository.TripRepository
	photoRepo    *repository.PhotoRepository
	documentRepo *repository.DocumentRepository
	countryRepo  *repository.CountryRepository
}

// NewTripService создает новый сервис поездок.
func NewTripService(tripRepo *repository.TripRepository, photoRepo *repository.PhotoRepository,
	documentRepo *repository.DocumentRepository, countryRepo *repository.CountryRepository) *TripService {
	return &TripService{
		tripRepo:     tripRepo,
		photoRepo:    photoRepo,
		documentRepo: documentRepo,
		countryRepo:  countryRepo,
	}
}

// CreateTrip создает поездку владельца, генерируя токен публичной ссылки.
func (s *TripService) CreateTrip(trip *model.Trip) (*model.Trip, error) {
	trip.ShareLink = uuid.NewString()
	id, err := s.tripRepo.Create(trip)
	if err != nil {
		return nil, err
	}
	trip.ID = id
	return trip, nil
}

// GetTrip возвращает поездку без проверки владения (ErrTripNotFound, если
// поездки нет).
func (s *TripService) GetTrip(tripID int) (*model.Trip, error) {
	trip, err := s.tripRepo.GetByID(tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// GetOwnedTrip - единая проверка "загрузить поездку и убедиться, что она
// принадлежит вызывающему". Возвращает ErrTripNotFound или ErrNotOwner.
func (s *TripService) GetOwnedTrip(tripID int, userID string) (*model.Trip, error) {
	trip, err := s.GetTrip(tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, ErrNotOwner
	}
	return trip, nil
}

// ListTrips возвращает поездки пользователя, новые первыми.
func (s *TripService) ListTrips(userID string) ([]model.Trip, error) {
	return s.tripRepo.ListByUser(userID)
}

// GetTripDetail возвращает содержимое поездки: фотографии (новые первыми),
// документы и страны.
func (s *TripService) GetTripDetail(tripID int) ([]model.Photo, []model.Document, []model.Country, error) {
	photos, err := s.photoRepo.ListByTrip(tripID)
	if err != nil {
		return nil, nil, nil, err
	}
	documents, err := s.documentRepo.ListByTrip(tripID)
	if err != nil {
		return nil, nil, nil, err
	}
	countries, err := s.countryRepo.ListByTrip(tripID)
	if err != nil {
		return nil, nil, nil, err
	}
	return photos, documents, countries, nil
}
