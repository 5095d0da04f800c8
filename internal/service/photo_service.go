package service

import (
	"time"

	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/repository"
)

// PhotoService содержит бизнес-логику, связанную с фотографиями.
type PhotoService struct {
	photoRepo *repository.PhotoRepository
}

// NewPhotoService создает новый сервис фотографий.
func NewPhotoService(photoRepo *repository.PhotoRepository) *PhotoService {
	return &PhotoService{photoRepo: photoRepo}
}

// CreatePhoto сохраняет загруженную фотографию, проставляя takenAt текущим
// временем (виджет загрузки не передает EXIF-дату).
func (s *PhotoService) CreatePhoto(url string, caption *string, tripID int) (*model.Photo, error) {
	now := time.Now().UTC()
	photo := &model.Photo{
		URL:     url,
		Caption: caption,
		TakenAt: &now,
		TripID:  tripID,
	}
	if err := s.photoRepo.Create(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// ReorderPhotos применяет новый порядок фотографий поездки одной
// транзакцией (все или ничего).
func (s *PhotoService) ReorderPhotos(tripID int, orders []model.PhotoOrder) error {
	return s.photoRepo.UpdateOrder(tripID, orders)
}

// ListPhotos возвращает фотографии поездки, новые первыми.
func (s *PhotoService) ListPhotos(tripID int) ([]model.Photo, error) {
	return s.photoRepo.ListByTrip(tripID)
}
