package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx/types"

	"github.com/pollishmaster/travel-photobook/internal/layout"
	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/repository"
)

// LayoutService содержит бизнес-логику работы с макетом фотокниги.
type LayoutService struct {
	layoutRepo *repository.LayoutRepository
	photoRepo  *repository.PhotoRepository
}

// NewLayoutService создает новый сервис макетов.
func NewLayoutService(layoutRepo *repository.LayoutRepository, photoRepo *repository.PhotoRepository) *LayoutService {
	return &LayoutService{layoutRepo: layoutRepo, photoRepo: photoRepo}
}

// SaveLayout сериализует проверенный документ и целиком перезаписывает
// макет поездки (создает строку, если макета еще не было).
func (s *LayoutService) SaveLayout(tripID int, sections []layout.Section) (*model.Layout, error) {
	if sections == nil {
		sections = []layout.Section{}
	}
	raw, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("не удалось сериализовать макет: %w", err)
	}
	return s.layoutRepo.Upsert(tripID, types.JSONText(raw))
}

// GetSections возвращает сохраненный документ макета; для поездки без
// макета - пустой список секций.
func (s *LayoutService) GetSections(tripID int) ([]layout.Section, error) {
	stored, err := s.layoutRepo.GetByTrip(tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []layout.Section{}, nil
		}
		return nil, err
	}
	var sections []layout.Section
	if err := json.Unmarshal(stored.Content, &sections); err != nil {
		return nil, fmt.Errorf("не удалось разобрать сохраненный макет: %w", err)
	}
	return sections, nil
}

// AvailablePhotos возвращает фотографии поездки, на которые не ссылается
// ни одна фотогруппа сохраненного макета, - кандидатов для модального окна
// выбора контента.
func (s *LayoutService) AvailablePhotos(tripID int) ([]model.Photo, error) {
	sections, err := s.GetSections(tripID)
	if err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	used := layout.UsedPhotoIDs(sections)
	available := []model.Photo{}
	for _, p := range photos {
		if _, ok := used[p.ID]; !ok {
			available = append(available, p)
		}
	}
	return available, nil
}
