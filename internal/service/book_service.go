package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pollishmaster/travel-photobook/internal/layout"
	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/repository"
)

// BookView - готовая к отображению фотокнига для публичного просмотра:
// шапка поездки плюс секции макета.
type BookView struct {
	Title     string           `json:"title"`
	Location  string           `json:"location"`
	StartDate time.Time        `json:"startDate"`
	EndDate   *time.Time       `json:"endDate,omitempty"`
	Countries []model.Country  `json:"countries"`
	Sections  []layout.Section `json:"sections"`
}

// BookService собирает фотокнигу для просмотра только на чтение.
type BookService struct {
	tripRepo    *repository.TripRepository
	photoRepo   *repository.PhotoRepository
	countryRepo *repository.CountryRepository
	noteRepo    *repository.NoteRepository
	layoutRepo  *repository.LayoutRepository
}

// NewBookService создает новый сервис фотокниги.
func NewBookService(tripRepo *repository.TripRepository, photoRepo *repository.PhotoRepository,
	countryRepo *repository.CountryRepository, noteRepo *repository.NoteRepository,
	layoutRepo *repository.LayoutRepository) *BookService {
	return &BookService{
		tripRepo:    tripRepo,
		photoRepo:   photoRepo,
		countryRepo: countryRepo,
		noteRepo:    noteRepo,
		layoutRepo:  layoutRepo,
	}
}

// RenderByShareLink собирает фотокнигу поездки по токену публичной ссылки.
// Сохраненный макет отдается дословно; для поездки без макета синтезируется
// книга по умолчанию из всех фотографий и заметок.
func (s *BookService) RenderByShareLink(shareLink string) (*BookView, error) {
	trip, err := s.tripRepo.GetByShareLink(shareLink)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	countries, err := s.countryRepo.ListByTrip(trip.ID)
	if err != nil {
		return nil, err
	}

	sections, err := s.tripSections(trip.ID)
	if err != nil {
		return nil, err
	}

	return &BookView{
		Title:     trip.Title,
		Location:  trip.Location,
		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
		Countries: countries,
		Sections:  sections,
	}, nil
}

// tripSections возвращает секции сохраненного макета либо книгу по умолчанию.
func (s *BookService) tripSections(tripID int) ([]layout.Section, error) {
	stored, err := s.layoutRepo.GetByTrip(tripID)
	if err == nil {
		var sections []layout.Section
		if err := json.Unmarshal(stored.Content, &sections); err != nil {
			return nil, fmt.Errorf("не удалось разобрать сохраненный макет: %w", err)
		}
		return sections, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	photos, err := s.photoRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	return layout.DefaultSections(PhotoStubs(photos), NoteStubs(notes)), nil
}

// PhotoStubs превращает строки фотографий в денормализованные копии для
// документа макета.
func PhotoStubs(photos []model.Photo) []layout.PhotoStub {
	stubs := make([]layout.PhotoStub, 0, len(photos))
	for _, p := range photos {
		stub := layout.PhotoStub{ID: p.ID, URL: p.URL}
		if p.Caption != nil {
			stub.Caption = *p.Caption
		}
		if p.TakenAt != nil {
			stub.TakenAt = p.TakenAt.Format(time.RFC3339)
		}
		stubs = append(stubs, stub)
	}
	return stubs
}

// NoteStubs превращает строки заметок в текстовые блоки для документа макета.
func NoteStubs(notes []model.Note) []layout.NoteStub {
	stubs := make([]layout.NoteStub, 0, len(notes))
	for _, n := range notes {
		stubs = append(stubs, layout.NoteStub{
			ID:      strconv.Itoa(n.ID),
			Type:    layout.BlockType(n.Type),
			Content: n.Content,
			Date:    n.Date.Format(time.RFC3339),
		})
	}
	return stubs
}
