package service

import (
	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/repository"
)

// NoteService содержит бизнес-логику, связанную с заметками поездок.
type NoteService struct {
	noteRepo *repository.NoteRepository
}

// NewNoteService создает новый сервис заметок.
func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// AddNote создает заметку поездки (цитату или итог); дату проставляет база.
func (s *NoteService) AddNote(content, noteType string, tripID int) (*model.Note, error) {
	note := &model.Note{Content: content, Type: noteType, TripID: tripID}
	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes возвращает заметки поездки, новые первыми.
func (s *NoteService) ListNotes(tripID int) ([]model.Note, error) {
	return s.noteRepo.ListByTrip(tripID)
}

// DeleteNote удаляет заметку в рамках поездки; заметка чужой поездки или
// несуществующий id - ErrNoteNotFound.
func (s *NoteService) DeleteNote(noteID, tripID int) error {
	deleted, err := s.noteRepo.DeleteInTrip(noteID, tripID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}
