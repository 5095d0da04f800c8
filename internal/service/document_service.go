package service

import (
	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/repository"
)

// DocumentService содержит бизнес-логику, связанную с документами поездок.
type DocumentService struct {
	documentRepo *repository.DocumentRepository
}

// NewDocumentService создает новый сервис документов.
func NewDocumentService(documentRepo *repository.DocumentRepository) *DocumentService {
	return &DocumentService{documentRepo: documentRepo}
}

// AddDocument прикрепляет документ (имя + URL во внешнем хранилище) к поездке.
func (s *DocumentService) AddDocument(name, url string, tripID int) (*model.Document, error) {
	doc := &model.Document{Name: name, URL: url, TripID: tripID}
	if err := s.documentRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
