package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pollishmaster/travel-photobook/internal/service"
)

type addNoteRequest struct {
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=quote summary"`
}

// AddNote обработчик для POST /api/trips/:tripId/notes - создает заметку
// поездки (цитату или итог).
func (h *Handler) AddNote(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректные данные запроса"})
		return
	}
	note, err := h.NoteService.AddNote(req.Content, req.Type, trip.ID)
	if err != nil {
		log.Printf("Ошибка при создании заметки поездки %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось создать заметку"})
		return
	}
	c.JSON(http.StatusOK, note)
}

// ListNotes обработчик для GET /api/trips/:tripId/notes - возвращает заметки
// поездки, новые первыми.
func (h *Handler) ListNotes(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	notes, err := h.NoteService.ListNotes(trip.ID)
	if err != nil {
		log.Printf("Ошибка при получении заметок поездки %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось получить заметки"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// DeleteNote обработчик для DELETE /api/trips/:tripId/notes?noteId=... -
// удаляет заметку в рамках поездки.
func (h *Handler) DeleteNote(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	rawNoteID := c.Query("noteId")
	if rawNoteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "не указан идентификатор заметки"})
		return
	}
	noteID, err := strconv.Atoi(rawNoteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор заметки"})
		return
	}
	if err := h.NoteService.DeleteNote(noteID, trip.ID); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "заметка не найдена"})
			return
		}
		log.Printf("Ошибка при удалении заметки %d: %v", noteID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось удалить заметку"})
		return
	}
	c.Status(http.StatusNoContent)
}
