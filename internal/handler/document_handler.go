package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type addDocumentRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

// AddDocument обработчик для POST /api/trips/:tripId/documents - прикрепляет
// к поездке документ, загруженный во внешнее хранилище.
func (h *Handler) AddDocument(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	var req addDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректные данные запроса"})
		return
	}
	doc, err := h.DocumentService.AddDocument(req.Name, req.URL, trip.ID)
	if err != nil {
		log.Printf("Ошибка при сохранении документа поездки %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось сохранить документ"})
		return
	}
	c.JSON(http.StatusOK, doc)
}
