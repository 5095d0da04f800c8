package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

type createPhotoRequest struct {
	URL     string  `json:"url" binding:"required"`
	Caption *string `json:"caption"`
	TripID  int     `json:"tripId" binding:"required"`
}

type reorderPhotosRequest struct {
	Photos []model.PhotoOrder `json:"photos"`
}

// CreatePhoto обработчик для POST /api/photos - регистрирует фотографию,
// загруженную виджетом во внешний CDN, и привязывает ее к поездке
// вызывающего.
func (h *Handler) CreatePhoto(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req createPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректные данные запроса"})
		return
	}
	if _, err := h.TripService.GetOwnedTrip(req.TripID, identity.UserID); err != nil {
		h.writeTripAccessError(c, err)
		return
	}
	photo, err := h.PhotoService.CreatePhoto(req.URL, req.Caption, req.TripID)
	if err != nil {
		log.Printf("Ошибка при сохранении фотографии: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось сохранить фотографию"})
		return
	}
	c.JSON(http.StatusOK, photo)
}

// ReorderPhotos обработчик для PUT /api/trips/:tripId/photos/reorder -
// применяет новый порядок фотографий поездки одной транзакцией.
func (h *Handler) ReorderPhotos(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	var req reorderPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректные данные запроса"})
		return
	}
	if req.Photos == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "отсутствует поле photos"})
		return
	}
	if err := h.PhotoService.ReorderPhotos(trip.ID, req.Photos); err != nil {
		log.Printf("Ошибка при переупорядочивании фотографий поездки %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось обновить порядок фотографий"})
		return
	}
	c.String(http.StatusOK, "Photos reordered successfully")
}
