package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pollishmaster/travel-photobook/internal/layout"
)

type saveLayoutRequest struct {
	Sections []layout.Section `json:"sections"`
}

// SaveLayout обработчик для PUT /api/trips/:tripId/layout - проверяет
// документ по схеме и целиком перезаписывает макет поездки. Нарушение
// схемы - 400 с описанием, запись не выполняется.
func (h *Handler) SaveLayout(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	var req saveLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный макет: " + err.Error()})
		return
	}
	if req.Sections == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный макет: отсутствует поле sections"})
		return
	}
	if err := layout.ValidateSections(req.Sections); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный макет: " + err.Error()})
		return
	}
	saved, err := h.LayoutService.SaveLayout(trip.ID, req.Sections)
	if err != nil {
		log.Printf("Ошибка при сохранении макета поездки %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось сохранить макет"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetLayout обработчик для GET /api/trips/:tripId/layout - возвращает
// сохраненные секции макета (пустой массив, если макета еще нет). Доступ
// разрешен владельцу поездки либо запросу, пришедшему со страницы публичной
// ссылки: заголовок Referer должен содержать токен share-ссылки поездки.
// Это эвристика совместимости со старым клиентом, а не граница безопасности.
func (h *Handler) GetLayout(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	tripID, err := strconv.Atoi(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "поездка не найдена"})
		return
	}
	trip, err := h.TripService.GetTrip(tripID)
	if err != nil {
		h.writeTripAccessError(c, err)
		return
	}
	isSharedView := strings.Contains(c.GetHeader("Referer"), trip.ShareLink)
	if !isSharedView && trip.UserID != identity.UserID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "нет доступа к поездке"})
		return
	}

	sections, err := h.LayoutService.GetSections(trip.ID)
	if err != nil {
		log.Printf("Ошибка при получении макета поездки %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось получить макет"})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// AvailablePhotos обработчик для GET /api/trips/:tripId/layout/available-photos -
// возвращает фотографии поездки, еще не размещенные ни в одной фотогруппе
// макета (список для модального окна выбора контента).
func (h *Handler) AvailablePhotos(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	photos, err := h.LayoutService.AvailablePhotos(trip.ID)
	if err != nil {
		log.Printf("Ошибка при поиске свободных фотографий поездки %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось получить фотографии"})
		return
	}
	c.JSON(http.StatusOK, photos)
}
