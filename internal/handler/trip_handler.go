package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

type createTripRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Location    string  `json:"location" binding:"required"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     *string `json:"endDate"`
	// Клиент исторически присылает userId в теле; поле игнорируется,
	// владельцем всегда становится аутентифицированный вызывающий.
	UserID string `json:"userId"`
}

// tripDetailResponse - поездка вместе с ее содержимым для страницы поездки.
type tripDetailResponse struct {
	model.Trip
	Photos    []model.Photo    `json:"photos"`
	Documents []model.Document `json:"documents"`
	Countries []model.Country  `json:"countries"`
}

// CreateTrip обработчик для POST /api/trips - создает поездку вызывающего,
// попутно создавая/обновляя запись пользователя.
func (h *Handler) CreateTrip(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректные данные запроса"})
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректная дата начала поездки"})
		return
	}
	trip := &model.Trip{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   startDate,
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "некорректная дата окончания поездки"})
			return
		}
		trip.EndDate = &endDate
	}

	user, err := h.AuthService.EnsureUser(identity.UserID, identity.Email, identity.Name)
	if err != nil {
		log.Printf("Ошибка при сохранении пользователя: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка сервера"})
		return
	}
	trip.UserID = user.ID

	created, err := h.TripService.CreateTrip(trip)
	if err != nil {
		log.Printf("Ошибка при создании поездки: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось создать поездку"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListTrips обработчик для GET /api/trips - возвращает поездки вызывающего,
// новые (по дате начала) первыми.
func (h *Handler) ListTrips(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	trips, err := h.TripService.ListTrips(identity.UserID)
	if err != nil {
		log.Printf("Ошибка при получении поездок: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось получить поездки"})
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GetTrip обработчик для GET /api/trips/:tripId - возвращает поездку
// вызывающего вместе с фотографиями (новые первыми), документами и странами.
func (h *Handler) GetTrip(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	photos, documents, countries, err := h.TripService.GetTripDetail(trip.ID)
	if err != nil {
		log.Printf("Ошибка при получении содержимого поездки %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось получить поездку"})
		return
	}
	c.JSON(http.StatusOK, tripDetailResponse{
		Trip:      *trip,
		Photos:    photos,
		Documents: documents,
		Countries: countries,
	})
}
