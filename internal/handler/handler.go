package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/service"
)

// Заголовки, которыми обратный прокси внешнего провайдера аутентификации
// передает личность вызывающего.
const (
	headerUserID    = "X-User-Id"
	headerUserEmail = "X-User-Email"
	headerUserName  = "X-User-Name"
)

// Identity описывает аутентифицированного вызывающего.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService     *service.AuthService
	TripService     *service.TripService
	PhotoService    *service.PhotoService
	CountryService  *service.CountryService
	NoteService     *service.NoteService
	DocumentService *service.DocumentService
	LayoutService   *service.LayoutService
	BookService     *service.BookService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AuthService, ts *service.TripService, ps *service.PhotoService,
	cs *service.CountryService, ns *service.NoteService, ds *service.DocumentService,
	ls *service.LayoutService, bs *service.BookService) *Handler {
	return &Handler{
		AuthService:     as,
		TripService:     ts,
		PhotoService:    ps,
		CountryService:  cs,
		NoteService:     ns,
		DocumentService: ds,
		LayoutService:   ls,
		BookService:     bs,
	}
}

// RegisterRoutes регистрирует все маршруты приложения на роутере.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips", h.ListTrips)
		api.GET("/trips/:tripId", h.GetTrip)
		api.POST("/trips/:tripId/countries", h.AddCountry)
		api.DELETE("/trips/:tripId/countries/:countryId", h.DeleteCountry)
		api.POST("/trips/:tripId/notes", h.AddNote)
		api.GET("/trips/:tripId/notes", h.ListNotes)
		api.DELETE("/trips/:tripId/notes", h.DeleteNote)
		api.POST("/trips/:tripId/documents", h.AddDocument)
		api.PUT("/trips/:tripId/layout", h.SaveLayout)
		api.GET("/trips/:tripId/layout", h.GetLayout)
		api.GET("/trips/:tripId/layout/available-photos", h.AvailablePhotos)
		api.PUT("/trips/:tripId/photos/reorder", h.ReorderPhotos)
		api.POST("/photos", h.CreatePhoto)
	}
	router.GET("/share/:shareLink", h.ShareView)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// requireIdentity извлекает личность вызывающего из заголовков прокси.
// При отсутствии личности пишет 401 и возвращает false.
func requireIdentity(c *gin.Context) (*Identity, bool) {
	userID := c.GetHeader(headerUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "требуется аутентификация"})
		return nil, false
	}
	return &Identity{
		UserID: userID,
		Email:  c.GetHeader(headerUserEmail),
		Name:   c.GetHeader(headerUserName),
	}, true
}

// requireOwnedTrip - единая проверка доступа: личность обязательна, поездка
// из URL должна существовать и принадлежать вызывающему. При нарушении
// пишет 401/404 и возвращает false.
func (h *Handler) requireOwnedTrip(c *gin.Context) (*model.Trip, *Identity, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return nil, nil, false
	}
	tripID, err := strconv.Atoi(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "поездка не найдена"})
		return nil, nil, false
	}
	trip, err := h.TripService.GetOwnedTrip(tripID, identity.UserID)
	if err != nil {
		h.writeTripAccessError(c, err)
		return nil, nil, false
	}
	return trip, identity, true
}

// writeTripAccessError сопоставляет ошибки доступа к поездке с HTTP-статусами.
func (h *Handler) writeTripAccessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "поездка не найдена"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "нет доступа к поездке"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка сервера"})
	}
}

// parseDate разбирает дату из запроса: принимает RFC3339 и короткую форму
// YYYY-MM-DD.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
