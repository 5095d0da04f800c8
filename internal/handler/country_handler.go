package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pollishmaster/travel-photobook/internal/service"
)

type addCountryRequest struct {
	Code string `json:"code" binding:"required,len=2"`
	Name string `json:"name" binding:"required"`
}

// AddCountry обработчик для POST /api/trips/:tripId/countries - отмечает
// посещенную страну в поездке.
func (h *Handler) AddCountry(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	var req addCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректные данные запроса"})
		return
	}
	country, err := h.CountryService.AddCountry(req.Code, req.Name, trip.ID)
	if err != nil {
		log.Printf("Ошибка при добавлении страны к поездке %d: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось добавить страну"})
		return
	}
	c.JSON(http.StatusOK, country)
}

// DeleteCountry обработчик для DELETE /api/trips/:tripId/countries/:countryId -
// удаляет страну, только если она принадлежит указанной поездке.
func (h *Handler) DeleteCountry(c *gin.Context) {
	trip, _, ok := h.requireOwnedTrip(c)
	if !ok {
		return
	}
	countryID, err := strconv.Atoi(c.Param("countryId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "страна не найдена"})
		return
	}
	if err := h.CountryService.DeleteCountry(countryID, trip.ID); err != nil {
		if errors.Is(err, service.ErrCountryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "страна не найдена"})
			return
		}
		log.Printf("Ошибка при удалении страны %d: %v", countryID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось удалить страну"})
		return
	}
	c.String(http.StatusOK, "Country deleted")
}
