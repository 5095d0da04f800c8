package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pollishmaster/travel-photobook/internal/service"
)

// ShareView обработчик для GET /share/:shareLink - публичный просмотр
// фотокниги без аутентификации. Отдает шапку поездки и секции сохраненного
// макета либо книгу по умолчанию, если макет не сохранялся.
func (h *Handler) ShareView(c *gin.Context) {
	book, err := h.BookService.RenderByShareLink(c.Param("shareLink"))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "поездка не найдена"})
			return
		}
		log.Printf("Ошибка при сборке фотокниги: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось получить фотокнигу"})
		return
	}
	c.JSON(http.StatusOK, book)
}
