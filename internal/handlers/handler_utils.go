package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estate-crm/internal/repository"
)

// idParam разбирает числовой :id из пути.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// respondError переводит ошибки репозитория в стабильные классы статусов:
// ValidationError -> 400, отсутствие сущности -> 404, остальное -> 500.
func respondError(c *gin.Context, err error) {
	var validationErr *repository.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.Is(err, repository.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Property not found!"})
	case errors.Is(err, repository.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found!"})
	default:
		slog.Error("Необработанная ошибка хранилища", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
	}
}
