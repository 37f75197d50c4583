package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination описывает блок пагинации в ответах списков.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPage  int   `json:"totalPage"`
	TotalCount int64 `json:"totalCount"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

var (
	errInvalidPage  = errors.New("Invalid page number!")
	errInvalidLimit = errors.New("Invalid limit value!")
)

// pageParams читает page/limit из query. По умолчанию 1/10; оба значения
// обязаны быть целыми >= 1, иначе вызов отклоняется.
func pageParams(c *gin.Context) (int, int, error) {
	page := DefaultPage
	if raw := c.Query("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return 0, 0, errInvalidPage
		}
		page = value
	}

	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return 0, 0, errInvalidLimit
		}
		limit = value
	}

	return page, limit, nil
}
