package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-crm/internal/middleware"
	"estate-crm/internal/repository"
)

// PropertyHandler обслуживает CRUD-маршруты объектов недвижимости.
type PropertyHandler struct {
	repo *repository.PropertyRepository
}

func NewPropertyHandler(repo *repository.PropertyRepository) *PropertyHandler {
	return &PropertyHandler{repo: repo}
}

// Create сохраняет новый объект от имени аутентифицированного администратора.
func (h *PropertyHandler) Create(c *gin.Context) {
	var input repository.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body!"})
		return
	}

	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized, userId is missing or invalid!"})
		return
	}

	if _, err := h.repo.Create(identity.UserID, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Property Created Successfully!"})
}

// Edit применяет частичное обновление по id.
func (h *PropertyHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Property ID!"})
		return
	}

	var patch repository.PropertyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body!"})
		return
	}

	if err := h.repo.Update(id, patch); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property Updated Successfully!"})
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Property ID!"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property Deleted Successfully!"})
}

// List возвращает страницу объектов вместе с создателем и проводками.
func (h *PropertyHandler) List(c *gin.Context) {
	page, limit, err := pageParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	properties, totalCount, totalPages, err := h.repo.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Property Fetched Successfully!",
		"pagination": Pagination{
			Page:       page,
			Limit:      limit,
			TotalPage:  totalPages,
			TotalCount: totalCount,
		},
		"data": properties,
	})
}

func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Property ID!"})
		return
	}

	property, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property Fetched By Id Successfully!", "data": property})
}

// ListNames возвращает по одной записи {id, name} на уникальное имя.
func (h *PropertyHandler) ListNames(c *gin.Context) {
	names, err := h.repo.DistinctNames()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property List Fetched Successfully!", "data": names})
}
