package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-crm/internal/repository"
)

// TransactionHandler обслуживает CRUD-маршруты финансовых проводок.
type TransactionHandler struct {
	repo *repository.TransactionRepository
}

func NewTransactionHandler(repo *repository.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{repo: repo}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var input repository.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body!"})
		return
	}

	if _, err := h.repo.Create(input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Transaction Created Successfully!"})
}

func (h *TransactionHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Transaction ID!"})
		return
	}

	var patch repository.TransactionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body!"})
		return
	}

	if err := h.repo.Update(id, patch); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction Updated Successfully!"})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Transaction ID!"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction Deleted Successfully!"})
}

// List возвращает страницу проводок вместе с их объектами недвижимости.
func (h *TransactionHandler) List(c *gin.Context) {
	page, limit, err := pageParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	transactions, totalCount, totalPages, err := h.repo.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Transactions Fetched Successfully!",
		"pagination": Pagination{
			Page:       page,
			Limit:      limit,
			TotalPage:  totalPages,
			TotalCount: totalCount,
		},
		"data": transactions,
	})
}

func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Transaction ID!"})
		return
	}

	transaction, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction Fetched By Id Successfully!", "data": transaction})
}
