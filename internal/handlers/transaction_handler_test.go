package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"estate-crm/internal/repository"
	"estate-crm/models"
)

func setupTransactionRouter(t *testing.T) (*gin.Engine, *gorm.DB, *models.Property) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	h := NewTransactionHandler(repository.NewTransactionRepository(db))

	property := models.Property{Name: "Oak St", RentPerMonth: 1000, CommissionPercentage: 10, UserID: admin.ID}
	require.NoError(t, db.Create(&property).Error)

	r := gin.New()
	group := r.Group("/api/transaction", asAdmin(admin.ID))
	group.POST("/create", h.Create)
	group.PUT("/edit/:id", h.Edit)
	group.DELETE("/delete/:id", h.Delete)
	group.GET("/get", h.List)
	group.GET("/:id", h.GetByID)
	return r, db, &property
}

func TestTransactionCreateHandler(t *testing.T) {
	r, db, property := setupTransactionRouter(t)

	w := jsonRequest(t, r, http.MethodPost, "/api/transaction/create", gin.H{
		"property_id": property.ID,
		"type":        "DEBIT",
		"description": "Monthly rent",
		"amount":      1000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Transaction Created Successfully!", decodeBody(t, w)["message"])

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTransactionCreateHandlerMissingProperty(t *testing.T) {
	r, _, _ := setupTransactionRouter(t)

	// Отсутствие объекта недвижимости - 404, отличный от 404 самой проводки.
	w := jsonRequest(t, r, http.MethodPost, "/api/transaction/create", gin.H{
		"property_id": 9999,
		"type":        "DEBIT",
		"description": "Monthly rent",
		"amount":      1000,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Property not found!", decodeBody(t, w)["message"])
}

func TestTransactionCreateHandlerBadType(t *testing.T) {
	r, _, property := setupTransactionRouter(t)

	w := jsonRequest(t, r, http.MethodPost, "/api/transaction/create", gin.H{
		"property_id": property.ID,
		"type":        "TRANSFER",
		"description": "Monthly rent",
		"amount":      1000,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Type must be either 'DEBIT' or 'CREDIT'", decodeBody(t, w)["message"])
}

func TestTransactionEditHandlerNotFound(t *testing.T) {
	r, _, _ := setupTransactionRouter(t)

	w := jsonRequest(t, r, http.MethodPut, "/api/transaction/edit/9999", gin.H{"amount": 50})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Transaction not found!", decodeBody(t, w)["message"])
}

func TestTransactionEditHandlerBadID(t *testing.T) {
	r, _, _ := setupTransactionRouter(t)

	w := jsonRequest(t, r, http.MethodPut, "/api/transaction/edit/abc", gin.H{"amount": 50})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Transaction ID!", decodeBody(t, w)["message"])
}

func TestTransactionListHandlerJoinsProperty(t *testing.T) {
	r, db, property := setupTransactionRouter(t)

	require.NoError(t, db.Create(&models.Transaction{
		PropertyID: property.ID, Type: models.TransactionDebit,
		Description: "Monthly rent", Amount: 1000,
	}).Error)

	w := jsonRequest(t, r, http.MethodGet, "/api/transaction/get", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	item := data[0].(map[string]interface{})
	joined := item["property"].(map[string]interface{})
	assert.Equal(t, "Oak St", joined["name"])
}
