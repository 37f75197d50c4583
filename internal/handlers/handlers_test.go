package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"estate-crm/internal/middleware"
	"estate-crm/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}, &models.Transaction{}))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB) *models.User {
	user := models.User{Name: "Admin", Email: "admin@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// asAdmin подменяет цепочку аутентификации: кладет готовую личность в
// контекст, чтобы тесты обработчиков не собирали токены.
func asAdmin(adminID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, middleware.Identity{UserID: adminID, Role: models.RoleAdmin})
		c.Next()
	}
}
