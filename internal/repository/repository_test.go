package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"estate-crm/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Property{}, &models.Transaction{})
	require.NoError(t, err)
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB) *models.User {
	user := models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "hashed",
		Role:     models.RoleAdmin,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func f64(v float64) *float64 { return &v }
func u32(v uint) *uint       { return &v }
func str(v string) *string   { return &v }
