package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-crm/internal/handlers"
	"estate-crm/internal/middleware"
	"estate-crm/models"
)

// Handlers собирает все обработчики, которые регистрирует маршрутизатор.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Property    *handlers.PropertyHandler
	Transaction *handlers.TransactionHandler
	Report      *handlers.ReportHandler
}

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine, auth *middleware.Authenticator, h Handlers) {
	r.Use(middleware.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "estate-crm backend is running")
	})

	api := r.Group("/api")

	// Публичные маршруты аутентификации.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// Все ресурсные маршруты требуют токен и роль ADMIN.
	property := api.Group("/property")
	property.Use(auth.Authenticate(), middleware.RequireRole(models.RoleAdmin))
	{
		property.POST("/create", h.Property.Create)
		property.PUT("/edit/:id", h.Property.Edit)
		property.DELETE("/delete/:id", h.Property.Delete)
		property.GET("/get", h.Property.List)
		property.GET("/list", h.Property.ListNames)
		property.GET("/:id", h.Property.GetByID)
	}

	transaction := api.Group("/transaction")
	transaction.Use(auth.Authenticate(), middleware.RequireRole(models.RoleAdmin))
	{
		transaction.POST("/create", h.Transaction.Create)
		transaction.PUT("/edit/:id", h.Transaction.Edit)
		transaction.DELETE("/delete/:id", h.Transaction.Delete)
		transaction.GET("/get", h.Transaction.List)
		transaction.GET("/monthly-report", h.Report.MonthlyReport)
		transaction.GET("/:id", h.Transaction.GetByID)
	}
}
