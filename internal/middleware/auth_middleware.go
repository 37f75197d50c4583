package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"estate-crm/models"
)

// Identity - подтвержденная личность вызывающего.
type Identity struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// ErrForbidden возвращается, когда роль вызывающего не совпадает с требуемой.
var ErrForbidden = errors.New("forbidden: access denied")

const identityKey = "identity"

// cachedUser - данные пользователя в кэше.
type cachedUser struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

const userCacheTTL = 10 * time.Minute

// Authenticator проверяет JWT и восстанавливает личность вызывающего.
// Роль перечитывается из записи пользователя (Redis-кэш, при промахе БД),
// а не берется на веру из claims: токен удаленного пользователя перестает
// работать до истечения срока.
type Authenticator struct {
	db     *gorm.DB
	rdb    *redis.Client
	secret []byte
}

func NewAuthenticator(db *gorm.DB, rdb *redis.Client, secret string) *Authenticator {
	return &Authenticator{db: db, rdb: rdb, secret: []byte(secret)}
}

// Authenticate отклоняет вызов без токена или с невалидным токеном (401 в
// обоих случаях - клиенту важно отличать это от 403 при неверной роли).
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			handleAuthError(c, "Unauthorized")
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			handleAuthError(c, "Unauthorized")
			return
		}
		tokenStr := parts[1]

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			handleAuthError(c, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			handleAuthError(c, "Invalid token claims")
			return
		}
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			handleAuthError(c, "Invalid user ID format in token")
			return
		}

		identity, err := a.resolve(c.Request.Context(), uint(userIDFloat))
		if err != nil {
			handleAuthError(c, "User from token not found")
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// resolve восстанавливает {id, роль} по id из токена: сперва кэш, затем БД.
func (a *Authenticator) resolve(ctx context.Context, userID uint) (*Identity, error) {
	cacheKey := fmt.Sprintf("user:%d:data", userID)

	if a.rdb != nil {
		cached, err := a.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var data cachedUser
			if json.Unmarshal([]byte(cached), &data) == nil {
				return &Identity{UserID: data.UserID, Role: data.Role}, nil
			}
			slog.Warn("Не удалось разобрать кэш пользователя", "user_id", userID)
		} else if err != redis.Nil {
			slog.Error("Redis GET command failed", "error", err, "user_id", userID)
		}
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	if a.rdb != nil {
		payload, err := json.Marshal(cachedUser{UserID: user.ID, Role: user.Role})
		if err == nil {
			if err := a.rdb.Set(ctx, cacheKey, payload, userCacheTTL).Err(); err != nil {
				slog.Error("Failed to SET user data to cache", "error", err, "user_id", userID)
			}
		}
	}

	return &Identity{UserID: user.ID, Role: user.Role}, nil
}

// Authorize разрешает вызов только при точном совпадении роли.
func Authorize(identity Identity, requiredRole string) error {
	if identity.Role != requiredRole {
		return ErrForbidden
	}
	return nil
}

// RequireRole строит шлюз поверх Authorize для конкретной роли.
// Ставится после Authenticate.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			handleAuthError(c, "Unauthorized")
			return
		}
		if err := Authorize(identity, requiredRole); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: Access denied"})
			return
		}
		c.Next()
	}
}

// SetIdentity кладет личность в контекст запроса. Обычно это делает
// Authenticate, напрямую используется в тестах обработчиков.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// IdentityFromContext достает личность, положенную Authenticate.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

func handleAuthError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}
