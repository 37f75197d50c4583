package models

import "time"

// Роли пользователей. Ресурсные маршруты доступны только администратору.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User определяет модель пользователя в базе данных.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"type:varchar(10);not null;default:'USER'"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser - поля пользователя, безопасные для выдачи наружу.
// Хэш пароля никогда не сериализуется.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
