package config

import (
	"errors"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB открывает соединение с PostgreSQL и возвращает хэндл вызывающему.
// Хэндл передается в репозитории явно, глобальной переменной нет.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	if cfg.DBURL == "" {
		return nil, errors.New("переменная окружения DB_URL не установлена")
	}

	db, err := gorm.Open(postgres.Open(cfg.DBURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	slog.Info("Успешное подключение к базе данных!")
	return db, nil
}

// CloseDB закрывает пул соединений при остановке процесса.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Не удалось получить пул соединений для закрытия", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("Ошибка закрытия соединения с БД", "error", err)
	}
}
