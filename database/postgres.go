package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obidua/BIDUA-Hosting-sub003/config"
)

var Pool *pgxpool.Pool

func InitDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	var err error
	Pool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := Pool.Ping(context.Background()); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	log.Println("✅ Подключение к PostgreSQL установлено")
	if err := createSessionsTable(); err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}
	return nil
}

func CloseDB() {
	if Pool != nil {
		Pool.Close()
		log.Println("🛑 Соединение с PostgreSQL закрыто")
	}
}

// Сессии портала: кука браузера → bearer-токен бэкенда.
// Токен переживает рестарт шлюза, поэтому храним в БД, а не в памяти.
func createSessionsTable() error {
	_, err := Pool.Exec(context.Background(), `
		CREATE TABLE IF NOT EXISTS portal_sessions (
			id UUID PRIMARY KEY,
			token TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW(),
			last_seen TIMESTAMP DEFAULT NOW()
		);
	`)
	if err != nil {
		return err
	}

	_, err = Pool.Exec(context.Background(),
		`CREATE INDEX IF NOT EXISTS idx_portal_sessions_last_seen ON portal_sessions(last_seen);`)
	if err != nil {
		return err
	}

	log.Println("✅ Таблица portal_sessions готова")
	return nil
}
