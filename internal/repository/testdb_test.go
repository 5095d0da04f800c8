package repository

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Схема для тестов: та же, что в migrations/001_init.sql, в диалекте SQLite
// (тесты гоняются против базы в памяти).
const testSchema = `
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    name TEXT NOT NULL
);
CREATE TABLE trips (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    location TEXT NOT NULL,
    start_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP,
    user_id TEXT NOT NULL REFERENCES users(id),
    share_link TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE photos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    caption TEXT,
    taken_at TIMESTAMP,
    trip_id INTEGER NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
    order_index INTEGER CHECK (order_index IS NULL OR order_index >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE countries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    code TEXT NOT NULL,
    name TEXT NOT NULL,
    trip_id INTEGER NOT NULL REFERENCES trips(id) ON DELETE CASCADE
);
CREATE TABLE notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    content TEXT NOT NULL,
    type TEXT NOT NULL,
    date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    trip_id INTEGER NOT NULL REFERENCES trips(id) ON DELETE CASCADE
);
CREATE TABLE documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    url TEXT NOT NULL,
    trip_id INTEGER NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE layouts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id INTEGER NOT NULL UNIQUE REFERENCES trips(id) ON DELETE CASCADE,
    content TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// newTestDB открывает базу SQLite в памяти и применяет схему.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Не удалось открыть базу в памяти: %v", err)
	}
	// база в памяти живет в пределах одного соединения
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("Не удалось применить схему: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// seedTrip создает пользователя и поездку, возвращает ID поездки.
func seedTrip(t *testing.T, db *sqlx.DB, userID, shareLink string) int {
	t.Helper()
	db.MustExec(`INSERT INTO users (id, email, name) VALUES ($1, $2, $3)
	             ON CONFLICT (id) DO NOTHING`, userID, userID+"@example.com", "Test User")
	var id int
	err := db.QueryRow(`INSERT INTO trips (title, location, start_date, user_id, share_link)
	                    VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		"Paris 2024", "Paris", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), userID, shareLink).Scan(&id)
	if err != nil {
		t.Fatalf("Не удалось создать тестовую поездку: %v", err)
	}
	return id
}

// seedPhoto вставляет фотографию с заданным временем создания (порядок
// "новые первыми" в тестах должен быть детерминированным).
func seedPhoto(t *testing.T, db *sqlx.DB, tripID int, url string, createdAt time.Time) int {
	t.Helper()
	var id int
	err := db.QueryRow(`INSERT INTO photos (url, trip_id, created_at) VALUES ($1, $2, $3) RETURNING id`,
		url, tripID, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("Не удалось создать тестовую фотографию: %v", err)
	}
	return id
}
