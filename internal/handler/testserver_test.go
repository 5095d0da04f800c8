package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pollishmaster/travel-photobook/internal/repository"
	"github.com/pollishmaster/travel-photobook/internal/service"
)

// Схема для тестов: та же, что в migrations/001_init.sql, в диалекте SQLite.
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

// newTestServer собирает полный стек приложения поверх базы SQLite в памяти
// и возвращает роутер вместе с базой для прямых проверок.
func newTestServer(t *testing.T) (*gin.Engine, *sqlx.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Не удалось открыть базу в памяти: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("Не удалось применить схему: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	countryRepo := repository.NewCountryRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	layoutRepo := repository.NewLayoutRepository(db)

	h := NewHandler(
		service.NewAuthService(userRepo),
		service.NewTripService(tripRepo, photoRepo, documentRepo, countryRepo),
		service.NewPhotoService(photoRepo),
		service.NewCountryService(countryRepo),
		service.NewNoteService(noteRepo),
		service.NewDocumentService(documentRepo),
		service.NewLayoutService(layoutRepo, photoRepo),
		service.NewBookService(tripRepo, photoRepo, countryRepo, noteRepo, layoutRepo),
	)
	router := gin.New()
	h.RegisterRoutes(router)
	return router, db
}

// doRequest выполняет запрос к тестовому серверу. userID пустой - запрос
// без аутентификации.
func doRequest(t *testing.T, router *gin.Engine, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Не удалось сериализовать тело запроса: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(headerUserID, userID)
		req.Header.Set(headerUserEmail, userID+"@example.com")
		req.Header.Set(headerUserName, "Test User")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("Не удалось разобрать ответ %q: %v", rec.Body.String(), err)
	}
}

// seedTrip создает пользователя и поездку напрямую в базе.
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

func seedNote(t *testing.T, db *sqlx.DB, tripID int, content, noteType string, date time.Time) int {
	t.Helper()
	var id int
	err := db.QueryRow(`INSERT INTO notes (content, type, date, trip_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		content, noteType, date, tripID).Scan(&id)
	if err != nil {
		t.Fatalf("Не удалось создать тестовую заметку: %v", err)
	}
	return id
}
