package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pollishmaster/travel-photobook/internal/layout"
	"github.com/pollishmaster/travel-photobook/internal/model"
)

type bookViewResponse struct {
	Title     string           `json:"title"`
	Location  string           `json:"location"`
	Countries []model.Country  `json:"countries"`
	Sections  []layout.Section `json:"sections"`
}

func TestShareViewUnknownLink(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/share/no-such-link", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShareViewDefaultBook(t *testing.T) {
	router, db := newTestServer(t)
	tripID := seedTrip(t, db, "user-1", "link-1")
	base := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	older := seedPhoto(t, db, tripID, "https://cdn/p1.jpg", base)
	newer := seedPhoto(t, db, tripID, "https://cdn/p2.jpg", base.Add(time.Hour))
	seedNote(t, db, tripID, "Париж стоит мессы", model.NoteTypeQuote, base)
	db.MustExec(`INSERT INTO countries (code, name, trip_id) VALUES ($1, $2, $3)`, "FR", "Франция", tripID)

	// без аутентификации
	rec := doRequest(t, router, http.MethodGet, "/share/link-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var book bookViewResponse
	decodeBody(t, rec, &book)
	require.Equal(t, "Paris 2024", book.Title)
	require.Equal(t, "Paris", book.Location)
	require.Len(t, book.Countries, 1)
	require.Equal(t, "FR", book.Countries[0].Code)

	// книга по умолчанию: одна секция, все фото (новые первыми) в одном
	// triple-блоке, заметки следом текстовыми блоками
	require.Len(t, book.Sections, 1)
	section := book.Sections[0]
	require.Equal(t, "main", section.ID)
	require.Equal(t, "Trip Memories", section.Title)
	require.Len(t, section.Content, 2)

	photoBlock := section.Content[0]
	require.Equal(t, "default", photoBlock.ID)
	require.Equal(t, layout.BlockTriple, photoBlock.Type)
	require.Len(t, photoBlock.Photos, 2)
	require.Equal(t, newer, photoBlock.Photos[0].ID)
	require.Equal(t, older, photoBlock.Photos[1].ID)

	noteBlock := section.Content[1]
	require.Equal(t, layout.BlockQuote, noteBlock.Type)
	require.Equal(t, "Париж стоит мессы", noteBlock.Content)
	require.NotEmpty(t, noteBlock.Date)
}

func TestShareViewSavedLayout(t *testing.T) {
	router, db := newTestServer(t)
	tripID := seedTrip(t, db, "user-1", "link-1")
	base := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	p1 := seedPhoto(t, db, tripID, "https://cdn/p1.jpg", base)
	p2 := seedPhoto(t, db, tripID, "https://cdn/p2.jpg", base.Add(time.Minute))

	sections := parisSections(p1, p2)
	rec := doRequest(t, router, http.MethodPut, "/api/trips/1/layout", "user-1",
		map[string]any{"sections": sections})
	require.Equal(t, http.StatusOK, rec.Code)

	// сохраненный макет отдается в публичном просмотре дословно
	rec = doRequest(t, router, http.MethodGet, "/share/link-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var book bookViewResponse
	decodeBody(t, rec, &book)
	require.Equal(t, sections, book.Sections)
}
