package model

import "time"

// Document представляет прикрепленный к поездке документ (билет, бронь и т.п.),
// загруженный во внешнее хранилище.
type Document struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	URL       string    `db:"url" json:"url"`
	TripID    int       `db:"trip_id" json:"tripId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
