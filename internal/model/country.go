package model

// Country представляет посещенную страну, отмеченную в поездке.
type Country struct {
	ID     int    `db:"id" json:"id"`
	Code   string `db:"code" json:"code"` // двухбуквенный код ISO 3166-1
	Name   string `db:"name" json:"name"`
	TripID int    `db:"trip_id" json:"tripId"`
}
