package model

import "time"

// Trip представляет поездку - корневую сущность, к которой привязаны
// фотографии, страны, заметки, документы и макет фотокниги.
type Trip struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	Location    string     `db:"location" json:"location"`
	StartDate   time.Time  `db:"start_date" json:"startDate"`
	EndDate     *time.Time `db:"end_date" json:"endDate,omitempty"`
	UserID      string     `db:"user_id" json:"userId"`
	ShareLink   string     `db:"share_link" json:"shareLink"` // токен публичной ссылки /share/{shareLink}
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}
