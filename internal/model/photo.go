package model

import "time"

// Photo представляет фотографию, загруженную в поездку. Сам файл хранится
// во внешнем CDN, в базе остается только URL и метаданные.
type Photo struct {
	ID        int        `db:"id" json:"id"`
	URL       string     `db:"url" json:"url"`
	Caption   *string    `db:"caption" json:"caption,omitempty"`
	TakenAt   *time.Time `db:"taken_at" json:"takenAt,omitempty"`
	TripID    int        `db:"trip_id" json:"tripId"`
	Order     *int       `db:"order_index" json:"order,omitempty"` // позиция при ручной сортировке
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

// PhotoOrder - пара "фото - новая позиция" для операции переупорядочивания.
type PhotoOrder struct {
	ID    int `json:"id"`
	Order int `json:"order"`
}
