package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Layout представляет сохраненный макет фотокниги поездки. Содержимое -
// непрозрачный для базы JSON-документ (массив секций), который целиком
// перезаписывается при каждом изменении.
type Layout struct {
	ID        int            `db:"id" json:"id"`
	TripID    int            `db:"trip_id" json:"tripId"`
	Content   types.JSONText `db:"content" json:"content"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}
