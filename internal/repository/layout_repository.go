package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

// LayoutRepository обеспечивает доступ к сохраненным макетам фотокниг.
// У поездки не больше одного макета (trip_id уникален), документ
// перезаписывается целиком.
type LayoutRepository struct {
	db *sqlx.DB
}

// NewLayoutRepository создает новый репозиторий макетов.
func NewLayoutRepository(db *sqlx.DB) *LayoutRepository {
	return &LayoutRepository{db: db}
}

// Upsert создает макет поездки или заменяет содержимое существующего,
// обновляя updated_at. Версионирования нет: одновременные записи дают
// last-write-wins по всему документу.
func (r *LayoutRepository) Upsert(tripID int, content types.JSONText) (*model.Layout, error) {
	query := `INSERT INTO layouts (trip_id, content) VALUES ($1, $2)
	          ON CONFLICT (trip_id) DO UPDATE SET content = EXCLUDED.content, updated_at = CURRENT_TIMESTAMP
	          RETURNING id, trip_id, content, updated_at`
	var layout model.Layout
	err := r.db.QueryRowx(query, tripID, content).StructScan(&layout)
	if err != nil {
		return nil, fmt.Errorf("не удалось сохранить макет: %w", err)
	}
	return &layout, nil
}

// GetByTrip возвращает макет поездки (sql.ErrNoRows, если макета еще нет).
func (r *LayoutRepository) GetByTrip(tripID int) (*model.Layout, error) {
	var layout model.Layout
	err := r.db.Get(&layout, "SELECT * FROM layouts WHERE trip_id=$1", tripID)
	if err != nil {
		return nil, err
	}
	return &layout, nil
}
