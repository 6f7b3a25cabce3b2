package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/activity-catalog-api/internal/models"
)

const activityTypeSelect = `SELECT id, typename, short_description, image_url, long_description, benefits FROM activity_type`

// ActivityTypeRepository reads activity types.
type ActivityTypeRepository struct {
	db *sqlx.DB
}

// NewActivityTypeRepository constructs an ActivityTypeRepository.
func NewActivityTypeRepository(db *sqlx.DB) *ActivityTypeRepository {
	return &ActivityTypeRepository{db: db}
}

// List returns every activity type ordered by id.
func (r *ActivityTypeRepository) List(ctx context.Context) ([]models.ActivityType, error) {
	var types []models.ActivityType
	if err := r.db.SelectContext(ctx, &types, activityTypeSelect+" ORDER BY id ASC"); err != nil {
		return nil, fmt.Errorf("list activity types: %w", err)
	}
	return types, nil
}

// FindByID fetches an activity type by ID. sql.ErrNoRows is returned as-is.
func (r *ActivityTypeRepository) FindByID(ctx context.Context, id int64) (*models.ActivityType, error) {
	var activityType models.ActivityType
	if err := r.db.GetContext(ctx, &activityType, activityTypeSelect+" WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &activityType, nil
}
