package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/activity-catalog-api/internal/models"
)

// activitySelect derives the activity_type label from the referenced row.
const activitySelect = `SELECT a.id, a.title, a.description, a.image_url, a.activity_type_id,
	t.typename AS activity_type, a.capacity, a.price, a.schedule, a.expertise_level,
	COALESCE(a.is_highlighted, FALSE) AS is_highlighted, a.location
FROM activities a
JOIN activity_type t ON t.id = a.activity_type_id`

// ActivityRepository reads activities.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs an ActivityRepository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns every activity ordered by id.
func (r *ActivityRepository) List(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, activitySelect+"\nORDER BY a.id ASC"); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// ListHighlighted returns activities flagged as highlighted.
func (r *ActivityRepository) ListHighlighted(ctx context.Context) ([]models.Activity, error) {
	query := activitySelect + "\nWHERE a.is_highlighted = TRUE\nORDER BY a.id ASC"
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query); err != nil {
		return nil, fmt.Errorf("list highlighted activities: %w", err)
	}
	return activities, nil
}

// FindByID fetches an activity by ID. sql.ErrNoRows is returned as-is.
func (r *ActivityRepository) FindByID(ctx context.Context, id int64) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.GetContext(ctx, &activity, activitySelect+"\nWHERE a.id = $1", id); err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListByType returns the activities owned by an activity type.
func (r *ActivityRepository) ListByType(ctx context.Context, typeID int64) ([]models.Activity, error) {
	query := activitySelect + "\nWHERE a.activity_type_id = $1\nORDER BY a.id ASC"
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query, typeID); err != nil {
		return nil, fmt.Errorf("list activities by type: %w", err)
	}
	return activities, nil
}

// ListByTeacher returns the activities a teacher is linked to under role.
func (r *ActivityRepository) ListByTeacher(ctx context.Context, role models.TeacherRole, teacherID int64) ([]models.Activity, error) {
	table, ok := role.JunctionTable()
	if !ok {
		return nil, fmt.Errorf("list %s activities: unknown role", role)
	}

	query := fmt.Sprintf("%s\nJOIN %s j ON j.activity_id = a.id\nWHERE j.teacher_id = $1\nORDER BY a.id ASC", activitySelect, table)
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query, teacherID); err != nil {
		return nil, fmt.Errorf("list %s activities: %w", role, err)
	}
	return activities, nil
}
