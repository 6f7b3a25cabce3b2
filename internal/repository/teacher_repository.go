package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/activity-catalog-api/internal/models"
)

const teacherColumns = "tr.id, tr.first_name, tr.position_title, tr.bio, tr.email, tr.image_url"

// TeacherRepository reads teachers and their activity associations.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns every teacher ordered by id.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers tr ORDER BY tr.id ASC", teacherColumns)
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID. sql.ErrNoRows is returned as-is.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers tr WHERE tr.id = $1", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListByActivities returns the teachers attached to any of the given activities
// under role, one row per (activity, teacher) pair.
func (r *TeacherRepository) ListByActivities(ctx context.Context, role models.TeacherRole, activityIDs []int64) ([]models.ActivityTeacher, error) {
	table, ok := role.JunctionTable()
	if !ok {
		return nil, fmt.Errorf("list %s teachers: unknown role", role)
	}
	if len(activityIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT j.activity_id, %s
FROM %s j
JOIN teachers tr ON tr.id = j.teacher_id
WHERE j.activity_id = ANY($1)
ORDER BY j.activity_id ASC, tr.id ASC`, teacherColumns, table)

	var rows []models.ActivityTeacher
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(activityIDs)); err != nil {
		return nil, fmt.Errorf("list %s teachers: %w", role, err)
	}
	return rows, nil
}
