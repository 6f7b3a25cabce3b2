package models

// Teacher is a row of the teachers table.
type Teacher struct {
	ID            int64  `db:"id"`
	FirstName     string `db:"first_name"`
	PositionTitle string `db:"position_title"`
	Bio           string `db:"bio"`
	Email         string `db:"email"`
	ImageURL      string `db:"image_url"`
}

// ActivityTeacher is a teacher joined through a junction table, keyed by the
// activity it is attached to.
type ActivityTeacher struct {
	ActivityID int64 `db:"activity_id"`
	Teacher
}
