package models

// Activity is a row of the activities table joined with its type label.
type Activity struct {
	ID             int64   `db:"id"`
	Title          string  `db:"title"`
	Description    string  `db:"description"`
	ImageURL       *string `db:"image_url"`
	ActivityTypeID int64   `db:"activity_type_id"`
	// ActivityType is activity_type.typename, resolved by join on every read.
	ActivityType   string  `db:"activity_type"`
	Capacity       int     `db:"capacity"`
	Price          float64 `db:"price"`
	Schedule       string  `db:"schedule"`
	ExpertiseLevel int     `db:"expertise_level"`
	IsHighlighted  bool    `db:"is_highlighted"`
	Location       string  `db:"location"`
}

// TeacherRole names one of the two independent teacher↔activity association sets.
type TeacherRole string

const (
	RoleResponsible TeacherRole = "responsible"
	RoleTeaching    TeacherRole = "teaching"
)

// TeacherRoles lists every association set in a stable order.
var TeacherRoles = []TeacherRole{RoleResponsible, RoleTeaching}

// JunctionTable returns the association table backing the role.
func (r TeacherRole) JunctionTable() (string, bool) {
	switch r {
	case RoleResponsible:
		return "activity_responsible_teachers", true
	case RoleTeaching:
		return "activity_teaching_teachers", true
	default:
		return "", false
	}
}
