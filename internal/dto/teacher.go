package dto

// TeacherList is the teacher shape used by GET /teachers/.
type TeacherList struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	ImageURL      string `json:"image_url"`
	PositionTitle string `json:"position_title"`
}

// TeacherForActivity is the minimal teacher shape nested in activities.
type TeacherForActivity struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	PositionTitle string `json:"position_title"`
}

// TeacherDetail is returned by GET /teachers/{id}.
type TeacherDetail struct {
	ID                    int64          `json:"id"`
	FirstName             string         `json:"first_name"`
	PositionTitle         string         `json:"position_title"`
	Bio                   string         `json:"bio"`
	Email                 string         `json:"email"`
	ImageURL              *string        `json:"image_url"`
	TeachingActivities    []ActivityList `json:"teaching_activities"`
	ResponsibleActivities []ActivityList `json:"responsible_activities"`
}
