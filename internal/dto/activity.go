package dto

// ActivityList is the compact activity shape used by list endpoints.
type ActivityList struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	ActivityType   string  `json:"activity_type"`
	ImageURL       *string `json:"image_url"`
	Location       string  `json:"location"`
	IsHighlighted  bool    `json:"is_highlighted"`
	ExpertiseLevel int     `json:"expertise_level"`
}

// ActivityDetail is returned by GET /activities/{id} and nested in ActivityTypeFull.
type ActivityDetail struct {
	ID                  int64                `json:"id"`
	Title               string               `json:"title"`
	Description         string               `json:"description"`
	ImageURL            *string              `json:"image_url"`
	ActivityType        string               `json:"activity_type"`
	ActivityTypeID      int64                `json:"activity_type_id"`
	Capacity            int                  `json:"capacity"`
	Price               float64              `json:"price"`
	Schedule            string               `json:"schedule"`
	ExpertiseLevel      int                  `json:"expertise_level"`
	IsHighlighted       bool                 `json:"is_highlighted"`
	Location            string               `json:"location"`
	ResponsibleTeachers []TeacherForActivity `json:"responsible_teachers"`
	TeachingTeachers    []TeacherForActivity `json:"teaching_teachers"`
}
