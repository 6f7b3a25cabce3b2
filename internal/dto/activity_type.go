package dto

// ActivityTypeBasic is the shape used by GET /activity-types/.
type ActivityTypeBasic struct {
	ID               int64   `json:"id"`
	Typename         string  `json:"typename"`
	ShortDescription *string `json:"short_description"`
	ImageURL         *string `json:"image_url"`
}

// ActivityTypeFull is returned by GET /activity-types/{id}.
type ActivityTypeFull struct {
	ID               int64            `json:"id"`
	Typename         string           `json:"typename"`
	ShortDescription *string          `json:"short_description"`
	ImageURL         *string          `json:"image_url"`
	LongDescription  *string          `json:"long_description"`
	Benefits         *string          `json:"benefits"`
	Activities       []ActivityDetail `json:"activities"`
}
