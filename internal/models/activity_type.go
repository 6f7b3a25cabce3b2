package models

// ActivityType is a row of the activity_type table.
type ActivityType struct {
	ID               int64   `db:"id"`
	Typename         string  `db:"typename"`
	ShortDescription *string `db:"short_description"`
	ImageURL         *string `db:"image_url"`
	LongDescription  *string `db:"long_description"`
	Benefits         *string `db:"benefits"`
}
