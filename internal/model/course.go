package model

// Course represents one purchasable unit in the catalog.
//
// Rating is stored in tenths of a star (49 == 4.9 stars) and is optional,
// as are the bullet points and the long-form description shown on the
// detail page. Price is a plain integer with no currency-minor-unit
// assumption.
type Course struct {
	ID                  int      `db:"id" json:"id"`
	Title               string   `db:"title" json:"title"`
	Description         string   `db:"description" json:"description"`
	Level               string   `db:"level" json:"level"`
	Price               int      `db:"price" json:"price"`
	Instructor          string   `db:"instructor" json:"instructor"`
	Rating              *int     `db:"rating" json:"rating"`
	ImageURL            string   `db:"image_url" json:"imageUrl"`
	Duration            string   `db:"duration" json:"duration"`
	Bullets             []string `db:"bullets" json:"bullets"`
	Category            string   `db:"category" json:"category"`
	DetailedDescription string   `db:"detailed_description" json:"detailedDescription"`
}
