package domain

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Rating pairs the average rating with its review count. A product either
// has both values or neither, never one without the other.
type Rating struct {
	Value       float64 `json:"value"` // 0..5
	ReviewCount int     `json:"review_count"`
}

type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Price        int64    `json:"price"` // minor-unit-free currency amount
	Currency     string   `json:"currency"`
	Images       []string `json:"images"`   // ordered, non-empty
	Category     string   `json:"category"` // Category slug
	Material     string   `json:"material"`
	Finish       string   `json:"finish"`
	Availability bool     `json:"availability"`
	Rating       *Rating  `json:"rating,omitempty"`
	Features     []string `json:"features"`
}
