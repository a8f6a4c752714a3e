package models

// Post represents a single post with optional attached media
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"` // relative path under /uploads
	Video       string `json:"video,omitempty"` // relative path under /uploads
	Actress     string `json:"actress"`
}
