package entity

import (
	"time"
)

// Blog represents a published post.
type Blog struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Images      []string  `bson:"images" json:"images"`
	CategoryID  *string   `bson:"category,omitempty" json:"category_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// HasCategory reports whether the blog is linked to a category.
func (b *Blog) HasCategory() bool {
	return b.CategoryID != nil && *b.CategoryID != ""
}

// BlogView is a blog joined with the category it points to.
type BlogView struct {
	Blog     `bson:",inline"`
	Category *CategoryRef `bson:"category_doc,omitempty" json:"category,omitempty"`
}

// ImagePayload is a raw image submitted by a client, before it has been hosted.
type ImagePayload struct {
	Filename    string
	ContentType string
	Data        []byte
}
