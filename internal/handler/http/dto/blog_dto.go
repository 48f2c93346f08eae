package dto

import (
	"time"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// Blogs are written through multipart forms, so there are no JSON request DTOs for them.
// Form fields: title, description, categoryId and one or more files under images.

// CategoryRefResponse is the slim category embedded in a blog response.
type CategoryRefResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// BlogResponse defines the standard JSON response for a single blog
type BlogResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Images      []string             `json:"images"`
	CategoryID  *string              `json:"category_id,omitempty"`
	Category    *CategoryRefResponse `json:"category,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// ToBlogResponse maps a stored blog.
func ToBlogResponse(blog *entity.Blog) BlogResponse {
	images := blog.Images
	if images == nil {
		images = []string{}
	}
	return BlogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Description: blog.Description,
		Images:      images,
		CategoryID:  blog.CategoryID,
		CreatedAt:   blog.CreatedAt,
	}
}

// ToBlogViewResponse maps a blog joined with its category.
func ToBlogViewResponse(view *entity.BlogView) BlogResponse {
	resp := ToBlogResponse(&view.Blog)
	if view.Category != nil {
		resp.Category = &CategoryRefResponse{ID: view.Category.ID, Title: view.Category.Title}
	}
	return resp
}

func ToBlogViewResponses(views []*entity.BlogView) []BlogResponse {
	resp := make([]BlogResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, ToBlogViewResponse(v))
	}
	return resp
}
