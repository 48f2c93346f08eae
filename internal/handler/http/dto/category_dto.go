package dto

import (
	"time"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// CreateCategoryRequest defines the structure for creating a category.
type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required,title"`
}

// UpdateCategoryRequest carries optional fields; a present blogs list replaces the set.
type UpdateCategoryRequest struct {
	Title *string  `json:"title" binding:"omitempty,title"`
	Blogs []string `json:"blogs"`
}

// CategoryResponse is a stored category with its member ids.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Blogs     []string  `json:"blogs"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryViewResponse is a category with its member blogs resolved.
type CategoryViewResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Blogs     []BlogResponse `json:"blogs"`
	CreatedAt time.Time      `json:"created_at"`
}

func ToCategoryResponse(category *entity.Category) CategoryResponse {
	blogs := category.Blogs
	if blogs == nil {
		blogs = []string{}
	}
	return CategoryResponse{
		ID:        category.ID,
		Title:     category.Title,
		Blogs:     blogs,
		CreatedAt: category.CreatedAt,
	}
}

func ToBlogViewValueResponses(views []entity.BlogView) []BlogResponse {
	resp := make([]BlogResponse, 0, len(views))
	for i := range views {
		resp = append(resp, ToBlogViewResponse(&views[i]))
	}
	return resp
}

func ToCategoryViewResponses(views []*entity.CategoryView) []CategoryViewResponse {
	resp := make([]CategoryViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, CategoryViewResponse{
			ID:        v.ID,
			Title:     v.Title,
			Blogs:     ToBlogViewValueResponses(v.Blogs),
			CreatedAt: v.CreatedAt,
		})
	}
	return resp
}
