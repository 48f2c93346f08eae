package contract

import (
	"context"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// IBlogRepository provides methods for managing blog documents in the database.
type IBlogRepository interface {
	CreateBlog(ctx context.Context, blog *entity.Blog) error
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)
	// GetBlogView retrieves a blog joined with its category.
	GetBlogView(ctx context.Context, blogID string, withCategory bool) (*entity.BlogView, error)
	// ListBlogViews retrieves blogs newest first, optionally joined with their category.
	ListBlogViews(ctx context.Context, opts *BlogFilterOptions) ([]*entity.BlogView, error)
	// UpdateBlog applies the updates and returns the document as stored afterwards.
	UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) (*entity.Blog, error)
	// DeleteBlog removes the blog and returns the document as it was before removal.
	DeleteBlog(ctx context.Context, blogID string) (*entity.Blog, error)
	CountBlogsByCategory(ctx context.Context, categoryID string) (int64, error)
	// ClearCategory unsets the category reference on every blog that points to categoryID.
	ClearCategory(ctx context.Context, categoryID string) (int64, error)
}

// BlogFilterOptions encapsulates the listing parameters for blog retrieval.
type BlogFilterOptions struct {
	Limit        int64 // 0 means no limit
	WithCategory bool
}
