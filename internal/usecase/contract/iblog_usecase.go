package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// IBlogUseCase coordinates blog writes with media ingestion and category back-references,
// and serves the blog read side.
type IBlogUseCase interface {
	CreateBlog(ctx context.Context, title, description string, images []entity.ImagePayload, categoryID *string) (*entity.Blog, error)
	EditBlog(ctx context.Context, blogID string, title, description, categoryID *string, images []entity.ImagePayload) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, blogID string, categoryID *string) error

	ListBlogs(ctx context.Context) ([]*entity.BlogView, error)
	GetRecentBlogs(ctx context.Context, limit int) ([]*entity.BlogView, error)
	GetBlogByID(ctx context.Context, blogID string) (*entity.BlogView, error)
}
