package contract

import (
	"context"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// IBlogCache defines caching operations for blog reads.
type IBlogCache interface {
	// Detail (by id)
	GetBlog(ctx context.Context, blogID string) (*entity.BlogView, bool, error)
	SetBlog(ctx context.Context, blogID string, blog *entity.BlogView) error
	InvalidateBlog(ctx context.Context, blogID string) error

	// Lists (key built by usecase)
	GetBlogList(ctx context.Context, key string) ([]*entity.BlogView, bool, error)
	SetBlogList(ctx context.Context, key string, blogs []*entity.BlogView) error
	InvalidateBlogLists(ctx context.Context) error
}
