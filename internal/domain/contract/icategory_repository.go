package contract

import (
	"context"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// ICategoryRepository defines the persistence operations for categories and their back-references.
type ICategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	GetCategoryByID(ctx context.Context, categoryID string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, updates map[string]interface{}) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) (*entity.Category, error)

	// AddBlog adds blogID to the category's blogs set. Adding an existing member is a no-op.
	AddBlog(ctx context.Context, categoryID, blogID string) error
	// RemoveBlog removes blogID from the category's blogs set. Removing a non-member is a no-op.
	RemoveBlog(ctx context.Context, categoryID, blogID string) error

	ListCategoryViews(ctx context.Context) ([]*entity.CategoryView, error)
	GetCategoryView(ctx context.Context, categoryID string) (*entity.CategoryView, error)
}
