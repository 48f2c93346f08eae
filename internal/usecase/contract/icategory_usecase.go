package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// ICategoryUseCase manages categories and the category side of the query surface.
type ICategoryUseCase interface {
	CreateCategory(ctx context.Context, title string) (*entity.Category, error)
	EditCategory(ctx context.Context, categoryID string, title *string, blogs []string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	ListCategories(ctx context.Context) ([]*entity.CategoryView, error)
	GetBlogsByCategory(ctx context.Context, categoryID string) ([]entity.BlogView, error)
}
