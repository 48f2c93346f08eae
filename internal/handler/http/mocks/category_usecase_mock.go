package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// MockCategoryUsecase is a mock implementation of the ICategoryUseCase interface
type MockCategoryUsecase struct {
	ShouldFailCreate bool
	ShouldFailEdit   bool
	ShouldFailDelete bool
	ShouldFailList   bool
	FailWith         error

	MockCategory entity.Category
	MockBlogs    []entity.BlogView

	LastTitle *string
	LastBlogs []string
}

var _ usecasecontract.ICategoryUseCase = (*MockCategoryUsecase)(nil)

func NewMockCategoryUsecase() *MockCategoryUsecase {
	return &MockCategoryUsecase{
		MockCategory: entity.Category{ID: "mock-category-id", Title: "Travel", Blogs: []string{}},
	}
}

func (m *MockCategoryUsecase) fail() error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New("mock failure")
}

func (m *MockCategoryUsecase) CreateCategory(ctx context.Context, title string) (*entity.Category, error) {
	m.LastTitle = &title
	if m.ShouldFailCreate {
		return nil, m.fail()
	}
	category := m.MockCategory
	category.Title = title
	return &category, nil
}

func (m *MockCategoryUsecase) EditCategory(ctx context.Context, categoryID string, title *string, blogs []string) (*entity.Category, error) {
	m.LastTitle, m.LastBlogs = title, blogs
	if m.ShouldFailEdit {
		return nil, m.fail()
	}
	category := m.MockCategory
	if blogs != nil {
		category.Blogs = blogs
	}
	return &category, nil
}

func (m *MockCategoryUsecase) DeleteCategory(ctx context.Context, categoryID string) error {
	if m.ShouldFailDelete {
		return m.fail()
	}
	return nil
}

func (m *MockCategoryUsecase) ListCategories(ctx context.Context) ([]*entity.CategoryView, error) {
	if m.ShouldFailList {
		return nil, m.fail()
	}
	return []*entity.CategoryView{{
		ID:    m.MockCategory.ID,
		Title: m.MockCategory.Title,
		Blogs: m.MockBlogs,
	}}, nil
}

func (m *MockCategoryUsecase) GetBlogsByCategory(ctx context.Context, categoryID string) ([]entity.BlogView, error) {
	if m.ShouldFailList {
		return nil, m.fail()
	}
	if m.MockBlogs == nil {
		return []entity.BlogView{}, nil
	}
	return m.MockBlogs, nil
}
