package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// MockBlogUsecase is a mock implementation of the IBlogUseCase interface
type MockBlogUsecase struct {
	// Control mock behavior
	ShouldFailCreate bool
	ShouldFailEdit   bool
	ShouldFailDelete bool
	ShouldFailList   bool
	ShouldFailGet    bool
	// FailWith is returned by failing calls; a generic error is used when nil
	FailWith error

	// Return values
	MockBlog     entity.Blog
	MockCategory *entity.CategoryRef

	// Recorded arguments
	LastTitle       *string
	LastDescription *string
	LastCategoryID  *string
	LastImages      []entity.ImagePayload
	LastLimit       int
}

// Ensure MockBlogUsecase implements the correct interface for handler.NewBlogHandler
var _ usecasecontract.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	return &MockBlogUsecase{
		MockBlog: entity.Blog{
			ID:     "mock-blog-id",
			Title:  "Alps",
			Images: []string{"https://img/1.jpg"},
		},
	}
}

func (m *MockBlogUsecase) fail() error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New("mock failure")
}

func (m *MockBlogUsecase) view() *entity.BlogView {
	return &entity.BlogView{Blog: m.MockBlog, Category: m.MockCategory}
}

func (m *MockBlogUsecase) CreateBlog(ctx context.Context, title, description string, images []entity.ImagePayload, categoryID *string) (*entity.Blog, error) {
	m.LastTitle, m.LastDescription, m.LastCategoryID, m.LastImages = &title, &description, categoryID, images
	if m.ShouldFailCreate {
		return nil, m.fail()
	}
	blog := m.MockBlog
	blog.Title = title
	blog.Description = description
	blog.CategoryID = categoryID
	return &blog, nil
}

func (m *MockBlogUsecase) EditBlog(ctx context.Context, blogID string, title, description, categoryID *string, images []entity.ImagePayload) (*entity.Blog, error) {
	m.LastTitle, m.LastDescription, m.LastCategoryID, m.LastImages = title, description, categoryID, images
	if m.ShouldFailEdit {
		return nil, m.fail()
	}
	blog := m.MockBlog
	blog.ID = blogID
	return &blog, nil
}

func (m *MockBlogUsecase) DeleteBlog(ctx context.Context, blogID string, categoryID *string) error {
	m.LastCategoryID = categoryID
	if m.ShouldFailDelete {
		return m.fail()
	}
	return nil
}

func (m *MockBlogUsecase) ListBlogs(ctx context.Context) ([]*entity.BlogView, error) {
	if m.ShouldFailList {
		return nil, m.fail()
	}
	return []*entity.BlogView{m.view()}, nil
}

func (m *MockBlogUsecase) GetRecentBlogs(ctx context.Context, limit int) ([]*entity.BlogView, error) {
	m.LastLimit = limit
	if m.ShouldFailList {
		return nil, m.fail()
	}
	return []*entity.BlogView{m.view()}, nil
}

func (m *MockBlogUsecase) GetBlogByID(ctx context.Context, blogID string) (*entity.BlogView, error) {
	if m.ShouldFailGet {
		return nil, m.fail()
	}
	return m.view(), nil
}
