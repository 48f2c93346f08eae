package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// CategoryUseCase implements the ICategoryUseCase interface.
type CategoryUseCase struct {
	categoryRepo contract.ICategoryRepository
	blogRepo     contract.IBlogRepository
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
	config       usecasecontract.IConfigProvider
	validator    usecasecontract.IValidator
	blogCache    contract.IBlogCache
}

// check if CategoryUseCase implements the ICategoryUseCase
var _ usecasecontract.ICategoryUseCase = (*CategoryUseCase)(nil)

// NewCategoryUseCase creates a new CategoryUseCase instance.
func NewCategoryUseCase(
	categoryRepo contract.ICategoryRepository,
	blogRepo contract.IBlogRepository,
	uuidgenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		blogRepo:     blogRepo,
		uuidgen:      uuidgenerator,
		logger:       logger,
		config:       cfg,
		validator:    validator,
	}
}

// SetBlogCache injects the blog read cache so category changes can invalidate joined views.
func (uc *CategoryUseCase) SetBlogCache(cache contract.IBlogCache) {
	uc.blogCache = cache
}

// CreateCategory creates an empty category.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, title string) (*entity.Category, error) {
	title = strings.TrimSpace(title)
	if err := uc.validator.ValidateTitle(title); err != nil {
		return nil, apperror.Validation("title is required")
	}

	category := &entity.Category{
		ID:        uc.uuidgen.NewUUID(),
		Title:     title,
		Blogs:     []string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.categoryRepo.CreateCategory(ctx, category); err != nil {
		uc.logger.Errorf("failed to create category: %v", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// EditCategory updates the title and/or replaces the blogs set. The supplied blogs list is
// de-duplicated before it is stored.
func (uc *CategoryUseCase) EditCategory(ctx context.Context, categoryID string, title *string, blogs []string) (*entity.Category, error) {
	if err := uc.validator.ValidateID(categoryID); err != nil {
		return nil, apperror.Validation("category ID is required")
	}

	updates := make(map[string]interface{})
	if title != nil {
		t := strings.TrimSpace(*title)
		if err := uc.validator.ValidateTitle(t); err != nil {
			return nil, apperror.Validation("title cannot be empty")
		}
		updates["title"] = t
	}
	if blogs != nil {
		updates["blogs"] = entity.DedupeIDs(blogs)
	}

	if len(updates) == 0 {
		category, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
		return category, nil
	}

	var previous []string
	if uc.blogCache != nil {
		if current, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID); err == nil {
			previous = current.Blogs
		}
	}

	category, err := uc.categoryRepo.UpdateCategory(ctx, categoryID, updates)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Errorf("failed to update category %s: %v", categoryID, err)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	uc.invalidateBlogViews(ctx, previous, category.Blogs)
	return category, nil
}

// DeleteCategory removes a category according to the configured delete policy.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := uc.validator.ValidateID(categoryID); err != nil {
		return apperror.Validation("category ID is required")
	}

	policy := uc.config.GetCategoryDeletePolicy()
	if policy == entity.CategoryDeleteReject {
		if _, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID); err != nil {
			return fmt.Errorf("failed to get category: %w", err)
		}
		count, err := uc.blogRepo.CountBlogsByCategory(ctx, categoryID)
		if err != nil {
			uc.logger.Errorf("failed to count blogs in category %s: %v", categoryID, err)
			return fmt.Errorf("failed to delete category: %w", err)
		}
		if count > 0 {
			return apperror.Conflict("category %s is still referenced by %d blog(s)", categoryID, count)
		}
	}

	deleted, err := uc.categoryRepo.DeleteCategory(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Errorf("failed to delete category %s: %v", categoryID, err)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if policy != entity.CategoryDeleteReject {
		detached, err := uc.blogRepo.ClearCategory(ctx, categoryID)
		if err != nil {
			uc.logger.Warningf("category %s deleted but detaching its blogs failed: %v", categoryID, err)
		} else if detached > 0 {
			uc.logger.Infof("category %s deleted, detached %d blog(s)", categoryID, detached)
		}
	}

	uc.invalidateBlogViews(ctx, deleted.Blogs)
	return nil
}

// ListCategories returns every category with its member blogs resolved.
func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.CategoryView, error) {
	categories, err := uc.categoryRepo.ListCategoryViews(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list categories: %v", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetBlogsByCategory returns the resolved blogs of a category.
func (uc *CategoryUseCase) GetBlogsByCategory(ctx context.Context, categoryID string) ([]entity.BlogView, error) {
	if err := uc.validator.ValidateID(categoryID); err != nil {
		return nil, apperror.Validation("category ID is required")
	}

	category, err := uc.categoryRepo.GetCategoryView(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Errorf("failed to get category %s: %v", categoryID, err)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category.Blogs == nil {
		return []entity.BlogView{}, nil
	}
	return category.Blogs, nil
}

// invalidateBlogViews drops the list caches and the detail entries of every member blog,
// since each of them embeds the category's title.
func (uc *CategoryUseCase) invalidateBlogViews(ctx context.Context, members ...[]string) {
	if uc.blogCache == nil {
		return
	}
	if err := uc.blogCache.InvalidateBlogLists(ctx); err != nil {
		uc.logger.Warningf("failed to invalidate blog list caches: %v", err)
	}
	seen := make(map[string]struct{})
	for _, ids := range members {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			if err := uc.blogCache.InvalidateBlog(ctx, id); err != nil {
				uc.logger.Warningf("failed to invalidate cached blog %s: %v", id, err)
			}
		}
	}
}
