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
	"github.com/mikiasgoitom/Folio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

const (
	blogsListAllKey    = "blogs:list:all"
	blogsListRecentKey = "blogs:list:recent:%d"

	// MaxRecentBlogs caps the size of a recent blogs list.
	MaxRecentBlogs = 50
)

// BlogUseCaseImpl implements the IBlogUseCase interface. It is stateless between requests:
// the stores are the only shared mutable resource.
type BlogUseCaseImpl struct {
	blogRepo     contract.IBlogRepository
	categoryRepo contract.ICategoryRepository
	ingestor     *MediaIngestor
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
	config       usecasecontract.IConfigProvider
	validator    usecasecontract.IValidator
	blogCache    contract.IBlogCache
	now          func() time.Time
}

// NewBlogUseCase creates a new instance of BlogUseCase. categoryRepo may be nil when the
// service runs without categories.
func NewBlogUseCase(
	blogRepo contract.IBlogRepository,
	categoryRepo contract.ICategoryRepository,
	ingestor *MediaIngestor,
	uuidgenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
) *BlogUseCaseImpl {
	return &BlogUseCaseImpl{
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		ingestor:     ingestor,
		uuidgen:      uuidgenerator,
		logger:       logger,
		config:       cfg,
		validator:    validator,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// check if BlogUseCaseImpl implements the IBlogUseCase
var _ usecasecontract.IBlogUseCase = (*BlogUseCaseImpl)(nil)

// SetBlogCache injects the optional read cache.
func (uc *BlogUseCaseImpl) SetBlogCache(cache contract.IBlogCache) {
	uc.blogCache = cache
}

func (uc *BlogUseCaseImpl) categoriesEnabled() bool {
	return uc.categoryRepo != nil && uc.config.CategoriesEnabled()
}

// categoryTarget returns the trimmed category id, or "" when none applies.
func (uc *BlogUseCaseImpl) categoryTarget(categoryID *string) string {
	if categoryID == nil || !uc.categoriesEnabled() {
		return ""
	}
	return strings.TrimSpace(*categoryID)
}

// CreateBlog uploads the images, persists the blog and links it into its category.
func (uc *BlogUseCaseImpl) CreateBlog(ctx context.Context, title, description string, images []entity.ImagePayload, categoryID *string) (*entity.Blog, error) {
	title = strings.TrimSpace(title)
	if err := uc.validator.ValidateTitle(title); err != nil {
		return nil, apperror.Validation("title is required")
	}
	target := uc.categoryTarget(categoryID)

	urls, err := uc.ingestor.Ingest(ctx, images)
	if err != nil {
		return nil, err
	}

	blog := &entity.Blog{
		ID:          uc.uuidgen.NewUUID(),
		Title:       title,
		Description: description,
		Images:      urls,
		CreatedAt:   uc.now(),
	}
	if target != "" {
		blog.CategoryID = &target
	}

	if err := uc.blogRepo.CreateBlog(ctx, blog); err != nil {
		uc.logger.Errorf("failed to create blog: %v", err)
		uc.ingestor.Reclaim(ctx, urls, ReclaimPartialUpload)
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	// The blog is committed at this point; the back-reference is best effort.
	if target != "" {
		uc.linkCategory(ctx, target, blog.ID, "create")
	}

	uc.invalidateLists(ctx)
	return blog, nil
}

// EditBlog applies the supplied fields. New images replace the old list wholesale; without new
// images the stored list is left untouched.
func (uc *BlogUseCaseImpl) EditBlog(ctx context.Context, blogID string, title, description, categoryID *string, images []entity.ImagePayload) (*entity.Blog, error) {
	if err := uc.validator.ValidateID(blogID); err != nil {
		return nil, apperror.Validation("blog ID is required")
	}

	existing, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Errorf("failed to get blog: %v", err)
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	updates := make(map[string]interface{})
	if title != nil {
		t := strings.TrimSpace(*title)
		if err := uc.validator.ValidateTitle(t); err != nil {
			return nil, apperror.Validation("title cannot be empty")
		}
		updates["title"] = t
	}
	if description != nil {
		updates["description"] = *description
	}
	target := uc.categoryTarget(categoryID)
	if target != "" {
		updates["category"] = target
	}

	var urls []string
	if len(images) > 0 {
		urls, err = uc.ingestor.Ingest(ctx, images)
		if err != nil {
			return nil, err
		}
		updates["images"] = urls
	}

	if len(updates) == 0 {
		return existing, nil
	}

	updated, err := uc.blogRepo.UpdateBlog(ctx, blogID, updates)
	if err != nil {
		uc.logger.Errorf("failed to update blog %s: %v", blogID, err)
		uc.ingestor.Reclaim(ctx, urls, ReclaimPartialUpload)
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	if len(urls) > 0 {
		uc.ingestor.Reclaim(ctx, existing.Images, ReclaimImagesReplace)
	}

	if target != "" {
		uc.linkCategory(ctx, target, blogID, "edit")
		if existing.HasCategory() && *existing.CategoryID != target {
			if uc.config.DetachPreviousCategory() {
				uc.unlinkCategory(ctx, *existing.CategoryID, blogID, "edit")
			} else {
				uc.logger.Warningf("blog %s moved to category %s but is still listed in previous category %s", blogID, target, *existing.CategoryID)
			}
		}
	}

	uc.invalidateBlog(ctx, blogID)
	return updated, nil
}

// DeleteBlog removes the blog and retracts it from the supplied category and from the
// category it was recorded under.
func (uc *BlogUseCaseImpl) DeleteBlog(ctx context.Context, blogID string, categoryID *string) error {
	if err := uc.validator.ValidateID(blogID); err != nil {
		return apperror.Validation("blog ID is required")
	}

	deleted, err := uc.blogRepo.DeleteBlog(ctx, blogID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Errorf("failed to delete blog %s: %v", blogID, err)
		}
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	if uc.categoriesEnabled() {
		targets := []string{uc.categoryTarget(categoryID)}
		if deleted.HasCategory() {
			targets = append(targets, *deleted.CategoryID)
		}
		for _, target := range entity.DedupeIDs(targets) {
			uc.unlinkCategory(ctx, target, blogID, "delete")
		}
	}

	uc.ingestor.Reclaim(ctx, deleted.Images, ReclaimBlogDeleted)
	uc.invalidateBlog(ctx, blogID)
	return nil
}

func (uc *BlogUseCaseImpl) linkCategory(ctx context.Context, categoryID, blogID, op string) {
	if err := uc.categoryRepo.AddBlog(ctx, categoryID, blogID); err != nil {
		metrics.IncRelationshipFailure(op + "_link")
		uc.logger.Warningf("failed to add blog %s to category %s: %v", blogID, categoryID, err)
	}
}

func (uc *BlogUseCaseImpl) unlinkCategory(ctx context.Context, categoryID, blogID, op string) {
	if err := uc.categoryRepo.RemoveBlog(ctx, categoryID, blogID); err != nil {
		metrics.IncRelationshipFailure(op + "_unlink")
		uc.logger.Warningf("failed to remove blog %s from category %s: %v", blogID, categoryID, err)
	}
}

// ListBlogs returns every blog, newest first.
func (uc *BlogUseCaseImpl) ListBlogs(ctx context.Context) ([]*entity.BlogView, error) {
	return uc.cachedList(ctx, blogsListAllKey, &contract.BlogFilterOptions{WithCategory: uc.categoriesEnabled()})
}

// GetRecentBlogs returns at most limit blogs, newest first. A non-positive limit falls back
// to the configured default; larger limits are clamped to MaxRecentBlogs.
func (uc *BlogUseCaseImpl) GetRecentBlogs(ctx context.Context, limit int) ([]*entity.BlogView, error) {
	if limit <= 0 {
		limit = uc.config.GetRecentBlogsLimit()
	}
	if limit > MaxRecentBlogs {
		limit = MaxRecentBlogs
	}
	key := fmt.Sprintf(blogsListRecentKey, limit)
	return uc.cachedList(ctx, key, &contract.BlogFilterOptions{Limit: int64(limit), WithCategory: uc.categoriesEnabled()})
}

// GetBlogByID returns a blog joined with its category.
func (uc *BlogUseCaseImpl) GetBlogByID(ctx context.Context, blogID string) (*entity.BlogView, error) {
	if err := uc.validator.ValidateID(blogID); err != nil {
		return nil, apperror.Validation("blog ID is required")
	}

	// Cache first
	if uc.blogCache != nil {
		t0 := time.Now()
		cached, found, err := uc.blogCache.GetBlog(ctx, blogID)
		elapsed := time.Since(t0)
		if err == nil && found && cached != nil {
			metrics.IncDetailHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: blog detail id=%s took=%s", blogID, elapsed)
			return cached, nil
		} else if err == nil {
			metrics.IncDetailMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Debugf("cache miss: blog detail id=%s took=%s", blogID, elapsed)
		} else {
			uc.logger.Warningf("cache error: blog detail id=%s err=%v took=%s", blogID, err, elapsed)
		}
	}

	blog, err := uc.blogRepo.GetBlogView(ctx, blogID, uc.categoriesEnabled())
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Errorf("failed to get blog %s: %v", blogID, err)
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	if uc.blogCache != nil {
		if err := uc.blogCache.SetBlog(ctx, blogID, blog); err != nil {
			uc.logger.Warningf("failed to cache blog %s: %v", blogID, err)
		}
	}
	return blog, nil
}

func (uc *BlogUseCaseImpl) cachedList(ctx context.Context, key string, opts *contract.BlogFilterOptions) ([]*entity.BlogView, error) {
	// Try cache first
	if uc.blogCache != nil {
		t0 := time.Now()
		cached, found, err := uc.blogCache.GetBlogList(ctx, key)
		elapsed := time.Since(t0)
		if err == nil && found {
			metrics.IncListHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: blogs list key=%s took=%s", key, elapsed)
			return cached, nil
		} else if err == nil {
			metrics.IncListMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Debugf("cache miss: blogs list key=%s took=%s", key, elapsed)
		} else {
			uc.logger.Warningf("cache error: blogs list key=%s err=%v took=%s", key, err, elapsed)
		}
	}

	dbStart := time.Now()
	blogs, err := uc.blogRepo.ListBlogViews(ctx, opts)
	if err != nil {
		uc.logger.Errorf("failed to list blogs: %v", err)
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	uc.logger.Debugf("db fetch: blogs list key=%s size=%d took=%s", key, len(blogs), time.Since(dbStart))

	if uc.blogCache != nil {
		if err := uc.blogCache.SetBlogList(ctx, key, blogs); err != nil {
			uc.logger.Warningf("failed to cache blogs list key=%s: %v", key, err)
		}
	}
	return blogs, nil
}

func (uc *BlogUseCaseImpl) invalidateLists(ctx context.Context) {
	if uc.blogCache == nil {
		return
	}
	if err := uc.blogCache.InvalidateBlogLists(ctx); err != nil {
		uc.logger.Warningf("failed to invalidate blog list caches: %v", err)
	}
}

func (uc *BlogUseCaseImpl) invalidateBlog(ctx context.Context, blogID string) {
	if uc.blogCache == nil {
		return
	}
	if err := uc.blogCache.InvalidateBlog(ctx, blogID); err != nil {
		uc.logger.Warningf("failed to invalidate blog %s cache: %v", blogID, err)
	}
	uc.invalidateLists(ctx)
}
