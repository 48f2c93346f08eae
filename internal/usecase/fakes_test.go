package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/validator"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// memStore is an in-memory blog and category store honoring the same set semantics as Mongo.
type memStore struct {
	mu         sync.Mutex
	blogs      map[string]*entity.Blog
	categories map[string]*entity.Category

	failCreateBlog error
	failAddBlog    error
	failRemoveBlog error
	addCalls       int
	removeCalls    int
}

var (
	_ contract.IBlogRepository     = (*memStore)(nil)
	_ contract.ICategoryRepository = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		blogs:      map[string]*entity.Blog{},
		categories: map[string]*entity.Category{},
	}
}

func cloneBlog(b *entity.Blog) *entity.Blog {
	c := *b
	c.Images = append([]string(nil), b.Images...)
	if b.CategoryID != nil {
		id := *b.CategoryID
		c.CategoryID = &id
	}
	return &c
}

func cloneCategory(c *entity.Category) *entity.Category {
	out := *c
	out.Blogs = append([]string{}, c.Blogs...)
	return &out
}

func (s *memStore) CreateBlog(_ context.Context, blog *entity.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreateBlog != nil {
		return s.failCreateBlog
	}
	s.blogs[blog.ID] = cloneBlog(blog)
	return nil
}

func (s *memStore) GetBlogByID(_ context.Context, id string) (*entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blogs[id]
	if !ok {
		return nil, apperror.NotFound("blog with id '%s' not found", id)
	}
	return cloneBlog(b), nil
}

func (s *memStore) view(b *entity.Blog, withCategory bool) *entity.BlogView {
	v := &entity.BlogView{Blog: *cloneBlog(b)}
	if withCategory && b.HasCategory() {
		if c, ok := s.categories[*b.CategoryID]; ok {
			v.Category = &entity.CategoryRef{ID: c.ID, Title: c.Title}
		}
	}
	return v
}

func (s *memStore) GetBlogView(_ context.Context, id string, withCategory bool) (*entity.BlogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blogs[id]
	if !ok {
		return nil, apperror.NotFound("blog with id '%s' not found", id)
	}
	return s.view(b, withCategory), nil
}

func (s *memStore) ListBlogViews(_ context.Context, opts *contract.BlogFilterOptions) ([]*entity.BlogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*entity.Blog, 0, len(s.blogs))
	for _, b := range s.blogs {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	if opts != nil && opts.Limit > 0 && int64(len(all)) > opts.Limit {
		all = all[:opts.Limit]
	}
	out := make([]*entity.BlogView, 0, len(all))
	for _, b := range all {
		out = append(out, s.view(b, opts != nil && opts.WithCategory))
	}
	return out, nil
}

func (s *memStore) UpdateBlog(_ context.Context, id string, updates map[string]interface{}) (*entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blogs[id]
	if !ok {
		return nil, apperror.NotFound("blog with id '%s' not found", id)
	}
	for k, v := range updates {
		switch k {
		case "title":
			b.Title = v.(string)
		case "description":
			b.Description = v.(string)
		case "category":
			c := v.(string)
			b.CategoryID = &c
		case "images":
			b.Images = append([]string(nil), v.([]string)...)
		default:
			return nil, fmt.Errorf("unexpected update field %q", k)
		}
	}
	return cloneBlog(b), nil
}

func (s *memStore) DeleteBlog(_ context.Context, id string) (*entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blogs[id]
	if !ok {
		return nil, apperror.NotFound("blog with id '%s' not found", id)
	}
	delete(s.blogs, id)
	return b, nil
}

func (s *memStore) CountBlogsByCategory(_ context.Context, categoryID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, b := range s.blogs {
		if b.HasCategory() && *b.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) ClearCategory(_ context.Context, categoryID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, b := range s.blogs {
		if b.HasCategory() && *b.CategoryID == categoryID {
			b.CategoryID = nil
			n++
		}
	}
	return n, nil
}

func (s *memStore) CreateCategory(_ context.Context, c *entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = cloneCategory(c)
	return nil
}

func (s *memStore) GetCategoryByID(_ context.Context, id string) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, apperror.NotFound("category with id '%s' not found", id)
	}
	return cloneCategory(c), nil
}

func (s *memStore) UpdateCategory(_ context.Context, id string, updates map[string]interface{}) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, apperror.NotFound("category with id '%s' not found", id)
	}
	for k, v := range updates {
		switch k {
		case "title":
			c.Title = v.(string)
		case "blogs":
			c.Blogs = append([]string{}, v.([]string)...)
		default:
			return nil, fmt.Errorf("unexpected update field %q", k)
		}
	}
	return cloneCategory(c), nil
}

func (s *memStore) DeleteCategory(_ context.Context, id string) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, apperror.NotFound("category with id '%s' not found", id)
	}
	delete(s.categories, id)
	return c, nil
}

func (s *memStore) AddBlog(_ context.Context, categoryID, blogID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addCalls++
	if s.failAddBlog != nil {
		return s.failAddBlog
	}
	c, ok := s.categories[categoryID]
	if !ok {
		return apperror.NotFound("category with id '%s' not found", categoryID)
	}
	for _, id := range c.Blogs {
		if id == blogID {
			return nil
		}
	}
	c.Blogs = append(c.Blogs, blogID)
	return nil
}

func (s *memStore) RemoveBlog(_ context.Context, categoryID, blogID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeCalls++
	if s.failRemoveBlog != nil {
		return s.failRemoveBlog
	}
	c, ok := s.categories[categoryID]
	if !ok {
		return apperror.NotFound("category with id '%s' not found", categoryID)
	}
	kept := c.Blogs[:0]
	for _, id := range c.Blogs {
		if id != blogID {
			kept = append(kept, id)
		}
	}
	c.Blogs = kept
	return nil
}

func (s *memStore) categoryView(c *entity.Category) *entity.CategoryView {
	v := &entity.CategoryView{ID: c.ID, Title: c.Title, CreatedAt: c.CreatedAt, Blogs: []entity.BlogView{}}
	for _, id := range c.Blogs {
		if b, ok := s.blogs[id]; ok {
			v.Blogs = append(v.Blogs, *s.view(b, true))
		}
	}
	return v
}

func (s *memStore) ListCategoryViews(_ context.Context) ([]*entity.CategoryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.CategoryView, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, s.categoryView(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) GetCategoryView(_ context.Context, id string) (*entity.CategoryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, apperror.NotFound("category with id '%s' not found", id)
	}
	return s.categoryView(c), nil
}

func (s *memStore) members(categoryID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.categories[categoryID]; ok {
		return append([]string{}, c.Blogs...)
	}
	return nil
}

// fakeUploader hosts images as https://media.test/<filename>.
type fakeUploader struct {
	mu       sync.Mutex
	failOn   map[string]error
	delays   map[string]time.Duration
	attempts []string

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (u *fakeUploader) Upload(ctx context.Context, img entity.ImagePayload, folder string) (string, error) {
	n := u.inFlight.Add(1)
	defer u.inFlight.Add(-1)
	for {
		m := u.maxInFlight.Load()
		if n <= m || u.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}

	u.mu.Lock()
	u.attempts = append(u.attempts, img.Filename)
	err := u.failOn[img.Filename]
	delay := u.delays[img.Filename]
	u.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return "https://media.test/" + folder + "/" + img.Filename, nil
}

func (u *fakeUploader) attempted() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.attempts...)
}

type reclaimCall struct {
	urls   []string
	reason string
}

type fakeReclaimer struct {
	mu    sync.Mutex
	calls []reclaimCall
	err   error
}

func (r *fakeReclaimer) Reclaim(_ context.Context, urls []string, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, reclaimCall{urls: append([]string(nil), urls...), reason: reason})
	return r.err
}

type stubConfig struct {
	categories     bool
	deletePolicy   entity.CategoryDeletePolicy
	detachPrevious bool
	recentLimit    int
	adminHash      string
}

var _ usecasecontract.IConfigProvider = (*stubConfig)(nil)

func (c *stubConfig) GetAppBaseURL() string   { return "http://localhost:8080" }
func (c *stubConfig) CategoriesEnabled() bool { return c.categories }
func (c *stubConfig) GetCategoryDeletePolicy() entity.CategoryDeletePolicy {
	if c.deletePolicy == "" {
		return entity.CategoryDeleteDetach
	}
	return c.deletePolicy
}
func (c *stubConfig) DetachPreviousCategory() bool { return c.detachPrevious }
func (c *stubConfig) GetRecentBlogsLimit() int {
	if c.recentLimit <= 0 {
		return 6
	}
	return c.recentLimit
}
func (c *stubConfig) GetMediaFolder() string              { return "blog_images" }
func (c *stubConfig) GetUploadConcurrency() int           { return 1 }
func (c *stubConfig) GetAccessTokenExpiry() time.Duration { return time.Hour }
func (c *stubConfig) GetAdminPasswordHash() string        { return c.adminHash }

type seqUUID struct{ n atomic.Int64 }

func (s *seqUUID) NewUUID() string { return fmt.Sprintf("id-%03d", s.n.Add(1)) }

func nullLogger() usecasecontract.IAppLogger {
	l, _ := test.NewNullLogger()
	return logger.NewFromLogrus(l)
}

// fixture wires a blog usecase and a category usecase over one memStore.
type fixture struct {
	store     *memStore
	uploader  *fakeUploader
	reclaimer *fakeReclaimer
	cfg       *stubConfig
	blogs     *BlogUseCaseImpl
	cats      *CategoryUseCase
	clock     time.Time
}

func newFixture(categories bool) *fixture {
	f := &fixture{
		store:     newMemStore(),
		uploader:  &fakeUploader{failOn: map[string]error{}, delays: map[string]time.Duration{}},
		reclaimer: &fakeReclaimer{},
		cfg:       &stubConfig{categories: categories},
		clock:     time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	log := nullLogger()
	ids := &seqUUID{}
	v := validator.NewValidator()

	ingestor := NewMediaIngestor(f.uploader, log, f.cfg.GetMediaFolder(), 1)
	ingestor.SetReclaimer(f.reclaimer)

	var categoryRepo contract.ICategoryRepository
	if categories {
		categoryRepo = f.store
	}
	f.blogs = NewBlogUseCase(f.store, categoryRepo, ingestor, ids, log, f.cfg, v)
	f.blogs.now = func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	}
	f.cats = NewCategoryUseCase(f.store, f.store, ids, log, f.cfg, v)
	return f
}

func images(names ...string) []entity.ImagePayload {
	out := make([]entity.ImagePayload, 0, len(names))
	for _, n := range names {
		out = append(out, entity.ImagePayload{Filename: n, ContentType: "image/jpeg", Data: []byte(n)})
	}
	return out
}

func hosted(names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, "https://media.test/blog_images/"+n)
	}
	return out
}

func strPtr(s string) *string { return &s }

var errBoom = errors.New("boom")
