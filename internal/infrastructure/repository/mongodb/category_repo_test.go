package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCategoryDocView_KeepsSetOrderAndDropsDangling(t *testing.T) {
	doc := categoryDoc{
		ID:      "c1",
		Title:   "Travel",
		BlogIDs: []string{"b1", "gone", "b2"},
		BlogDocs: []entity.BlogView{
			{Blog: entity.Blog{ID: "b2", Title: "Second"}},
			{Blog: entity.Blog{ID: "b1", Title: "First"}},
		},
	}

	view := doc.view()
	require.Len(t, view.Blogs, 2)
	assert.Equal(t, "b1", view.Blogs[0].ID)
	assert.Equal(t, "b2", view.Blogs[1].ID)
}

func TestCategoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "folio.categories"
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mt.Run("create initializes the blogs set", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		category := &entity.Category{ID: "c1", Title: "Travel", CreatedAt: created}
		require.NoError(t, repo.CreateCategory(context.Background(), category))
		assert.NotNil(t, category.Blogs)
	})

	mt.Run("add blog on an existing category", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		// already a member: matched but not modified
		assert.NoError(t, repo.AddBlog(context.Background(), "c1", "b1"))
	})

	mt.Run("remove blog on a missing category is not found", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(0)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		err := repo.RemoveBlog(context.Background(), "missing", "b1")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("get by id maps a missing document to not found", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetCategoryByID(context.Background(), "missing")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("update returns the updated category", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: "c1"},
			{Key: "title", Value: "Trips"},
			{Key: "blogs", Value: bson.A{"b1"}},
			{Key: "created_at", Value: created},
		}}))

		category, err := repo.UpdateCategory(context.Background(), "c1", map[string]interface{}{"title": "Trips"})
		require.NoError(t, err)
		assert.Equal(t, "Trips", category.Title)
		assert.Equal(t, []string{"b1"}, category.Blogs)
	})

	mt.Run("delete on a missing category is not found", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.DeleteCategory(context.Background(), "missing")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("list resolves member blogs with their category", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "c1"},
			{Key: "title", Value: "Travel"},
			{Key: "created_at", Value: created},
			{Key: "blogs", Value: bson.A{"b1"}},
			{Key: "blog_docs", Value: bson.A{
				append(blogDoc("b1", "Alps", "c1", created),
					bson.E{Key: "category_doc", Value: bson.D{{Key: "_id", Value: "c1"}, {Key: "title", Value: "Travel"}}}),
			}},
		}))

		views, err := repo.ListCategoryViews(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Len(t, views[0].Blogs, 1)
		assert.Equal(t, "Alps", views[0].Blogs[0].Title)
		require.NotNil(t, views[0].Blogs[0].Category)
		assert.Equal(t, "Travel", views[0].Blogs[0].Category.Title)
	})

	mt.Run("get view on a missing category is not found", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetCategoryView(context.Background(), "missing")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
