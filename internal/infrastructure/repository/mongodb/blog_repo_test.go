package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func blogDoc(id, title string, category string, created time.Time) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "description", Value: ""},
		{Key: "images", Value: bson.A{"https://img/" + id + ".jpg"}},
		{Key: "created_at", Value: created},
	}
	if category != "" {
		doc = append(doc, bson.E{Key: "category", Value: category})
	}
	return doc
}

func TestBlogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "folio.blogs"
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mt.Run("create stores an empty image list instead of null", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		blog := &entity.Blog{ID: "b1", Title: "Hello", CreatedAt: created}
		require.NoError(t, repo.CreateBlog(context.Background(), blog))
		assert.NotNil(t, blog.Images)
		assert.Empty(t, blog.Images)
	})

	mt.Run("get by id maps a missing document to not found", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		blog, err := repo.GetBlogByID(context.Background(), "missing")
		assert.Nil(t, blog)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("get view decodes the joined category", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		doc := append(blogDoc("b1", "Alps", "c1", created),
			bson.E{Key: "category_doc", Value: bson.D{{Key: "_id", Value: "c1"}, {Key: "title", Value: "Travel"}}})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, doc))

		view, err := repo.GetBlogView(context.Background(), "b1", true)
		require.NoError(t, err)
		require.NotNil(t, view.Category)
		assert.Equal(t, "Travel", view.Category.Title)
		assert.Equal(t, "c1", *view.CategoryID)
		assert.Equal(t, []string{"https://img/b1.jpg"}, view.Images)
	})

	mt.Run("get view on a missing blog is not found", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetBlogView(context.Background(), "missing", false)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("list returns an empty slice when there are no blogs", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		blogs, err := repo.ListBlogViews(context.Background(), &contract.BlogFilterOptions{Limit: 6})
		require.NoError(t, err)
		assert.NotNil(t, blogs)
		assert.Empty(t, blogs)
	})

	mt.Run("list keeps the server order", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			blogDoc("b2", "Newer", "", created.Add(time.Hour)),
			blogDoc("b1", "Older", "", created),
		))

		blogs, err := repo.ListBlogViews(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, blogs, 2)
		assert.Equal(t, "b2", blogs[0].ID)
		assert.Nil(t, blogs[0].Category)
	})

	mt.Run("update returns the updated document", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: blogDoc("b1", "Renamed", "", created)}))

		blog, err := repo.UpdateBlog(context.Background(), "b1", map[string]interface{}{"title": "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", blog.Title)
	})

	mt.Run("update on a missing blog is not found", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateBlog(context.Background(), "missing", map[string]interface{}{"title": "x"})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("delete returns the removed document", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: blogDoc("b1", "Gone", "c1", created)}))

		blog, err := repo.DeleteBlog(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, "b1", blog.ID)
		assert.True(t, blog.HasCategory())
	})

	mt.Run("delete on a missing blog is not found", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.DeleteBlog(context.Background(), "missing")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("count by category", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}))

		n, err := repo.CountBlogsByCategory(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	mt.Run("clear category reports modified blogs", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(3)},
			bson.E{Key: "nModified", Value: int32(3)},
		))

		n, err := repo.ClearCategory(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}
