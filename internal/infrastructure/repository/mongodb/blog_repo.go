package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	blogsCollection      = "blogs"
	categoriesCollection = "categories"
)

// BlogRepository represents the MongoDB implementation of the IBlogRepository interface.
type BlogRepository struct {
	collection *mongo.Collection
}

// make sure BlogRepository implements contract.IBlogRepository
var _ contract.IBlogRepository = (*BlogRepository)(nil)

// NewBlogRepository creates and returns a new BlogRepository instance.
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection(blogsCollection),
	}
}

// newestFirst orders blogs by creation time; ids are time-ordered and break ties.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// categoryJoinStages resolves the blog's category into category_doc, keeping only id and title.
func categoryJoinStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         categoriesCollection,
			"localField":   "category",
			"foreignField": "_id",
			"as":           "category_doc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$category_doc",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"category_doc.blogs":      0,
			"category_doc.created_at": 0,
		}}},
	}
}

// CreateBlog inserts a new blog document.
func (r *BlogRepository) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	if blog.Images == nil {
		blog.Images = []string{} // store an empty array rather than null
	}
	_, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// GetBlogByID retrieves a single blog by its id.
func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	var blog entity.Blog
	err := r.collection.FindOne(ctx, bson.M{"_id": blogID}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("blog with id '%s' not found", blogID)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}
	return &blog, nil
}

// GetBlogView retrieves a single blog, joined with its category when withCategory is set.
func (r *BlogRepository) GetBlogView(ctx context.Context, blogID string, withCategory bool) (*entity.BlogView, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": blogID}}},
		bson.D{{Key: "$limit", Value: 1}},
	}
	if withCategory {
		pipeline = append(pipeline, categoryJoinStages()...)
	}

	blogs, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, apperror.NotFound("blog with id '%s' not found", blogID)
	}
	return blogs[0], nil
}

// ListBlogViews retrieves blogs newest first.
func (r *BlogRepository) ListBlogViews(ctx context.Context, opts *contract.BlogFilterOptions) ([]*entity.BlogView, error) {
	if opts == nil {
		opts = &contract.BlogFilterOptions{}
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: newestFirst}},
	}
	if opts.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: opts.Limit}})
	}
	if opts.WithCategory {
		pipeline = append(pipeline, categoryJoinStages()...)
	}
	return r.aggregate(ctx, pipeline)
}

func (r *BlogRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*entity.BlogView, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := []*entity.BlogView{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}
	return blogs, nil
}

// UpdateBlog sets the provided fields and returns the updated document.
func (r *BlogRepository) UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) (*entity.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog entity.Blog
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": blogID}, bson.M{"$set": updates}, opts).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("blog with id '%s' not found", blogID)
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	return &blog, nil
}

// DeleteBlog removes a blog and returns the removed document.
func (r *BlogRepository) DeleteBlog(ctx context.Context, blogID string) (*entity.Blog, error) {
	var blog entity.Blog
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": blogID}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("blog with id '%s' not found", blogID)
		}
		return nil, fmt.Errorf("failed to delete blog: %w", err)
	}
	return &blog, nil
}

// CountBlogsByCategory counts blogs whose category reference is categoryID.
func (r *BlogRepository) CountBlogsByCategory(ctx context.Context, categoryID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"category": categoryID})
	if err != nil {
		return 0, fmt.Errorf("failed to count blogs in category: %w", err)
	}
	return count, nil
}

// ClearCategory unsets the category reference on every blog pointing at categoryID.
func (r *BlogRepository) ClearCategory(ctx context.Context, categoryID string) (int64, error) {
	res, err := r.collection.UpdateMany(ctx, bson.M{"category": categoryID}, bson.M{"$unset": bson.M{"category": ""}})
	if err != nil {
		return 0, fmt.Errorf("failed to detach blogs from category: %w", err)
	}
	return res.ModifiedCount, nil
}
