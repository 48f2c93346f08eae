package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryRepository is the MongoDB implementation of contract.ICategoryRepository.
type CategoryRepository struct {
	collection *mongo.Collection
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository creates a CategoryRepository over the categories collection.
func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		collection: db.Collection(categoriesCollection),
	}
}

// categoryDoc is a category decoded together with its joined member blogs.
type categoryDoc struct {
	ID        string            `bson:"_id"`
	Title     string            `bson:"title"`
	CreatedAt time.Time         `bson:"created_at"`
	BlogIDs   []string          `bson:"blogs"`
	BlogDocs  []entity.BlogView `bson:"blog_docs"`
}

// view orders the joined blogs by their position in the category's blogs set.
// Ids whose blog no longer exists are dropped.
func (d *categoryDoc) view() *entity.CategoryView {
	byID := make(map[string]entity.BlogView, len(d.BlogDocs))
	for _, b := range d.BlogDocs {
		byID[b.ID] = b
	}
	blogs := make([]entity.BlogView, 0, len(d.BlogDocs))
	for _, id := range d.BlogIDs {
		if b, ok := byID[id]; ok {
			blogs = append(blogs, b)
			delete(byID, id)
		}
	}
	return &entity.CategoryView{
		ID:        d.ID,
		Title:     d.Title,
		CreatedAt: d.CreatedAt,
		Blogs:     blogs,
	}
}

// memberJoinStage resolves the blogs set into blog_docs, each with its own category joined.
func memberJoinStage() bson.D {
	inner := []bson.D{
		{{Key: "$match", Value: bson.M{
			"$expr": bson.M{"$in": bson.A{"$_id", bson.M{"$ifNull": bson.A{"$$ids", bson.A{}}}}},
		}}},
	}
	inner = append(inner, categoryJoinStages()...)

	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":     blogsCollection,
		"let":      bson.M{"ids": "$blogs"},
		"pipeline": inner,
		"as":       "blog_docs",
	}}}
}

// CreateCategory inserts a new category document.
func (r *CategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	if category.Blogs == nil {
		category.Blogs = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetCategoryByID retrieves a category by id.
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, categoryID string) (*entity.Category, error) {
	var category entity.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("category with id '%s' not found", categoryID)
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}
	return &category, nil
}

// UpdateCategory sets the provided fields and returns the updated category.
func (r *CategoryRepository) UpdateCategory(ctx context.Context, categoryID string, updates map[string]interface{}) (*entity.Category, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category entity.Category
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": categoryID}, bson.M{"$set": updates}, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("category with id '%s' not found", categoryID)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

// DeleteCategory removes a category and returns the removed document.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, categoryID string) (*entity.Category, error) {
	var category entity.Category
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("category with id '%s' not found", categoryID)
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return &category, nil
}

// AddBlog adds blogID to the category's blogs set.
func (r *CategoryRepository) AddBlog(ctx context.Context, categoryID, blogID string) error {
	return r.updateMembers(ctx, categoryID, bson.M{"$addToSet": bson.M{"blogs": blogID}})
}

// RemoveBlog pulls blogID from the category's blogs set.
func (r *CategoryRepository) RemoveBlog(ctx context.Context, categoryID, blogID string) error {
	return r.updateMembers(ctx, categoryID, bson.M{"$pull": bson.M{"blogs": blogID}})
}

func (r *CategoryRepository) updateMembers(ctx context.Context, categoryID string, update bson.M) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": categoryID}, update)
	if err != nil {
		return fmt.Errorf("failed to update category blogs: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("category with id '%s' not found", categoryID)
	}
	return nil
}

// ListCategoryViews returns every category, oldest first, with member blogs resolved.
func (r *CategoryRepository) ListCategoryViews(ctx context.Context) ([]*entity.CategoryView, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}}},
		memberJoinStage(),
	}
	docs, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	views := make([]*entity.CategoryView, 0, len(docs))
	for i := range docs {
		views = append(views, docs[i].view())
	}
	return views, nil
}

// GetCategoryView returns one category with member blogs resolved.
func (r *CategoryRepository) GetCategoryView(ctx context.Context, categoryID string) (*entity.CategoryView, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": categoryID}}},
		bson.D{{Key: "$limit", Value: 1}},
		memberJoinStage(),
	}
	docs, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperror.NotFound("category with id '%s' not found", categoryID)
	}
	return docs[0].view(), nil
}

func (r *CategoryRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]categoryDoc, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return docs, nil
}
