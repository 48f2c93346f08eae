package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

const listKeyPattern = "blogs:list:*"

// BlogCacheStore is the Redis implementation of contract.IBlogCache.
type BlogCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

// make sure BlogCacheStore implements contract.IBlogCache
var _ contract.IBlogCache = (*BlogCacheStore)(nil)

func NewBlogCacheStore(rdb *redis.Client) *BlogCacheStore {
	return &BlogCacheStore{
		rdb:       rdb,
		detailTTL: 10 * time.Minute,
		listTTL:   5 * time.Minute,
	}
}

func blogDetailKey(id string) string { return fmt.Sprintf("blog:id:%s", id) }

func (c *BlogCacheStore) GetBlog(ctx context.Context, blogID string) (*entity.BlogView, bool, error) {
	b, err := c.rdb.Get(ctx, blogDetailKey(blogID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var blog entity.BlogView
	if err := json.Unmarshal(b, &blog); err != nil {
		// treat undecodable entries as a miss; the next set overwrites them
		return nil, false, nil
	}
	return &blog, true, nil
}

func (c *BlogCacheStore) SetBlog(ctx context.Context, blogID string, blog *entity.BlogView) error {
	data, err := json.Marshal(blog)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, blogDetailKey(blogID), data, c.detailTTL).Err()
}

func (c *BlogCacheStore) InvalidateBlog(ctx context.Context, blogID string) error {
	return c.rdb.Del(ctx, blogDetailKey(blogID)).Err()
}

func (c *BlogCacheStore) GetBlogList(ctx context.Context, key string) ([]*entity.BlogView, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var blogs []*entity.BlogView
	if err := json.Unmarshal(b, &blogs); err != nil {
		return nil, false, nil
	}
	if blogs == nil {
		blogs = []*entity.BlogView{}
	}
	return blogs, true, nil
}

func (c *BlogCacheStore) SetBlogList(ctx context.Context, key string, blogs []*entity.BlogView) error {
	data, err := json.Marshal(blogs)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidateBlogLists deletes every cached list page, pipelining deletes in batches.
func (c *BlogCacheStore) InvalidateBlogLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, listKeyPattern, 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
