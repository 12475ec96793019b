package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"polblog-api/models"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrBlogNotFound covers unknown ids and malformed ids alike; a
	// malformed hex string can never name a stored document.
	ErrBlogNotFound = errors.New("blog not found")

	// ErrNotConnected is returned when the startup MongoDB connection
	// never succeeded.
	ErrNotConnected = errors.New("database not connected")
)

const cacheTime = 7 * 24 * time.Hour

// BlogRepository is the persistence surface for blog entries.
type BlogRepository interface {
	ListAll(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id string) (models.Blog, error)
	Create(ctx context.Context, blog models.Blog) (models.Blog, error)
}

// MongoBlogRepository stores blogs in a MongoDB collection with an optional
// Redis read cache in front. A nil cache client disables caching.
type MongoBlogRepository struct {
	coll  *mongo.Collection
	cache *redis.Client
}

func NewMongoBlogRepository(coll *mongo.Collection, cache *redis.Client) *MongoBlogRepository {
	return &MongoBlogRepository{coll: coll, cache: cache}
}

func (r *MongoBlogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	if r.cache != nil {
		cachedData, err := r.cache.Get(ctx, "blogs").Result()
		if err == nil {
			var blogs []models.Blog
			if err := json.Unmarshal([]byte(cachedData), &blogs); err != nil {
				return nil, fmt.Errorf("error unmarshalling cached blogs data: %w", err)
			}
			return blogs, nil
		} else if !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("error fetching blogs from Redis cache: %w", err)
		}
	}

	if r.coll == nil {
		return nil, ErrNotConnected
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("error decoding documents: %w", err)
	}

	if r.cache != nil {
		if jsonData, err := json.Marshal(blogs); err == nil {
			r.cache.Set(ctx, "blogs", jsonData, cacheTime)
		}
	}

	return blogs, nil
}

func (r *MongoBlogRepository) GetByID(ctx context.Context, id string) (models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Blog{}, fmt.Errorf("invalid blog id %q: %w", id, ErrBlogNotFound)
	}

	if r.cache != nil {
		cachedData, err := r.cache.Get(ctx, "blog:"+id).Result()
		if err == nil {
			var blog models.Blog
			if err := json.Unmarshal([]byte(cachedData), &blog); err != nil {
				return models.Blog{}, fmt.Errorf("error unmarshalling cached blog data: %w", err)
			}
			return blog, nil
		} else if !errors.Is(err, redis.Nil) {
			return models.Blog{}, fmt.Errorf("error fetching blog %s from Redis cache: %w", id, err)
		}
	}

	if r.coll == nil {
		return models.Blog{}, ErrNotConnected
	}

	var blog models.Blog
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Blog{}, fmt.Errorf("blog %s: %w", id, ErrBlogNotFound)
		}
		return models.Blog{}, fmt.Errorf("error querying database: %w", err)
	}

	if r.cache != nil {
		if jsonData, err := json.Marshal(blog); err == nil {
			r.cache.Set(ctx, "blog:"+id, jsonData, cacheTime)
		}
	}

	return blog, nil
}

func (r *MongoBlogRepository) Create(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if r.coll == nil {
		return models.Blog{}, ErrNotConnected
	}

	res, err := r.coll.InsertOne(ctx, blog)
	if err != nil {
		return models.Blog{}, fmt.Errorf("error inserting document: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		blog.ID = oid
	}

	if r.cache != nil {
		r.cache.Del(ctx, "blogs")
	}

	return blog, nil
}
