package posts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/rverma-dev/inkwell/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes.
// The unique slug index is the backstop for the check-then-set slug
// generation; two racing creates with the same title cannot both commit.
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("posts")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "published", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

// SlugExists reports whether a slug is already taken by another post.
// excludeID skips the post being updated so it can keep its own slug.
func (r *Repository) SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Create(ctx context.Context, post *Post) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}

	post.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}

	var post Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	var post Post
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

// ListPublished returns all published posts, newest first
func (r *Repository) ListPublished(ctx context.Context) ([]Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"published": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []Post{}
	}

	return posts, nil
}

// ListByAuthor returns all posts (drafts included) of one author, newest first
func (r *Repository) ListByAuthor(ctx context.Context, authorID string) ([]Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"author": authorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []Post{}
	}

	return posts, nil
}

func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
