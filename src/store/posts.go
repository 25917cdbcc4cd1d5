package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theleywin/talentnest/src/models"
)

type PostStore struct {
	coll *mongo.Collection
}

func NewPostStore(db *mongo.Database) *PostStore {
	return &PostStore{coll: db.Collection(PostsCollection)}
}

func (s *PostStore) Insert(ctx context.Context, post *models.Post) error {
	now := time.Now().UTC()
	if post.Id.IsZero() {
		post.Id = primitive.NewObjectID()
	}
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	post.CreatedAt, post.UpdatedAt = now, now

	_, err := s.coll.InsertOne(ctx, post)
	return translate(err, "store.PostStore.Insert")
}

func (s *PostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, translate(err, "store.PostStore.FindByID")
	}
	return &post, nil
}

// FindByAuthors returns the posts written by any of authors, newest first.
func (s *PostStore) FindByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Post, error) {
	if len(authors) == 0 {
		return []models.Post{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{"author": bson.M{"$in": authors}}, opts)
	if err != nil {
		return nil, translate(err, "store.PostStore.FindByAuthors.Find")
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, translate(err, "store.PostStore.FindByAuthors.All")
	}
	return posts, nil
}

func (s *PostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err, "store.PostStore.Delete")
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PushComment appends comment to the post and returns the updated post.
func (s *PostStore) PushComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (*models.Post, error) {
	if comment.Id.IsZero() {
		comment.Id = primitive.NewObjectID()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return s.findOneAndUpdate(ctx, postID, update, "store.PostStore.PushComment")
}

// AddLike records userID's like. Idempotent.
func (s *PostStore) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	update := bson.M{"$addToSet": bson.M{"likes": userID}}
	return s.findOneAndUpdate(ctx, postID, update, "store.PostStore.AddLike")
}

// RemoveLike withdraws userID's like. Idempotent.
func (s *PostStore) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	update := bson.M{"$pull": bson.M{"likes": userID}}
	return s.findOneAndUpdate(ctx, postID, update, "store.PostStore.RemoveLike")
}

func (s *PostStore) findOneAndUpdate(ctx context.Context, postID primitive.ObjectID, update bson.M, op string) (*models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&post); err != nil {
		return nil, translate(err, op)
	}
	return &post, nil
}

// FindPreviews returns the preview projection of the given posts keyed by id.
func (s *PostStore) FindPreviews(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.PostPreview, error) {
	out := make(map[primitive.ObjectID]models.PostPreview, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	opts := options.Find().SetProjection(bson.M{"content": 1, "image": 1})
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, translate(err, "store.PostStore.FindPreviews.Find")
	}
	defer cursor.Close(ctx)

	var previews []models.PostPreview
	if err := cursor.All(ctx, &previews); err != nil {
		return nil, translate(err, "store.PostStore.FindPreviews.All")
	}
	for _, p := range previews {
		out[p.ID] = p
	}
	return out, nil
}
