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

var summaryProjection = bson.M{
	"name":            1,
	"username":        1,
	"profile_picture": 1,
	"headline":        1,
}

// protectedUserFields can never be written through UpdateProfile.
var protectedUserFields = []string{"_id", "password", "connections", "email", "createdAt"}

type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(UsersCollection)}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	if user.Connections == nil {
		user.Connections = []primitive.ObjectID{}
	}
	user.CreatedAt, user.UpdatedAt = now, now

	_, err := s.coll.InsertOne(ctx, user)
	return translate(err, "store.UserStore.Create")
}

func (s *UserStore) FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, translate(err, "store.UserStore.FindUser")
	}
	return &user, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, translate(err, "store.UserStore.FindByUsername")
	}
	return &user, nil
}

// FindByUsernameOrEmail returns the first user holding either identifier.
func (s *UserStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	filter := bson.M{"$or": []bson.M{{"username": username}, {"email": email}}}

	var user models.User
	if err := s.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translate(err, "store.UserStore.FindByUsernameOrEmail")
	}
	return &user, nil
}

// FindUsers loads the given users without their password hashes.
func (s *UserStore) FindUsers(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, translate(err, "store.UserStore.FindUsers.Find")
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, translate(err, "store.UserStore.FindUsers.All")
	}
	return users, nil
}

// FindSummaries returns the public projection of the given users keyed by id.
func (s *UserStore) FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDto, error) {
	out := make(map[primitive.ObjectID]models.UserDto, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	opts := options.Find().SetProjection(summaryProjection)
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, translate(err, "store.UserStore.FindSummaries.Find")
	}
	defer cursor.Close(ctx)

	var summaries []models.UserDto
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, translate(err, "store.UserStore.FindSummaries.All")
	}
	for _, summary := range summaries {
		out[summary.ID] = summary
	}
	return out, nil
}

// Suggestions returns up to limit users that are neither userID nor in exclude.
func (s *UserStore) Suggestions(ctx context.Context, userID primitive.ObjectID, exclude []primitive.ObjectID, limit int64) ([]models.UserDto, error) {
	if exclude == nil {
		exclude = []primitive.ObjectID{}
	}
	filter := bson.M{
		"$and": []bson.M{
			{"_id": bson.M{"$ne": userID}},
			{"_id": bson.M{"$nin": exclude}},
		},
	}

	opts := options.Find().SetLimit(limit).SetProjection(summaryProjection)
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err, "store.UserStore.Suggestions.Find")
	}
	defer cursor.Close(ctx)

	users := []models.UserDto{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, translate(err, "store.UserStore.Suggestions.All")
	}
	return users, nil
}

// UpdateProfile applies fields with $set and returns the updated user.
// Identity, credential and connection fields are stripped.
func (s *UserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	for _, k := range protectedUserFields {
		delete(set, k)
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		return nil, translate(err, "store.UserStore.UpdateProfile")
	}
	return &user, nil
}

// AddConnection adds otherID to userID's connection set. Idempotent.
func (s *UserStore) AddConnection(ctx context.Context, userID, otherID primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"connections": otherID}},
	)
	return translate(err, "store.UserStore.AddConnection")
}

// RemoveConnection removes otherID from userID's connection set. Idempotent.
func (s *UserStore) RemoveConnection(ctx context.Context, userID, otherID primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"connections": otherID}},
	)
	return translate(err, "store.UserStore.RemoveConnection")
}
