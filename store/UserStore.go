package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"chirpnest/models"
)

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(collection *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{collection: collection}
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user models.User) error {
	_, err := s.collection.InsertOne(ctx, user)
	return err
}

func (s *MongoUserStore) Save(ctx context.Context, user models.User) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) AddFollow(ctx context.Context, follower, target primitive.ObjectID) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": follower},
		bson.M{"$addToSet": bson.M{"following": target}})
	if err != nil {
		return err
	}
	_, err = s.collection.UpdateOne(ctx,
		bson.M{"_id": target},
		bson.M{"$addToSet": bson.M{"followers": follower}})
	return err
}

func (s *MongoUserStore) RemoveFollow(ctx context.Context, follower, target primitive.ObjectID) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": follower},
		bson.M{"$pull": bson.M{"following": target}})
	if err != nil {
		return err
	}
	_, err = s.collection.UpdateOne(ctx,
		bson.M{"_id": target},
		bson.M{"$pull": bson.M{"followers": follower}})
	return err
}

func (s *MongoUserStore) AddLikedPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"likedPosts": postID}})
	return err
}

func (s *MongoUserStore) RemoveLikedPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"likedPosts": postID}})
	return err
}

func (s *MongoUserStore) SampleExcluding(ctx context.Context, exclude []primitive.ObjectID, size int) ([]models.User, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$nin": exclude}}}},
		{{Key: "$sample", Value: bson.M{"size": size}}},
	}
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
