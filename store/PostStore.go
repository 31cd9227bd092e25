package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chirpnest/models"
)

type MongoPostStore struct {
	collection *mongo.Collection
}

func NewMongoPostStore(collection *mongo.Collection) *MongoPostStore {
	return &MongoPostStore{collection: collection}
}

func (s *MongoPostStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var post models.Post
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (s *MongoPostStore) Insert(ctx context.Context, post models.Post) error {
	_, err := s.collection.InsertOne(ctx, post)
	return err
}

func (s *MongoPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPostStore) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"likes": userID}})
	return err
}

func (s *MongoPostStore) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"likes": userID}})
	return err
}

func (s *MongoPostStore) PushComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) error {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPostStore) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPostStore) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Post, error) {
	cursor, err := s.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func (s *MongoPostStore) All(ctx context.Context) ([]models.Post, error) {
	return s.find(ctx, bson.M{}, newestFirst())
}

func (s *MongoPostStore) ByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Post, error) {
	return s.find(ctx, bson.M{"user": author}, newestFirst())
}

func (s *MongoPostStore) ByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Post, error) {
	return s.find(ctx, bson.M{"user": bson.M{"$in": authors}}, newestFirst())
}

func (s *MongoPostStore) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Post, error) {
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}
