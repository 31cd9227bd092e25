package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"chirpnest/models"
)

type MongoNotificationStore struct {
	collection *mongo.Collection
}

func NewMongoNotificationStore(collection *mongo.Collection) *MongoNotificationStore {
	return &MongoNotificationStore{collection: collection}
}

func (s *MongoNotificationStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Notification, error) {
	var notification models.Notification
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Notification{}, ErrNotFound
	}
	if err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (s *MongoNotificationStore) Insert(ctx context.Context, notification models.Notification) error {
	_, err := s.collection.InsertOne(ctx, notification)
	return err
}

func (s *MongoNotificationStore) ByRecipient(ctx context.Context, to primitive.ObjectID) ([]models.Notification, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"to": to})
	if err != nil {
		return nil, err
	}
	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *MongoNotificationStore) MarkAllRead(ctx context.Context, to primitive.ObjectID) error {
	_, err := s.collection.UpdateMany(ctx,
		bson.M{"to": to},
		bson.M{"$set": bson.M{"read": true}})
	return err
}

func (s *MongoNotificationStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoNotificationStore) DeleteByRecipient(ctx context.Context, to primitive.ObjectID) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"to": to})
	return err
}
