package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// NotificationTypeLike is the only notification type produced today. Likes
// fan out a notification to the post's author; follows do not.
const NotificationTypeLike = "like"

type Notification struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	From      primitive.ObjectID `json:"from" bson:"from"`
	To        primitive.ObjectID `json:"to" bson:"to"`
	Type      string             `json:"type" bson:"type"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
