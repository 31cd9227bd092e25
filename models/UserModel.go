package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type User struct {
	ID         primitive.ObjectID   `json:"_id" bson:"_id"`
	FullName   string               `json:"fullName" bson:"fullName" validate:"required"`
	Username   string               `json:"username" bson:"username" validate:"required"`
	Email      string               `json:"email" bson:"email" validate:"required"`
	Password   string               `json:"-" bson:"password"`
	Followers  []primitive.ObjectID `json:"followers" bson:"followers"`
	Following  []primitive.ObjectID `json:"following" bson:"following"`
	ProfileImg string               `json:"profileImg" bson:"profileImg"`
	CoverImg   string               `json:"coverImg" bson:"coverImg"`
	Bio        string               `json:"bio" bson:"bio"`
	Link       string               `json:"link" bson:"link"`
	LikedPosts []primitive.ObjectID `json:"likedPosts" bson:"likedPosts"`
	CreatedAt  time.Time            `json:"createdAt" bson:"createdAt"`
}

// IsFollowing reports whether id is in the user's following set.
func (u User) IsFollowing(id primitive.ObjectID) bool {
	for _, followed := range u.Following {
		if followed == id {
			return true
		}
	}
	return false
}

func (u User) HasLiked(postID primitive.ObjectID) bool {
	for _, liked := range u.LikedPosts {
		if liked == postID {
			return true
		}
	}
	return false
}
