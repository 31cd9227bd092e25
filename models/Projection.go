package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// PublicUser is a user with the password hash stripped. It is what every
// API response embeds in place of a raw user id.
type PublicUser struct {
	ID         primitive.ObjectID   `json:"_id"`
	FullName   string               `json:"fullName"`
	Username   string               `json:"username"`
	Email      string               `json:"email"`
	Followers  []primitive.ObjectID `json:"followers"`
	Following  []primitive.ObjectID `json:"following"`
	ProfileImg string               `json:"profileImg"`
	CoverImg   string               `json:"coverImg"`
	Bio        string               `json:"bio"`
	Link       string               `json:"link"`
	LikedPosts []primitive.ObjectID `json:"likedPosts"`
	CreatedAt  time.Time            `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		FullName:   u.FullName,
		Username:   u.Username,
		Email:      u.Email,
		Followers:  u.Followers,
		Following:  u.Following,
		ProfileImg: u.ProfileImg,
		CoverImg:   u.CoverImg,
		Bio:        u.Bio,
		Link:       u.Link,
		LikedPosts: u.LikedPosts,
		CreatedAt:  u.CreatedAt,
	}
}

// PostView is a post with its author and comment authors joined in at read
// time. Stored posts keep only the user ids.
type PostView struct {
	ID        primitive.ObjectID   `json:"_id"`
	User      PublicUser           `json:"user"`
	Text      string               `json:"text"`
	Img       string               `json:"img,omitempty"`
	Likes     []primitive.ObjectID `json:"likes"`
	Comments  []CommentView        `json:"comments"`
	CreatedAt time.Time            `json:"createdAt"`
}

type CommentView struct {
	ID        primitive.ObjectID `json:"_id"`
	User      PublicUser         `json:"user"`
	Text      string             `json:"text"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NotificationActor is the minimal sender projection shown in the inbox.
type NotificationActor struct {
	ID         primitive.ObjectID `json:"_id"`
	Username   string             `json:"username"`
	ProfileImg string             `json:"profileImg"`
}

type NotificationView struct {
	ID        primitive.ObjectID `json:"_id"`
	From      NotificationActor  `json:"from"`
	Type      string             `json:"type"`
	Read      bool               `json:"read"`
	CreatedAt time.Time          `json:"createdAt"`
}
