package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Post struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id"`
	User      primitive.ObjectID   `json:"user" bson:"user"`
	Text      string               `json:"text" bson:"text"`
	Img       string               `json:"img,omitempty" bson:"img,omitempty"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []Comment            `json:"comments" bson:"comments"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

func (p Post) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the embedded comment with the given id, if any.
func (p Post) CommentByID(commentID primitive.ObjectID) (Comment, bool) {
	for _, comment := range p.Comments {
		if comment.ID == commentID {
			return comment, true
		}
	}
	return Comment{}, false
}
