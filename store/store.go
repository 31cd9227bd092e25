package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/models"
)

// ErrNotFound is returned by every store when the referenced document does
// not exist. The service layer translates it into the client-facing error.
var ErrNotFound = errors.New("document not found")

type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	Insert(ctx context.Context, user models.User) error
	// Save replaces the whole user document. Used by profile updates where
	// the caller has already loaded and mutated the user.
	Save(ctx context.Context, user models.User) error
	AddFollow(ctx context.Context, follower, target primitive.ObjectID) error
	RemoveFollow(ctx context.Context, follower, target primitive.ObjectID) error
	AddLikedPost(ctx context.Context, userID, postID primitive.ObjectID) error
	RemoveLikedPost(ctx context.Context, userID, postID primitive.ObjectID) error
	// SampleExcluding returns up to size random users whose id is not in
	// the exclusion set. Best-effort randomness only.
	SampleExcluding(ctx context.Context, exclude []primitive.ObjectID, size int) ([]models.User, error)
}

type PostStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	Insert(ctx context.Context, post models.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error
	PushComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) error
	PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error
	All(ctx context.Context) ([]models.Post, error)
	ByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Post, error)
	ByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Post, error)
	ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Post, error)
}

type NotificationStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Notification, error)
	Insert(ctx context.Context, notification models.Notification) error
	ByRecipient(ctx context.Context, to primitive.ObjectID) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, to primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByRecipient(ctx context.Context, to primitive.ObjectID) error
}
