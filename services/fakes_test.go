package services

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/models"
	"chirpnest/store"
)

// fakeUserStore is an in-memory store.UserStore for exercising the services
// without a live MongoDB.
type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserStore) add(user models.User) models.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Followers == nil {
		user.Followers = []primitive.ObjectID{}
	}
	if user.Following == nil {
		user.Following = []primitive.ObjectID{}
	}
	if user.LikedPosts == nil {
		user.LikedPosts = []primitive.ObjectID{}
	}
	copied := user
	f.users[user.ID] = &copied
	return user
}

func (f *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return *user, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return *user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return *user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserStore) GetManyByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user models.User) error {
	f.users[user.ID] = &user
	return nil
}

func (f *fakeUserStore) Save(_ context.Context, user models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	f.users[user.ID] = &user
	return nil
}

func addToSet(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range set {
		if existing == id {
			return set
		}
	}
	return append(set, id)
}

func pull(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	result := set[:0]
	for _, existing := range set {
		if existing != id {
			result = append(result, existing)
		}
	}
	return result
}

func (f *fakeUserStore) AddFollow(_ context.Context, follower, target primitive.ObjectID) error {
	f.users[follower].Following = addToSet(f.users[follower].Following, target)
	f.users[target].Followers = addToSet(f.users[target].Followers, follower)
	return nil
}

func (f *fakeUserStore) RemoveFollow(_ context.Context, follower, target primitive.ObjectID) error {
	f.users[follower].Following = pull(f.users[follower].Following, target)
	f.users[target].Followers = pull(f.users[target].Followers, follower)
	return nil
}

func (f *fakeUserStore) AddLikedPost(_ context.Context, userID, postID primitive.ObjectID) error {
	f.users[userID].LikedPosts = addToSet(f.users[userID].LikedPosts, postID)
	return nil
}

func (f *fakeUserStore) RemoveLikedPost(_ context.Context, userID, postID primitive.ObjectID) error {
	f.users[userID].LikedPosts = pull(f.users[userID].LikedPosts, postID)
	return nil
}

func (f *fakeUserStore) SampleExcluding(_ context.Context, exclude []primitive.ObjectID, size int) ([]models.User, error) {
	excluded := make(map[primitive.ObjectID]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}
	var users []models.User
	for _, user := range f.users {
		if _, skip := excluded[user.ID]; skip {
			continue
		}
		users = append(users, *user)
	}
	// deterministic order keeps the tests stable; randomness is the real
	// store's concern
	sort.Slice(users, func(i, j int) bool { return users[i].ID.Hex() < users[j].ID.Hex() })
	if len(users) > size {
		users = users[:size]
	}
	return users, nil
}

type fakePostStore struct {
	posts map[primitive.ObjectID]*models.Post
	order []primitive.ObjectID
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[primitive.ObjectID]*models.Post)}
}

func (f *fakePostStore) GetByID(_ context.Context, id primitive.ObjectID) (models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return models.Post{}, store.ErrNotFound
	}
	return *post, nil
}

func (f *fakePostStore) Insert(_ context.Context, post models.Post) error {
	f.posts[post.ID] = &post
	f.order = append(f.order, post.ID)
	return nil
}

func (f *fakePostStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.posts, id)
	f.order = pull(f.order, id)
	return nil
}

func (f *fakePostStore) AddLike(_ context.Context, postID, userID primitive.ObjectID) error {
	post, ok := f.posts[postID]
	if !ok {
		return store.ErrNotFound
	}
	post.Likes = addToSet(post.Likes, userID)
	return nil
}

func (f *fakePostStore) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) error {
	post, ok := f.posts[postID]
	if !ok {
		return store.ErrNotFound
	}
	post.Likes = pull(post.Likes, userID)
	return nil
}

func (f *fakePostStore) PushComment(_ context.Context, postID primitive.ObjectID, comment models.Comment) error {
	post, ok := f.posts[postID]
	if !ok {
		return store.ErrNotFound
	}
	post.Comments = append(post.Comments, comment)
	return nil
}

func (f *fakePostStore) PullComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	post, ok := f.posts[postID]
	if !ok {
		return store.ErrNotFound
	}
	comments := post.Comments[:0]
	for _, comment := range post.Comments {
		if comment.ID != commentID {
			comments = append(comments, comment)
		}
	}
	post.Comments = comments
	return nil
}

// newestFirst mirrors the createdAt descending sort of the Mongo store.
func (f *fakePostStore) newestFirst(posts []models.Post) []models.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func (f *fakePostStore) All(_ context.Context) ([]models.Post, error) {
	var posts []models.Post
	for _, id := range f.order {
		posts = append(posts, *f.posts[id])
	}
	return f.newestFirst(posts), nil
}

func (f *fakePostStore) ByAuthor(_ context.Context, author primitive.ObjectID) ([]models.Post, error) {
	var posts []models.Post
	for _, id := range f.order {
		if f.posts[id].User == author {
			posts = append(posts, *f.posts[id])
		}
	}
	return f.newestFirst(posts), nil
}

func (f *fakePostStore) ByAuthors(_ context.Context, authors []primitive.ObjectID) ([]models.Post, error) {
	authorSet := make(map[primitive.ObjectID]struct{}, len(authors))
	for _, id := range authors {
		authorSet[id] = struct{}{}
	}
	var posts []models.Post
	for _, id := range f.order {
		if _, ok := authorSet[f.posts[id].User]; ok {
			posts = append(posts, *f.posts[id])
		}
	}
	return f.newestFirst(posts), nil
}

func (f *fakePostStore) ByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Post, error) {
	var posts []models.Post
	for _, id := range ids {
		if post, ok := f.posts[id]; ok {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

type fakeNotificationStore struct {
	notifications []*models.Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{}
}

func (f *fakeNotificationStore) GetByID(_ context.Context, id primitive.ObjectID) (models.Notification, error) {
	for _, notification := range f.notifications {
		if notification.ID == id {
			return *notification, nil
		}
	}
	return models.Notification{}, store.ErrNotFound
}

func (f *fakeNotificationStore) Insert(_ context.Context, notification models.Notification) error {
	f.notifications = append(f.notifications, &notification)
	return nil
}

func (f *fakeNotificationStore) ByRecipient(_ context.Context, to primitive.ObjectID) ([]models.Notification, error) {
	var result []models.Notification
	for _, notification := range f.notifications {
		if notification.To == to {
			result = append(result, *notification)
		}
	}
	return result, nil
}

func (f *fakeNotificationStore) MarkAllRead(_ context.Context, to primitive.ObjectID) error {
	for _, notification := range f.notifications {
		if notification.To == to {
			notification.Read = true
		}
	}
	return nil
}

func (f *fakeNotificationStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, notification := range f.notifications {
		if notification.ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeNotificationStore) DeleteByRecipient(_ context.Context, to primitive.ObjectID) error {
	kept := f.notifications[:0]
	for _, notification := range f.notifications {
		if notification.To != to {
			kept = append(kept, notification)
		}
	}
	f.notifications = kept
	return nil
}

// fakeImageStore hosts images in memory and records removals.
type fakeImageStore struct {
	uploads   int
	removed   []string
	uploadErr error
	removeErr error
}

func (f *fakeImageStore) Upload(_ context.Context, _ []byte, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads++
	return fmt.Sprintf("https://img.example.com/chirpnest/object-%d.png", f.uploads), nil
}

func (f *fakeImageStore) Remove(_ context.Context, url string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, url)
	return nil
}
