package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/apperror"
	"chirpnest/models"
	"chirpnest/storage"
	"chirpnest/store"
)

type PostService struct {
	posts         store.PostStore
	users         store.UserStore
	notifications store.NotificationStore
	images        storage.ImageStore
	log           *logrus.Logger
}

func NewPostService(posts store.PostStore, users store.UserStore, notifications store.NotificationStore, images storage.ImageStore, log *logrus.Logger) *PostService {
	return &PostService{
		posts:         posts,
		users:         users,
		notifications: notifications,
		images:        images,
		log:           log,
	}
}

// Create persists a new post. The image payload, if present, is uploaded to
// the external host first and only the hosted URL is stored.
func (s *PostService) Create(ctx context.Context, actor models.User, text, img string) (models.PostView, error) {
	if strings.TrimSpace(text) == "" && img == "" {
		return models.PostView{}, apperror.Validation("Post must have text or image")
	}

	hostedURL := ""
	if img != "" {
		data, contentType, err := DecodeImagePayload(img)
		if err != nil {
			return models.PostView{}, err
		}
		hostedURL, err = s.images.Upload(ctx, data, contentType)
		if err != nil {
			return models.PostView{}, apperror.Internal(err)
		}
	}

	post := models.Post{
		ID:        primitive.NewObjectID(),
		User:      actor.ID,
		Text:      text,
		Img:       hostedURL,
		Likes:     []primitive.ObjectID{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return models.PostView{}, apperror.Internal(err)
	}

	return s.buildView(post, map[primitive.ObjectID]models.User{actor.ID: actor}), nil
}

// Delete removes the actor's own post. The hosted image is removed first,
// best-effort: a failing host call is logged and the post record is deleted
// anyway.
func (s *PostService) Delete(ctx context.Context, actor models.User, postID primitive.ObjectID) error {
	post, err := s.posts.GetByID(ctx, postID)
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound("Post not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	if post.User != actor.ID {
		return apperror.Auth("You are not authorized to delete this post")
	}

	if post.Img != "" {
		if err := s.images.Remove(ctx, post.Img); err != nil {
			s.log.WithError(err).WithField("url", post.Img).Warn("could not remove post image from host")
		}
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// LikeUnlike toggles the actor's like on a post. A like also records the
// post id on the actor and fans out a notification to the post's author;
// an unlike reverses the membership writes and leaves notifications alone.
// Returns the updated likes set.
func (s *PostService) LikeUnlike(ctx context.Context, actor models.User, postID primitive.ObjectID) ([]primitive.ObjectID, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("Post not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if post.LikedBy(actor.ID) {
		if err := s.posts.RemoveLike(ctx, postID, actor.ID); err != nil {
			return nil, apperror.Internal(err)
		}
		if err := s.users.RemoveLikedPost(ctx, actor.ID, postID); err != nil {
			return nil, apperror.Internal(err)
		}
		likes := make([]primitive.ObjectID, 0, len(post.Likes))
		for _, id := range post.Likes {
			if id != actor.ID {
				likes = append(likes, id)
			}
		}
		return likes, nil
	}

	if err := s.posts.AddLike(ctx, postID, actor.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := s.users.AddLikedPost(ctx, actor.ID, postID); err != nil {
		return nil, apperror.Internal(err)
	}

	notification := models.Notification{
		ID:        primitive.NewObjectID(),
		From:      actor.ID,
		To:        post.User,
		Type:      models.NotificationTypeLike,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Insert(ctx, notification); err != nil {
		return nil, apperror.Internal(err)
	}

	return append(post.Likes, actor.ID), nil
}

func (s *PostService) Comment(ctx context.Context, actor models.User, postID primitive.ObjectID, text string) (models.PostView, error) {
	if strings.TrimSpace(text) == "" {
		return models.PostView{}, apperror.Validation("Text field is required")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PostView{}, apperror.NotFound("Post not found")
		}
		return models.PostView{}, apperror.Internal(err)
	}
	if _, err := s.users.GetByID(ctx, actor.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PostView{}, apperror.NotFound("User not found")
		}
		return models.PostView{}, apperror.Internal(err)
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		User:      actor.ID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.PushComment(ctx, postID, comment); err != nil {
		return models.PostView{}, apperror.Internal(err)
	}

	return s.viewOf(ctx, postID)
}

// DeleteComment removes a single comment, allowed only for the comment's
// author. The post's owner cannot delete other users' comments.
func (s *PostService) DeleteComment(ctx context.Context, actor models.User, postID, commentID primitive.ObjectID) (models.PostView, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if errors.Is(err, store.ErrNotFound) {
		return models.PostView{}, apperror.NotFound("Post not found")
	}
	if err != nil {
		return models.PostView{}, apperror.Internal(err)
	}

	comment, found := post.CommentByID(commentID)
	if !found {
		return models.PostView{}, apperror.NotFound("Comment not found")
	}
	if comment.User != actor.ID {
		return models.PostView{}, apperror.Forbidden("You are not authorized to delete this comment")
	}

	if err := s.posts.PullComment(ctx, postID, commentID); err != nil {
		return models.PostView{}, apperror.Internal(err)
	}

	return s.viewOf(ctx, postID)
}

func (s *PostService) All(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.posts.All(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return s.buildViews(ctx, posts)
}

// FollowingFeed returns posts authored by the actor's following set, newest
// first. An empty following set yields an empty feed.
func (s *PostService) FollowingFeed(ctx context.Context, actor models.User) ([]models.PostView, error) {
	if len(actor.Following) == 0 {
		return []models.PostView{}, nil
	}
	posts, err := s.posts.ByAuthors(ctx, actor.Following)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return s.buildViews(ctx, posts)
}

func (s *PostService) UserPosts(ctx context.Context, username string) ([]models.PostView, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	posts, err := s.posts.ByAuthor(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return s.buildViews(ctx, posts)
}

// LikedPosts returns the posts in the user's likedPosts set, in the set's
// stored order.
func (s *PostService) LikedPosts(ctx context.Context, userID primitive.ObjectID) ([]models.PostView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(user.LikedPosts) == 0 {
		return []models.PostView{}, nil
	}

	posts, err := s.posts.ByIDs(ctx, user.LikedPosts)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byID := make(map[primitive.ObjectID]models.Post, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
	}
	ordered := make([]models.Post, 0, len(posts))
	for _, id := range user.LikedPosts {
		if post, ok := byID[id]; ok {
			ordered = append(ordered, post)
		}
	}
	return s.buildViews(ctx, ordered)
}

func (s *PostService) viewOf(ctx context.Context, postID primitive.ObjectID) (models.PostView, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return models.PostView{}, apperror.Internal(err)
	}
	views, err := s.buildViews(ctx, []models.Post{post})
	if err != nil {
		return models.PostView{}, err
	}
	return views[0], nil
}

// buildViews joins the post authors and comment authors in at read time.
// Write-path documents keep only the ids.
func (s *PostService) buildViews(ctx context.Context, posts []models.Post) ([]models.PostView, error) {
	idSet := make(map[primitive.ObjectID]struct{})
	for _, post := range posts {
		idSet[post.User] = struct{}{}
		for _, comment := range post.Comments {
			idSet[comment.User] = struct{}{}
		}
	}
	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	authors := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) > 0 {
		users, err := s.users.GetManyByIDs(ctx, ids)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for _, user := range users {
			authors[user.ID] = user
		}
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, s.buildView(post, authors))
	}
	return views, nil
}

func (s *PostService) buildView(post models.Post, authors map[primitive.ObjectID]models.User) models.PostView {
	comments := make([]models.CommentView, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, models.CommentView{
			ID:        comment.ID,
			User:      authors[comment.User].Public(),
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		})
	}
	return models.PostView{
		ID:        post.ID,
		User:      authors[post.User].Public(),
		Text:      post.Text,
		Img:       post.Img,
		Likes:     post.Likes,
		Comments:  comments,
		CreatedAt: post.CreatedAt,
	}
}
