package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/apperror"
	"chirpnest/models"
	"chirpnest/store"
)

type NotificationService struct {
	notifications store.NotificationStore
	users         store.UserStore
}

func NewNotificationService(notifications store.NotificationStore, users store.UserStore) *NotificationService {
	return &NotificationService{notifications: notifications, users: users}
}

// ListAndMarkRead returns the actor's inbox with sender projections joined
// in, then marks everything in it as read. Fetching deliberately mutates
// read state; the name carries the side effect.
func (s *NotificationService) ListAndMarkRead(ctx context.Context, actor models.User) ([]models.NotificationView, error) {
	notifications, err := s.notifications.ByRecipient(ctx, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	senderIDs := make([]primitive.ObjectID, 0, len(notifications))
	seen := make(map[primitive.ObjectID]struct{}, len(notifications))
	for _, notification := range notifications {
		if _, ok := seen[notification.From]; ok {
			continue
		}
		seen[notification.From] = struct{}{}
		senderIDs = append(senderIDs, notification.From)
	}

	senders := make(map[primitive.ObjectID]models.User, len(senderIDs))
	if len(senderIDs) > 0 {
		users, err := s.users.GetManyByIDs(ctx, senderIDs)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for _, user := range users {
			senders[user.ID] = user
		}
	}

	views := make([]models.NotificationView, 0, len(notifications))
	for _, notification := range notifications {
		sender := senders[notification.From]
		views = append(views, models.NotificationView{
			ID: notification.ID,
			From: models.NotificationActor{
				ID:         sender.ID,
				Username:   sender.Username,
				ProfileImg: sender.ProfileImg,
			},
			Type:      notification.Type,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		})
	}

	if err := s.notifications.MarkAllRead(ctx, actor.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	return views, nil
}

func (s *NotificationService) DeleteAll(ctx context.Context, actor models.User) error {
	if err := s.notifications.DeleteByRecipient(ctx, actor.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *NotificationService) DeleteOne(ctx context.Context, actor models.User, notificationID primitive.ObjectID) error {
	notification, err := s.notifications.GetByID(ctx, notificationID)
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound("Notification not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	if notification.To != actor.ID {
		return apperror.Forbidden("You are not allowed to delete this notification")
	}

	if err := s.notifications.Delete(ctx, notificationID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
