package notification

import (
	"context"
	"strings"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/events"
	notificationerrors "go-leave/internal/notification/errors"
	"go-leave/internal/shared/apperror"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

const (
	colorApproved = "#2eb886"
	colorRejected = "#d24b4e"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	HandleLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error
	List(ctx context.Context, actor domain.Actor, q ListNotificationsQuery) ([]NotificationResponse, int64, error)
	MarkRead(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	store      Store
	translator *Translator
	poster     Poster
	channelID  string
	now        func() time.Time
	logger     *zap.Logger
}

// NewService builds the inbox service. A nil poster or an empty channelID disables chat delivery.
func NewService(store Store, translator *Translator, poster Poster, channelID string, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		store:      store,
		translator: translator,
		poster:     poster,
		channelID:  channelID,
		now:        time.Now,
		logger:     l,
	}
}

func kindFor(status string) (string, string, bool) {
	switch domain.LeaveStatus(strings.ToUpper(status)) {
	case domain.StatusApproved:
		return KindLeaveApproved, colorApproved, true
	case domain.StatusRejected:
		return KindLeaveRejected, colorRejected, true
	default:
		return "", "", false
	}
}

func (s *service) HandleLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error {
	kind, color, ok := kindFor(event.Status)
	if !ok || event.LeaveID == "" || event.OwnerID == "" {
		s.logger.Warn("leave decided event rejected",
			zap.String("request_id", event.RequestID),
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
		)
		return notificationerrors.ErrInvalidEvent
	}

	name := event.OwnerName
	if name == "" {
		name = event.OwnerEmail
	}
	data := map[string]any{
		"Name":      name,
		"LeaveType": event.LeaveType,
		"StartDate": event.StartDate,
		"EndDate":   event.EndDate,
		"DecidedBy": event.DeciderRole,
		"Comment":   event.Comment,
	}

	locale := s.translator.DefaultLocale()
	n := &Notification{
		EventKey:  event.LeaveID + ":" + strings.ToUpper(event.Status),
		UserID:    event.OwnerID,
		LeaveID:   event.LeaveID,
		Kind:      kind,
		Data:      data,
		Title:     s.translator.T(locale, kind+"_title", data),
		Message:   s.translator.T(locale, kind+"_message", data),
		Locale:    locale,
		RequestID: event.RequestID,
		CreatedAt: s.now(),
	}

	created, err := s.store.Insert(ctx, n)
	if err != nil {
		s.logger.Error("store notification failed",
			zap.String("request_id", event.RequestID),
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
		return err
	}
	if !created {
		s.logger.Info("duplicate leave decided event ignored",
			zap.String("request_id", event.RequestID),
			zap.String("event_key", n.EventKey),
		)
		return nil
	}

	if s.poster == nil || s.channelID == "" {
		return nil
	}

	// chat delivery is best effort, the inbox entry is the record
	text := s.translator.T(locale, kind+"_channel", data)
	if err := s.poster.Post(ctx, s.channelID, text, color); err != nil {
		s.logger.Warn("mattermost post failed",
			zap.String("request_id", event.RequestID),
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
	}
	return nil
}

func (s *service) List(ctx context.Context, actor domain.Actor, q ListNotificationsQuery) ([]NotificationResponse, int64, error) {
	if actor.ID == "" {
		return nil, 0, apperror.ErrUnauthorized
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}

	items, total, err := s.store.ListByUser(ctx, actor.ID, q.UnreadOnly, q.Page, q.PageSize)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", actor.ID), zap.Error(err))
		return nil, 0, err
	}

	resp := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, s.toResponse(n, q.Locale))
	}
	return resp, total, nil
}

// toResponse re-renders stored entries when the caller asks for another locale.
func (s *service) toResponse(n Notification, locale string) NotificationResponse {
	title, message := n.Title, n.Message
	if locale != "" && locale != n.Locale && n.Kind != "" {
		title = s.translator.T(locale, n.Kind+"_title", n.Data)
		message = s.translator.T(locale, n.Kind+"_message", n.Data)
	}
	return NotificationResponse{
		ID:        n.ID.Hex(),
		LeaveID:   n.LeaveID,
		Kind:      n.Kind,
		Title:     title,
		Message:   message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
	}
}

func (s *service) MarkRead(ctx context.Context, actor domain.Actor, id string) error {
	if actor.ID == "" {
		return apperror.ErrUnauthorized
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}

	found, err := s.store.MarkRead(ctx, actor.ID, oid, s.now())
	if err != nil {
		s.logger.Error("mark notification read failed", zap.String("user_id", actor.ID), zap.Error(err))
		return err
	}
	if !found {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}
