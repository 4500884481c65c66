package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/events"
	"go-leave/internal/notification"
	notificationerrors "go-leave/internal/notification/errors"
	notificationMock "go-leave/internal/notification/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	store   *notificationMock.MockStore
	poster  *notificationMock.MockPoster
	service notification.Service
}

func setupServiceTest(t *testing.T, channelID string) serviceDeps {
	ctrl := gomock.NewController(t)
	tr, err := notification.NewTranslator("en")
	require.NoError(t, err)

	store := notificationMock.NewMockStore(ctrl)
	poster := notificationMock.NewMockPoster(ctrl)
	return serviceDeps{
		store:   store,
		poster:  poster,
		service: notification.NewService(store, tr, poster, channelID),
	}
}

func decidedEvent(status string) events.LeaveDecidedEvent {
	return events.LeaveDecidedEvent{
		EventType:   events.LeaveDecidedEventType,
		LeaveID:     "leave-1",
		OwnerID:     "user-1",
		OwnerName:   "Dewi",
		LeaveType:   "CASUAL",
		StartDate:   "2025-07-01",
		EndDate:     "2025-07-02",
		Status:      status,
		DeciderRole: "HR",
		Comment:     "coverage gap",
		RequestID:   "req-1",
	}
}

func TestService_HandleLeaveDecided(t *testing.T) {
	ctx := context.Background()

	t.Run("stores inbox entry and posts to channel", func(t *testing.T) {
		deps := setupServiceTest(t, "chan-1")

		deps.store.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n *notification.Notification) (bool, error) {
				assert.Equal(t, "leave-1:APPROVED", n.EventKey)
				assert.Equal(t, "user-1", n.UserID)
				assert.Equal(t, notification.KindLeaveApproved, n.Kind)
				assert.Equal(t, "Leave approved", n.Title)
				assert.Equal(t, "Your CASUAL leave from 2025-07-01 to 2025-07-02 was approved by HR.", n.Message)
				assert.Equal(t, "req-1", n.RequestID)
				assert.False(t, n.Read)
				return true, nil
			})
		deps.poster.EXPECT().
			Post(ctx, "chan-1", "Dewi's CASUAL leave (2025-07-01 to 2025-07-02) was approved by HR.", gomock.Any()).
			Return(nil)

		require.NoError(t, deps.service.HandleLeaveDecided(ctx, decidedEvent("APPROVED")))
	})

	t.Run("rejection message carries comment", func(t *testing.T) {
		deps := setupServiceTest(t, "")

		deps.store.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n *notification.Notification) (bool, error) {
				assert.Equal(t, notification.KindLeaveRejected, n.Kind)
				assert.Contains(t, n.Message, "coverage gap")
				return true, nil
			})

		require.NoError(t, deps.service.HandleLeaveDecided(ctx, decidedEvent("rejected")))
	})

	t.Run("duplicate event is not posted again", func(t *testing.T) {
		deps := setupServiceTest(t, "chan-1")
		deps.store.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)

		require.NoError(t, deps.service.HandleLeaveDecided(ctx, decidedEvent("APPROVED")))
	})

	t.Run("post failure is not returned", func(t *testing.T) {
		deps := setupServiceTest(t, "chan-1")
		deps.store.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil)
		deps.poster.EXPECT().Post(ctx, "chan-1", gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		assert.NoError(t, deps.service.HandleLeaveDecided(ctx, decidedEvent("APPROVED")))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		deps := setupServiceTest(t, "chan-1")
		deps.store.EXPECT().Insert(ctx, gomock.Any()).Return(false, errors.New("mongo down"))

		assert.EqualError(t, deps.service.HandleLeaveDecided(ctx, decidedEvent("APPROVED")), "mongo down")
	})

	t.Run("non final status rejected", func(t *testing.T) {
		deps := setupServiceTest(t, "chan-1")

		err := deps.service.HandleLeaveDecided(ctx, decidedEvent("PENDING"))

		assert.ErrorIs(t, err, notificationerrors.ErrInvalidEvent)
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		deps := setupServiceTest(t, "chan-1")
		event := decidedEvent("APPROVED")
		event.OwnerID = ""

		assert.ErrorIs(t, deps.service.HandleLeaveDecided(ctx, event), notificationerrors.ErrInvalidEvent)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{ID: "user-1", Role: domain.RoleEmployee}
	id := bson.NewObjectID()
	stored := notification.Notification{
		ID:        id,
		LeaveID:   "leave-1",
		Kind:      notification.KindLeaveApproved,
		Data:      map[string]any{"LeaveType": "SICK", "StartDate": "a", "EndDate": "b", "DecidedBy": "MANAGER"},
		Title:     "Leave approved",
		Message:   "stored message",
		Locale:    "en",
		CreatedAt: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("defaults paging and keeps stored text", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		deps.store.EXPECT().ListByUser(ctx, "user-1", true, 1, 20).Return([]notification.Notification{stored}, int64(1), nil)

		items, total, err := deps.service.List(ctx, actor, notification.ListNotificationsQuery{UnreadOnly: true})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, id.Hex(), items[0].ID)
		assert.Equal(t, "stored message", items[0].Message)
	})

	t.Run("re-renders in requested locale", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		deps.store.EXPECT().ListByUser(ctx, "user-1", false, 2, 5).Return([]notification.Notification{stored}, int64(6), nil)

		items, _, err := deps.service.List(ctx, actor, notification.ListNotificationsQuery{Page: 2, PageSize: 5, Locale: "id"})

		require.NoError(t, err)
		assert.Equal(t, "Cuti disetujui", items[0].Title)
		assert.Equal(t, "Cuti SICK Anda dari a sampai b telah disetujui oleh MANAGER.", items[0].Message)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		deps := setupServiceTest(t, "")

		_, _, err := deps.service.List(ctx, domain.Actor{}, notification.ListNotificationsQuery{})

		assert.Error(t, err)
	})
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{ID: "user-1", Role: domain.RoleEmployee}
	id := bson.NewObjectID()

	t.Run("marked", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		deps.store.EXPECT().MarkRead(ctx, "user-1", id, gomock.Any()).Return(true, nil)

		assert.NoError(t, deps.service.MarkRead(ctx, actor, id.Hex()))
	})

	t.Run("someone else's notification", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		deps.store.EXPECT().MarkRead(ctx, "user-1", id, gomock.Any()).Return(false, nil)

		assert.ErrorIs(t, deps.service.MarkRead(ctx, actor, id.Hex()), notificationerrors.ErrNotificationNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t, "")

		assert.ErrorIs(t, deps.service.MarkRead(ctx, actor, "xyz"), notificationerrors.ErrInvalidNotificationID)
	})
}
