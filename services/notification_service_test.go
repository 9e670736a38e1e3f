package services

import (
	"testing"

	"guest-portal/models"

	"github.com/stretchr/testify/require"
)

func TestNotifyBookingEvent_Templates(t *testing.T) {
	db := newTestDB(t)
	_, _, user := seedStay(t, db)
	svc := NewNotificationService(db)

	require.NoError(t, svc.NotifyBookingEvent(user.ID, EventBookingCancelled, "The Royale Majestic"))

	list, err := svc.ListByUser(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, models.NotificationTypeBooking, list[0].Type)
	require.Equal(t, "Booking Cancelled", list[0].Title)
	require.Equal(t, "Your reservation at The Royale Majestic has been cancelled as requested.", list[0].Message)
	require.False(t, list[0].Read)

	require.Error(t, svc.NotifyBookingEvent(user.ID, "unknown_event", "x"))
}

func TestListByUser_Limit(t *testing.T) {
	db := newTestDB(t)
	_, _, user := seedStay(t, db)
	svc := NewNotificationService(db)

	for i := 0; i < 15; i++ {
		require.NoError(t, svc.NotifyLoyaltyAwarded(user.ID, i+1))
	}

	list, err := svc.ListByUser(user.ID, 5)
	require.NoError(t, err)
	require.Len(t, list, 5)

	// zero falls back to the default of 10
	list, err = svc.ListByUser(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 10)
}

func TestMarkRead(t *testing.T) {
	db := newTestDB(t)
	_, _, user := seedStay(t, db)
	svc := NewNotificationService(db)

	n, err := svc.Create(user.ID, models.NotificationTypeService, "Request Cancelled", "done")
	require.NoError(t, err)

	read, err := svc.MarkRead(n.ID, user.ID, true)
	require.NoError(t, err)
	require.True(t, read.Read)

	// another guest cannot flip someone else's notification
	other := models.User{Email: "other@example.com", Name: "Jane"}
	require.NoError(t, db.Create(&other).Error)
	_, err = svc.MarkRead(n.ID, other.ID, true)
	require.ErrorIs(t, err, ErrNotificationNotFound)
}
