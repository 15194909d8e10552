//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"boat-reservation/internal/infra/messaging"
	"boat-reservation/internal/infra/notify"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []messaging.Message
	failKey  string
}

func (p *recordingPublisher) Publish(_ context.Context, msg messaging.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if msg.Key == p.failKey {
		return errors.New("broker unavailable")
	}
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func decode(t *testing.T, msg messaging.Message) notify.Envelope {
	t.Helper()
	var env notify.Envelope
	require.NoError(t, json.Unmarshal(msg.Body, &env))
	return env
}

var now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func TestService_Notify(t *testing.T) {
	pub := &recordingPublisher{}
	svc := notify.NewService(pub, clock.NewMockClock(now), 2)
	userID := uuid.New()

	err := svc.Notify(context.Background(), shared.Notification{
		UserID: userID, Title: "Reservation canceled", Message: "bye", Severity: shared.SeverityWarning,
	})
	require.NoError(t, err)

	require.Len(t, pub.messages, 1)
	assert.Equal(t, userID.String(), pub.messages[0].Key)
	assert.Equal(t, notify.TypeNotification, pub.messages[0].Type)

	env := decode(t, pub.messages[0])
	assert.Equal(t, "Reservation canceled", env.Title)
	assert.Equal(t, shared.SeverityWarning, env.Severity)
	assert.Equal(t, now, env.SentAt)
	assert.Nil(t, env.Battery)
}

func TestService_NotifyBatteryAssignments(t *testing.T) {
	holder := uuid.New()
	notices := []shared.BatteryAssignmentNotice{
		{
			ReservationID: uuid.New(), UserID: uuid.New(), BoatName: "Sea Breeze",
			Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), Start: "10:00", End: "13:00",
			BatteryID: uuid.New(), BatteryType: "LiFePO4", MentorID: uuid.New(), MentorName: "Mia",
		},
		{
			ReservationID: uuid.New(), UserID: uuid.New(), BoatName: "Sea Breeze",
			Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), Start: "14:00", End: "17:00",
			BatteryID: uuid.New(), BatteryType: "AGM", MentorID: uuid.New(), MentorName: "Mia",
			PreviousHolderID: &holder, PreviousHolderName: "Gus",
		},
	}

	t.Run("予約ごとに1通送る", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := notify.NewService(pub, clock.NewMockClock(now), 2)

		require.NoError(t, svc.NotifyBatteryAssignments(context.Background(), notices))
		require.Len(t, pub.messages, 2)

		byUser := map[string]notify.Envelope{}
		for _, m := range pub.messages {
			assert.Equal(t, notify.TypeBatteryAssigned, m.Type)
			byUser[m.Key] = decode(t, m)
		}

		first := byUser[notices[0].UserID.String()]
		require.NotNil(t, first.Battery)
		assert.Equal(t, "2025-06-12", first.Battery.Date)
		assert.Contains(t, first.Message, "Collect it from Mia.")

		second := byUser[notices[1].UserID.String()]
		require.NotNil(t, second.Battery)
		assert.Equal(t, &holder, second.Battery.PreviousHolderID)
		assert.Contains(t, second.Message, "Collect it from Gus")
	})

	t.Run("失敗は他の送信を止めずにまとめて返す", func(t *testing.T) {
		pub := &recordingPublisher{failKey: notices[0].UserID.String()}
		svc := notify.NewService(pub, clock.NewMockClock(now), 1)

		err := svc.NotifyBatteryAssignments(context.Background(), notices)
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 1)
		assert.Contains(t, err.Error(), notices[0].ReservationID.String())
		assert.Len(t, pub.messages, 1)
	})

	t.Run("空なら何もしない", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := notify.NewService(pub, clock.NewMockClock(now), 0)
		require.NoError(t, svc.NotifyBatteryAssignments(context.Background(), nil))
		assert.Empty(t, pub.messages)
	})
}
