package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"boat-reservation/internal/infra/messaging"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/pkg/errs"
	"boat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const (
	TypeNotification    = "notification"
	TypeBatteryAssigned = "battery_assigned"

	defaultConcurrency = 4
)

// Envelope is the JSON body consumers receive.
type Envelope struct {
	Type     string          `json:"type"`
	UserID   uuid.UUID       `json:"user_id"`
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Severity shared.Severity `json:"severity"`
	SentAt   time.Time       `json:"sent_at"`
	Battery  *BatteryDetail  `json:"battery,omitempty"`
}

type BatteryDetail struct {
	ReservationID      uuid.UUID  `json:"reservation_id"`
	BoatName           string     `json:"boat_name"`
	Date               string     `json:"date"`
	Start              string     `json:"start"`
	End                string     `json:"end"`
	BatteryID          uuid.UUID  `json:"battery_id"`
	BatteryType        string     `json:"battery_type"`
	MentorID           uuid.UUID  `json:"mentor_id"`
	MentorName         string     `json:"mentor_name"`
	PreviousHolderID   *uuid.UUID `json:"previous_holder_id,omitempty"`
	PreviousHolderName string     `json:"previous_holder_name,omitempty"`
}

type Service struct {
	publisher   messaging.Publisher
	clock       clock.Clock
	concurrency int
}

func NewService(publisher messaging.Publisher, clk clock.Clock, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Service{publisher: publisher, clock: clk, concurrency: concurrency}
}

func (s *Service) Notify(ctx context.Context, n shared.Notification) error {
	return s.publish(ctx, TypeNotification, Envelope{
		UserID:   n.UserID,
		Title:    n.Title,
		Message:  n.Message,
		Severity: n.Severity,
	})
}

// NotifyBatteryAssignments sends one message per notice. A failed send does
// not stop the others; all failures come back combined.
func (s *Service) NotifyBatteryAssignments(ctx context.Context, notices []shared.BatteryAssignmentNotice) error {
	var (
		mu     sync.Mutex
		result error
		g      errgroup.Group
	)
	g.SetLimit(s.concurrency)

	for _, notice := range notices {
		g.Go(func() error {
			if err := s.publish(ctx, TypeBatteryAssigned, assignmentEnvelope(notice)); err != nil {
				mu.Lock()
				result = multierr.Append(result, fmt.Errorf("reservation %s: %w", notice.ReservationID, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return result
}

func (s *Service) publish(ctx context.Context, msgType string, env Envelope) error {
	env.Type = msgType
	env.SentAt = s.clock.Now().UTC()
	body, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}
	return s.publisher.Publish(ctx, messaging.Message{
		Key:  env.UserID.String(),
		Type: msgType,
		Body: body,
	})
}

func assignmentEnvelope(n shared.BatteryAssignmentNotice) Envelope {
	date := n.Date.Format(time.DateOnly)

	var b strings.Builder
	fmt.Fprintf(&b, "Your trip on %s, %s %s-%s, uses the %s battery looked after by %s.",
		n.BoatName, date, n.Start, n.End, n.BatteryType, n.MentorName)
	if n.PreviousHolderID != nil && n.PreviousHolderName != "" {
		fmt.Fprintf(&b, " Collect it from %s, who used it last.", n.PreviousHolderName)
	} else {
		fmt.Fprintf(&b, " Collect it from %s.", n.MentorName)
	}

	return Envelope{
		UserID:   n.UserID,
		Title:    "Battery assigned",
		Message:  b.String(),
		Severity: shared.SeverityInfo,
		Battery: &BatteryDetail{
			ReservationID:      n.ReservationID,
			BoatName:           n.BoatName,
			Date:               date,
			Start:              n.Start,
			End:                n.End,
			BatteryID:          n.BatteryID,
			BatteryType:        n.BatteryType,
			MentorID:           n.MentorID,
			MentorName:         n.MentorName,
			PreviousHolderID:   n.PreviousHolderID,
			PreviousHolderName: n.PreviousHolderName,
		},
	}
}
