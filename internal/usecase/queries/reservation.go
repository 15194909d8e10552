package queries

import (
	"context"
	"slices"

	"boat-reservation/internal/infra"
	"boat-reservation/internal/pkg/errs"
	"boat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.Define("reservation not found", errs.ErrNotFound)
	ErrReservationHidden   = errs.Define("reservation belongs to another user", errs.ErrForbidden)
)

type ListRequest struct {
	Cursor    string
	Direction Direction
	Limit     int
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, actor shared.Actor, req ListRequest) (*Page[*ReservationListItem], error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListByUser returns at most limit rows strictly after (next) or before
	// (prev) the keyset. Rows come in ascending order for next and in
	// descending order for prev. A nil keyset starts from the beginning.
	ListByUser(ctx context.Context, userID uuid.UUID, after *Keyset, dir Direction, limit int) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(view.UserID) {
		return nil, ErrReservationHidden
	}
	return view, nil
}

// ListByUser pages through the actor's own reservations, canceled ones
// included, ordered by slot start.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, actor shared.Actor, req ListRequest) (*Page[*ReservationListItem], error) {
	limit := ValidateLimit(req.Limit)

	var after *Keyset
	if req.Cursor != "" {
		k, err := DecodeCursor(req.Cursor)
		if err != nil {
			return nil, err
		}
		after = &k
	}
	dir := req.Direction
	if dir == "" || after == nil {
		dir = DirectionNext
	}

	// One extra row tells whether another page exists in the scan direction.
	rows, err := q.store.ListByUser(ctx, actor.CurrentUserID(), after, dir, limit+1)
	if err != nil {
		return nil, err
	}
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	page := &Page[*ReservationListItem]{Data: rows}
	if dir == DirectionPrev {
		slices.Reverse(rows)
		page.IsFirstPage = !hasMore
		if hasMore && len(rows) > 0 {
			page.PreviousCursor = cursorOf(rows[0])
		}
		if len(rows) > 0 {
			page.NextCursor = cursorOf(rows[len(rows)-1])
		}
		return page, nil
	}

	page.IsFirstPage = after == nil
	if hasMore {
		page.NextCursor = cursorOf(rows[len(rows)-1])
	}
	if after != nil && len(rows) > 0 {
		page.PreviousCursor = cursorOf(rows[0])
	}
	return page, nil
}

func cursorOf(item *ReservationListItem) *string {
	c := EncodeCursor(Keyset{StartAt: item.StartAt, ID: item.ID})
	return &c
}
