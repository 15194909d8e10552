package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"boat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 20
	CursorVersionV1  = "v1"
)

var (
	ErrInvalidCursor    = errs.Define("invalid cursor", errs.ErrInvalidArgument)
	ErrInvalidDirection = errs.Define("direction must be next or prev", errs.ErrInvalidArgument)
)

type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", DirectionNext:
		return DirectionNext, nil
	case DirectionPrev:
		return DirectionPrev, nil
	default:
		return "", ErrInvalidDirection
	}
}

// Keyset is the position of a row in (start_at, id) order.
type Keyset struct {
	StartAt time.Time
	ID      uuid.UUID
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeCursor(k Keyset) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, k.StartAt.UnixMicro(), k.ID.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeCursor(cursor string) (Keyset, error) {
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return Keyset{}, ErrInvalidCursor
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return Keyset{}, ErrInvalidCursor
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return Keyset{}, ErrInvalidCursor
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return Keyset{}, ErrInvalidCursor
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Keyset{}, ErrInvalidCursor
	}
	return Keyset{StartAt: time.UnixMicro(ts).UTC(), ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
