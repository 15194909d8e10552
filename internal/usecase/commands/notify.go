package commands

import (
	"context"
	"log/slog"

	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/usecase/shared"
)

const dateLayout = "2006-01-02"

// notifyAfterCommit is best effort: the change is already committed, so a
// failed notification is logged and dropped.
func notifyAfterCommit(ctx context.Context, notifier shared.Notifier, notifications ...shared.Notification) {
	for _, n := range notifications {
		if err := notifier.Notify(ctx, n); err != nil {
			slog.WarnContext(ctx, "notification failed",
				slog.String("user_id", n.UserID.String()),
				slog.String("title", n.Title),
				slog.String("error", err.Error()))
		}
	}
}

func describeSlot(slot schedule.TimeSlot) string {
	return slot.Date().Format(dateLayout) + " " + slot.StartText() + "-" + slot.EndText()
}
