package usecase

import (
	"context"
	"time"

	"socialnet/pkg/logger"
	"socialnet/pkg/queue"
)

const publishTimeout = 5 * time.Second

type notifier struct {
	publisher EventPublisher
	logger    *logger.Logger
}

// notify publishes event in the background. Failures are logged only.
// Users are not notified about their own actions.
func (n notifier) notify(event queue.Event) {
	if n.publisher == nil || event.UserID == event.ActorID {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := n.publisher.Publish(ctx, event); err != nil {
			n.logger.Error("[EVENTS] Failed to publish %s (user_id=%s, actor_id=%s): %v", event.Type, event.UserID, event.ActorID, err)
		}
	}()
}
