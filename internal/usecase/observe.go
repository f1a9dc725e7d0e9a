package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/docetangerina/estoque/internal/watch"
)

// observe turns a bus subscription into a snapshot stream: the current
// collection is delivered immediately, then a fresh one after every
// notification on the topic. The channel holds only the latest
// snapshot; a slow consumer skips intermediate states instead of
// lagging behind. Cancelling ctx ends delivery and releases the
// subscription without touching the store.
func observe[T any](
	ctx context.Context,
	bus *watch.Bus,
	topic watch.Topic,
	log *zap.Logger,
	list func(context.Context) ([]T, error),
) (<-chan []T, error) {
	notify, cancel := bus.Subscribe(topic)

	first, err := list(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan []T, 1)
	out <- first

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-notify:
				snapshot, err := list(ctx)
				if err != nil {
					// There is no caller to return this to; keep the
					// subscription alive and report the failure.
					log.Warn("snapshot refresh failed",
						zap.String("topic", string(topic)), zap.Error(err))
					continue
				}
				// Replace an undelivered snapshot with the newer one.
				select {
				case <-out:
				default:
				}
				out <- snapshot
			}
		}
	}()

	return out, nil
}
