package usecase

import (
	"database/sql"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/docetangerina/estoque/internal/auth"
	"github.com/docetangerina/estoque/internal/db"
	"github.com/docetangerina/estoque/internal/watch"
)

func newTestEnv(t *testing.T) (*sql.DB, *watch.Bus, *zap.Logger) {
	t.Helper()
	return db.NewTestDB(t), watch.NewBus(), zap.NewNop()
}

func newTestUsers(t *testing.T) *Users {
	t.Helper()
	database, _, log := newTestEnv(t)
	// Low cost keeps hashing fast in tests.
	return NewUsers(database, auth.BcryptEncrypter{Cost: 4}, log)
}

// receiveUntil reads snapshots until check passes or the timeout
// expires. Snapshots are latest-value, so intermediate states may be
// skipped; only the final state matters.
func receiveUntil[T any](t *testing.T, ch <-chan []T, check func([]T) bool) []T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snapshot, ok := <-ch:
			if !ok {
				t.Fatal("snapshot stream closed early")
			}
			if check(snapshot) {
				return snapshot
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}
