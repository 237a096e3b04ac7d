package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"meraki_estimator/internal/adapter/persistence/repository"
	"meraki_estimator/internal/infrastructure/events"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("est-%d", n)
	}
}

type fixture struct {
	uc    *EstimateUseCase
	store *repository.MemoryKVRepository
	bus   *events.Bus
	clock *fakeClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := repository.NewMemoryKVRepository()
	bus := events.NewBus()
	clock := &fakeClock{now: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	uc := NewEstimateUseCase(store, bus, WithClock(clock.Now), WithIDGenerator(sequentialIDs()))
	return fixture{uc: uc, store: store, bus: bus, clock: clock}
}

func (f fixture) raw(t *testing.T, key string) string {
	t.Helper()
	v, _, err := f.store.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func (f fixture) has(t *testing.T, key string) bool {
	t.Helper()
	_, found, err := f.store.Get(context.Background(), key)
	require.NoError(t, err)
	return found
}
