package usecase

import (
	"context"
	"sync"
	"time"

	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/totals"
	"meraki_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IEstimateUseCase is the function-level API the wizard, dashboard and
// summary views call.
//
// Operations never return errors: storage failures degrade to empty reads and
// skipped writes, and edits of a finalized estimate are dropped. Mutators
// report with a bool whether anything was applied.

type IEstimateUseCase interface {
	// lifecycle
	CreateEstimate(ctx context.Context, title string) entities.EstimateMeta
	DuplicateEstimate(ctx context.Context, id string) (entities.EstimateMeta, bool)
	DeleteEstimate(ctx context.Context, id string) bool
	SetEstimateTitle(ctx context.Context, id, title string) bool
	FinalizeActiveEstimate(ctx context.Context, total string) (entities.EstimateMeta, bool)
	SetActiveEstimateID(ctx context.Context, id string) bool
	GetActiveEstimateID(ctx context.Context) (string, bool)
	EnsureActiveEstimateID(ctx context.Context) string
	MigrateLegacy(ctx context.Context) bool

	// index
	ListEstimates(ctx context.Context) []entities.EstimateMeta
	GetEstimate(ctx context.Context, id string) (entities.EstimateMeta, bool)
	IsActiveEstimateFinalized(ctx context.Context) bool

	// draft
	GetDraft(ctx context.Context) (string, entities.EstimateDraft)
	GetEstimateDraft(ctx context.Context, id string) (entities.EstimateDraft, bool)
	GetSelectedAreas(ctx context.Context) []entities.SelectedArea
	GetSelectedAreaLabel(ctx context.Context, slug string) (string, bool)
	GetNextSelectedAreaSlug(ctx context.Context, currentSlug string) (string, bool)
	GetAreaRooms(ctx context.Context, slug string) []entities.DraftRoom
	SetSelectedAreas(ctx context.Context, areas []entities.SelectedArea) bool
	SetAreaRooms(ctx context.Context, slug, label string, rooms []entities.DraftRoom) bool
	ResizeAreaRooms(ctx context.Context, slug, label string, count int) bool
	SetRoomOptional(ctx context.Context, slug string, roomIndex int, opt entities.DraftRoomOptional) bool
	ClearRoomOptional(ctx context.Context, slug string, roomIndex int, category string) bool
	ReuseRoomOptionals(ctx context.Context, slug string, fromIndex int, targets []int) bool

	// totals
	Totals(ctx context.Context) totals.Totals
	Summary(ctx context.Context) *totals.Summary
	Revision() uint64
}

// EstimateUseCase owns every read and write of one profile's estimates.
//
// Storage model (key/value, see estimate_storage.go):
//   - the estimate index and the active pointer are single records
//   - each draft is stored under its own key
//
// A nil store models an execution context without storage: reads are empty
// and writes are skipped.
type EstimateUseCase struct {
	store    interfaces.IKeyValueStore
	notifier interfaces.IChangeNotifier
	now      func() time.Time
	newID    func() string

	mu       sync.Mutex
	migrated bool
	dirty    bool
	revision uint64
	cache    summaryCache
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

type Option func(*EstimateUseCase)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(u *EstimateUseCase) { u.now = now }
}

// WithIDGenerator replaces the estimate id generator.
func WithIDGenerator(gen func() string) Option {
	return func(u *EstimateUseCase) { u.newID = gen }
}

func NewEstimateUseCase(store interfaces.IKeyValueStore, notifier interfaces.IChangeNotifier, opts ...Option) *EstimateUseCase {
	u := &EstimateUseCase{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		newID:    newEstimateID,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// newEstimateID combines a millisecond timestamp with random bits (UUIDv7),
// so ids sort by creation and do not collide within a profile.
func newEstimateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Revision increases on every mutation committed through this use case.
func (u *EstimateUseCase) Revision() uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.revision
}

func (u *EstimateUseCase) lock() {
	u.mu.Lock()
}

// unlock releases the use case and, when the critical section committed a
// write, fires the change notification. Subscribers run without the lock held
// so they can read a fresh snapshot.
func (u *EstimateUseCase) unlock() {
	changed := u.dirty
	u.dirty = false
	u.mu.Unlock()
	if changed && u.notifier != nil {
		u.notifier.Notify()
	}
}

// nextTimestamp returns now, or a millisecond after prev when the clock has
// not advanced past it, so UpdatedAt strictly increases on every touch.
func (u *EstimateUseCase) nextTimestamp(prev time.Time) time.Time {
	now := u.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}
