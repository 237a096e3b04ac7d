package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"meraki_estimator/internal/adapter/persistence/repository"
	"meraki_estimator/internal/domain/draft"
	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/totals"
	"meraki_estimator/internal/infrastructure/events"
	"meraki_estimator/internal/usecase/interfaces"
	mock_interfaces "meraki_estimator/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_Readers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uc.SetSelectedAreas(ctx, []entities.SelectedArea{
		{Slug: "kitchen", Label: "Kitchen"},
		{Slug: "bathrooms", Label: "Bathrooms"},
	})

	t.Run("next selected area", func(t *testing.T) {
		next, ok := f.uc.GetNextSelectedAreaSlug(ctx, "kitchen")
		assert.True(t, ok)
		assert.Equal(t, "bathrooms", next)

		_, ok = f.uc.GetNextSelectedAreaSlug(ctx, "bathrooms")
		assert.False(t, ok)

		next, ok = f.uc.GetNextSelectedAreaSlug(ctx, "unknown")
		assert.True(t, ok)
		assert.Equal(t, "kitchen", next)
	})

	t.Run("labels and rooms", func(t *testing.T) {
		label, ok := f.uc.GetSelectedAreaLabel(ctx, "bathrooms:")
		assert.True(t, ok)
		assert.Equal(t, "Bathrooms", label)

		_, ok = f.uc.GetSelectedAreaLabel(ctx, "parking")
		assert.False(t, ok)
		assert.Empty(t, f.uc.GetAreaRooms(ctx, "parking"))
	})

	t.Run("unknown estimate draft", func(t *testing.T) {
		d, ok := f.uc.GetEstimateDraft(ctx, "missing")
		assert.False(t, ok)
		assert.True(t, d.IsEmpty())
	})
}

func TestEstimateUseCase_Totals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uc.SetSelectedAreas(ctx, []entities.SelectedArea{{Slug: "kitchen", Label: "Kitchen"}})
	f.uc.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Name: "Kitchen 1", Area: 10}})
	f.uc.SetRoomOptional(ctx, "kitchen", 1, entities.DraftRoomOptional{Category: "floorings", ID: "porcelanic", Price: 500})

	got := f.uc.Totals(ctx)
	assert.Equal(t, totals.Totals{Areas: 1, Rooms: 1, M2: 10, OptionalsCount: 1, Base: 7000, Optionals: 500, Total: 7500}, got)
}

func TestEstimateUseCase_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("same pointer until the draft changes", func(t *testing.T) {
		f := newFixture(t)
		f.uc.SetSelectedAreas(ctx, []entities.SelectedArea{{Slug: "kitchen", Label: "Kitchen"}})
		f.uc.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Name: "Kitchen 1", Area: 10}})
		id, _ := f.uc.GetDraft(ctx)

		first := f.uc.Summary(ctx)
		assert.Same(t, first, f.uc.Summary(ctx))

		require.True(t, f.uc.SetEstimateTitle(ctx, id, "renamed"))
		assert.Same(t, first, f.uc.Summary(ctx))

		require.True(t, f.uc.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Name: "Kitchen 1", Area: 20}}))
		second := f.uc.Summary(ctx)
		assert.NotSame(t, first, second)
		assert.Equal(t, 14000.0, second.Totals.Base)
	})

	t.Run("external change is picked up", func(t *testing.T) {
		f := newFixture(t)
		id, _ := f.uc.GetDraft(ctx)
		before := f.uc.Summary(ctx)
		assert.Equal(t, 0.0, before.Totals.Total)

		d := entities.NewEstimateDraft()
		d.SelectedAreas = []entities.SelectedArea{{Slug: "parking", Label: "Parking"}}
		d.Areas["parking"] = entities.DraftArea{Slug: "parking", Label: "Parking", Rooms: []entities.DraftRoom{{Name: "Garage", Area: 10}}}
		require.NoError(t, f.store.Set(ctx, DraftKey(id), draft.Encode(d)))
		f.bus.NotifyExternal()

		after := f.uc.Summary(ctx)
		assert.NotSame(t, before, after)
		assert.Equal(t, 3500.0, after.Totals.Total)
	})

	t.Run("write by another engine without notification", func(t *testing.T) {
		f := newFixture(t)
		f.uc.SetSelectedAreas(ctx, []entities.SelectedArea{{Slug: "kitchen", Label: "Kitchen"}})
		f.uc.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Name: "Kitchen 1", Area: 10}})
		before := f.uc.Summary(ctx)
		require.Equal(t, 7000.0, before.Totals.Total)

		other := NewEstimateUseCase(f.store, events.NewBus())
		require.True(t, other.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Name: "Kitchen 1", Area: 20}}))

		_, d := f.uc.GetDraft(ctx)
		require.Equal(t, 20.0, d.Areas["kitchen"].Rooms[0].Area)
		after := f.uc.Summary(ctx)
		assert.NotSame(t, before, after)
		assert.Equal(t, 14000.0, after.Totals.Total)
		assert.Equal(t, 14000.0, f.uc.Totals(ctx).Total)
		assert.Same(t, after, f.uc.Summary(ctx))
	})

	t.Run("zero area alert", func(t *testing.T) {
		f := newFixture(t)
		f.uc.SetSelectedAreas(ctx, []entities.SelectedArea{{Slug: "kitchen", Label: "Kitchen"}})
		f.uc.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Name: "Pantry", Area: 0}})

		assert.Equal(t, []string{`room "Pantry" in Kitchen has 0 m²`}, f.uc.Summary(ctx).Alerts)
	})
}

func TestEstimateUseCase_Notifications(t *testing.T) {
	ctx := context.Background()

	t.Run("subscribers can read from the callback", func(t *testing.T) {
		f := newFixture(t)
		var seen []int
		f.bus.Subscribe(func() { seen = append(seen, len(f.uc.ListEstimates(ctx))) })

		f.uc.CreateEstimate(ctx, "A")
		f.uc.CreateEstimate(ctx, "B")
		assert.Equal(t, []int{1, 2}, seen)
	})

	t.Run("reads and dropped mutations stay silent", func(t *testing.T) {
		f := newFixture(t)
		f.uc.CreateEstimate(ctx, "A")
		f.uc.FinalizeActiveEstimate(ctx, "1 €")

		fired := 0
		f.bus.Subscribe(func() { fired++ })
		f.uc.ListEstimates(ctx)
		f.uc.GetDraft(ctx)
		f.uc.Summary(ctx)
		f.uc.SetAreaRooms(ctx, "kitchen", "Kitchen", nil)
		f.uc.FinalizeActiveEstimate(ctx, "")
		assert.Equal(t, 0, fired)
	})

	t.Run("concurrent mutations are serialized", func(t *testing.T) {
		f := newFixture(t)
		uc := NewEstimateUseCase(f.store, f.bus)
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				uc.CreateEstimate(ctx, "")
			}()
		}
		wg.Wait()

		list := uc.ListEstimates(ctx)
		assert.Len(t, list, 20)
		titles := map[string]bool{}
		for _, m := range list {
			titles[m.Title] = true
		}
		assert.Len(t, titles, 20)
	})
}

func TestEstimateUseCase_StorageUnavailable(t *testing.T) {
	ctx := context.Background()
	uc := NewEstimateUseCase(nil, events.NewBus())

	assert.Empty(t, uc.ListEstimates(ctx))
	assert.Equal(t, "", uc.EnsureActiveEstimateID(ctx))
	_, ok := uc.GetActiveEstimateID(ctx)
	assert.False(t, ok)
	id, d := uc.GetDraft(ctx)
	assert.Empty(t, id)
	assert.True(t, d.IsEmpty())
	assert.False(t, uc.SetSelectedAreas(ctx, []entities.SelectedArea{{Slug: "kitchen"}}))
	assert.False(t, uc.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Area: 3}}))
	_, ok = uc.FinalizeActiveEstimate(ctx, "")
	assert.False(t, ok)
	assert.False(t, uc.MigrateLegacy(ctx))
	assert.Equal(t, totals.Totals{}, uc.Totals(ctx))
	assert.Equal(t, uint64(0), uc.Revision())
}

func TestEstimateUseCase_StoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	t.Run("failing reads and writes degrade to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, boom).AnyTimes()
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom).AnyTimes()
		store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(boom).AnyTimes()

		bus := events.NewBus()
		fired := 0
		bus.Subscribe(func() { fired++ })
		uc := NewEstimateUseCase(store, bus)

		assert.Empty(t, uc.ListEstimates(ctx))
		assert.Equal(t, "", uc.EnsureActiveEstimateID(ctx))
		assert.False(t, uc.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Area: 3}}))
		assert.False(t, uc.DeleteEstimate(ctx, "x"))
		assert.Equal(t, 0, fired)
	})

	t.Run("create returns no estimate when nothing is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, nil).AnyTimes()
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom).AnyTimes()

		uc := NewEstimateUseCase(store, nil)
		meta := uc.CreateEstimate(ctx, "Flat")
		assert.Equal(t, entities.EstimateMeta{}, meta)

		assert.Equal(t, entities.EstimateMeta{}, NewEstimateUseCase(nil, nil).CreateEstimate(ctx, "Flat"))
	})

	t.Run("create drops the draft when the index cannot be written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mem := repository.NewMemoryKVRepository()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(mem.Get).AnyTimes()
		store.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(mem.Delete).AnyTimes()
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, key, value string) error {
				if key == KeyIndex {
					return boom
				}
				return mem.Set(ctx, key, value)
			},
		).AnyTimes()

		uc := NewEstimateUseCase(store, nil, WithIDGenerator(func() string { return "est-1" }))
		assert.Empty(t, uc.CreateEstimate(ctx, "Flat").ID)

		_, found, err := mem.Get(ctx, DraftKey("est-1"))
		require.NoError(t, err)
		assert.False(t, found)
		_, found, err = mem.Get(ctx, KeyActiveID)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("legacy draft survives a failed import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mem := repository.NewMemoryKVRepository()
		legacy := `{"selectedAreas":[{"slug":"kitchen","label":"Kitchen"}],"areas":{}}`
		require.NoError(t, mem.Set(ctx, KeyLegacyDraft, legacy))

		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(mem.Get).AnyTimes()
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, key, value string) error {
				if key == KeyCounter {
					return mem.Set(ctx, key, value)
				}
				return boom
			},
		).AnyTimes()
		store.EXPECT().Delete(gomock.Any(), KeyLegacyDraft).Times(0)

		uc := NewEstimateUseCase(store, nil)
		assert.True(t, uc.MigrateLegacy(ctx))

		v, found, err := mem.Get(ctx, KeyLegacyDraft)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, legacy, v)
	})
}

func TestProfileRegistry(t *testing.T) {
	ctx := context.Background()
	shared := repository.NewMemoryKVRepository()
	bus := events.NewBus()
	reg := NewProfileRegistry(func(profile string) interfaces.IKeyValueStore {
		return repository.NewNamespacedKVRepository(shared, profile)
	}, bus)

	alice, ok := reg.For("alice")
	require.True(t, ok)
	bob, ok := reg.For("bob")
	require.True(t, ok)

	alice.CreateEstimate(ctx, "Alice flat")
	assert.Len(t, alice.ListEstimates(ctx), 1)
	assert.Empty(t, bob.ListEstimates(ctx))

	again, _ := reg.For("alice")
	assert.Same(t, alice, again)

	def, ok := reg.For("")
	require.True(t, ok)
	named, _ := reg.For(DefaultProfileID)
	assert.Same(t, def, named)

	_, ok = reg.For("../etc")
	assert.False(t, ok)
	_, ok = reg.For("white space")
	assert.False(t, ok)
}
