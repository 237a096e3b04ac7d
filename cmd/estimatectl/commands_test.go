package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"meraki_estimator/internal/adapter/persistence/repository"
	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/usecase"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOpener serves every command from one shared in-memory store, the way
// separate invocations share the sqlite file.
func memoryOpener(t *testing.T) engineOpener {
	t.Helper()
	kv := repository.NewMemoryKVRepository()
	return func(_ context.Context, profile string) (usecase.IEstimateUseCase, func() error, error) {
		uc := usecase.NewEstimateUseCase(repository.NewNamespacedKVRepository(kv, profile), nil)
		return uc, func() error { return nil }, nil
	}
}

func run(t *testing.T, open engineOpener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out, open).Run(append([]string{"estimatectl"}, args...))
	return out.String(), err
}

func TestEstimatectl_Lifecycle(t *testing.T) {
	open := memoryOpener(t)

	out, err := run(t, open, "new", "Flat", "in", "Porto")
	require.NoError(t, err)
	assert.Contains(t, out, "Flat in Porto")

	out, err = run(t, open, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Flat in Porto")
	assert.Contains(t, out, "*")

	out, err = run(t, open, "finalize", "--total", "12.450 €")
	require.NoError(t, err)
	assert.Contains(t, out, "finalized at 12.450 €")

	out, err = run(t, open, "finalize")
	require.NoError(t, err)
	assert.Contains(t, out, "already finalized")

	out, err = run(t, open, "snapshot")
	require.NoError(t, err)
	var snap snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, usecase.DefaultProfileID, snap.Profile)
	assert.True(t, snap.ActiveFinalized)
	require.Len(t, snap.Estimates, 1)
	assert.Equal(t, string(entities.EstimateStatusFinalized), snap.Estimates[0].Status)

	_, err = run(t, open, "use", "missing")
	assert.ErrorIs(t, err, errEstimateMissing)

	_, err = run(t, open, "delete", snap.ActiveID)
	require.NoError(t, err)
	out, err = run(t, open, "snapshot")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Empty(t, snap.Estimates)
	assert.Empty(t, snap.ActiveID)
}

func TestEstimatectl_Profiles(t *testing.T) {
	open := memoryOpener(t)

	_, err := run(t, open, "--profile", "ana", "new", "Ana's flat")
	require.NoError(t, err)

	out, err := run(t, open, "--profile", "bruno", "snapshot")
	require.NoError(t, err)
	var snap snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Empty(t, snap.Estimates)

	_, err = run(t, open, "--profile", "../ana", "list")
	assert.ErrorIs(t, err, errUnknownProfile)
}

func TestEstimatectl_TotalsAndExport(t *testing.T) {
	open := memoryOpener(t)
	uc, _, err := open(context.Background(), usecase.DefaultProfileID)
	require.NoError(t, err)
	ctx := context.Background()
	uc.CreateEstimate(ctx, "Kitchen job")
	require.True(t, uc.SetSelectedAreas(ctx, []entities.SelectedArea{{Slug: "kitchen", Label: "Kitchen"}}))
	require.True(t, uc.SetAreaRooms(ctx, "kitchen", "Kitchen", []entities.DraftRoom{{Name: "Kitchen 1", Area: 10}}))

	out, err := run(t, open, "totals")
	require.NoError(t, err)
	assert.Contains(t, out, "7.000 €")

	out, err = run(t, open, "export")
	require.NoError(t, err)
	var export struct {
		Estimate struct {
			Title string `json:"title"`
		} `json:"estimate"`
		Summary struct {
			Totals struct {
				Total float64 `json:"total"`
			} `json:"totals"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &export))
	assert.Equal(t, "Kitchen job", export.Estimate.Title)
	assert.Equal(t, 7000.0, export.Summary.Totals.Total)
}

func TestEstimatectl_CloseErrorIsLogged(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	kv := repository.NewMemoryKVRepository()
	closed := 0
	open := func(_ context.Context, profile string) (usecase.IEstimateUseCase, func() error, error) {
		uc := usecase.NewEstimateUseCase(repository.NewNamespacedKVRepository(kv, profile), nil)
		return uc, func() error {
			closed++
			return errors.New("database is locked")
		}, nil
	}

	out, err := run(t, open, "new", "Loft")
	require.NoError(t, err)
	assert.Contains(t, out, "Loft")
	assert.Equal(t, 1, closed)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Failed to close the estimate store", entry.Message)
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "database is locked")
	assert.Equal(t, usecase.DefaultProfileID, entry.Data["profile"])
}
