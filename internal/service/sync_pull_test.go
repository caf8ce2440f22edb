// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type pullMocks struct {
	repo    *mock.MockEntitySyncRepository[*models.Category]
	source  *mock.MockRemoteSource[models.RemoteCategory]
	decoder *mock.MockRecordDecoder[*models.Category, models.RemoteCategory]
}

func newTestPullReconciler(t *testing.T) (*PullReconciler[*models.Category, models.RemoteCategory], pullMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := pullMocks{
		repo:    mock.NewMockEntitySyncRepository[*models.Category](ctrl),
		source:  mock.NewMockRemoteSource[models.RemoteCategory](ctrl),
		decoder: mock.NewMockRecordDecoder[*models.Category, models.RemoteCategory](ctrl),
	}

	p := NewPullReconciler[*models.Category, models.RemoteCategory](models.EntityCategory, m.repo, m.source, m.decoder)
	p.now = fixedClock
	return p, m
}

func remoteCategory(serverID string, deleted bool, updatedAt time.Time) models.RemoteCategory {
	return models.RemoteCategory{
		RemoteMeta: models.RemoteMeta{ID: serverID, IsDeleted: deleted, UpdatedAt: updatedAt},
		BookID:     "b-1",
		Name:       "Food",
		Kind:       models.CategoryExpense,
	}
}

func localCategory(localID int64, serverID string, updatedAt time.Time) *models.Category {
	return &models.Category{
		SyncMeta: models.SyncMeta{LocalID: localID, ServerID: serverID, IsSynced: true, UpdatedAt: updatedAt},
		BookID:   1,
		Name:     "Groceries",
		Kind:     models.CategoryExpense,
	}
}

// ── last-write-wins ──────────────────────────────────────────────────────────

func TestPullReconciler_LastWriteWins(t *testing.T) {
	t1 := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		remoteAt  time.Time
		wantSaved bool
	}{
		{name: "remote newer overwrites", remoteAt: t1.Add(time.Second), wantSaved: true},
		{name: "same timestamp keeps local", remoteAt: t1, wantSaved: false},
		{name: "remote older keeps local", remoteAt: t1.Add(-time.Second), wantSaved: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m := newTestPullReconciler(t)
			remote := remoteCategory("c-1", false, tt.remoteAt)
			local := localCategory(7, "c-1", t1)

			m.repo.EXPECT().FindByServerID(gomock.Any(), "c-1").Return(local, nil)
			if tt.wantSaved {
				decoded := localCategory(0, "c-1", tt.remoteAt)
				m.decoder.EXPECT().Decode(gomock.Any(), remote).Return(decoded, nil)
				m.repo.EXPECT().SaveFromRemote(gomock.Any(), decoded, fixedNow).Return(nil)
			}

			stats, err := p.Apply(testContext(), []models.RemoteCategory{remote})

			require.NoError(t, err)
			if tt.wantSaved {
				assert.Equal(t, 1, stats.Saved)
			} else {
				assert.Equal(t, 1, stats.Skipped)
			}
			assert.Equal(t, tt.remoteAt, stats.Watermark)
		})
	}
}

func TestPullReconciler_NewRecordIsSaved(t *testing.T) {
	p, m := newTestPullReconciler(t)
	remote := remoteCategory("c-2", false, fixedNow)
	decoded := localCategory(0, "c-2", fixedNow)

	gomock.InOrder(
		m.repo.EXPECT().FindByServerID(gomock.Any(), "c-2").Return(nil, store.ErrRecordNotFound),
		m.decoder.EXPECT().Decode(gomock.Any(), remote).Return(decoded, nil),
		m.repo.EXPECT().SaveFromRemote(gomock.Any(), decoded, fixedNow).Return(nil),
	)

	stats, err := p.Apply(testContext(), []models.RemoteCategory{remote})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Saved)
}

// ── remote tombstones ────────────────────────────────────────────────────────

func TestPullReconciler_RemoteDeletePurgesLocal(t *testing.T) {
	p, m := newTestPullReconciler(t)
	remote := remoteCategory("c-3", true, fixedNow)

	m.repo.EXPECT().FindByServerID(gomock.Any(), "c-3").Return(localCategory(9, "c-3", fixedNow.Add(time.Hour)), nil)
	m.repo.EXPECT().PurgePermanently(gomock.Any(), int64(9)).Return(nil)

	stats, err := p.Apply(testContext(), []models.RemoteCategory{remote})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Purged)
}

func TestPullReconciler_RemoteDeleteWithoutLocalIsNoop(t *testing.T) {
	p, m := newTestPullReconciler(t)
	remote := remoteCategory("c-9", true, time.Unix(500, 0).UTC())

	// no decode, save or purge expected
	m.repo.EXPECT().FindByServerID(gomock.Any(), "c-9").Return(nil, store.ErrRecordNotFound)

	stats, err := p.Apply(testContext(), []models.RemoteCategory{remote})

	require.NoError(t, err)
	assert.Equal(t, models.PullStats{Skipped: 1, Watermark: time.Unix(500, 0).UTC()}, stats)
}

func TestPullReconciler_NewerRemoteCancelsPendingDelete(t *testing.T) {
	p, m := newTestPullReconciler(t)
	t1 := fixedNow.Add(-time.Hour)
	local := localCategory(4, "c-4", t1)
	local.IsDeleted = true
	local.IsSynced = false
	local.SyncAction = models.SyncActionDelete

	remote := remoteCategory("c-4", false, t1.Add(time.Minute))
	decoded := localCategory(0, "c-4", remote.UpdatedAt)

	m.repo.EXPECT().FindByServerID(gomock.Any(), "c-4").Return(local, nil)
	m.decoder.EXPECT().Decode(gomock.Any(), remote).Return(decoded, nil)
	m.repo.EXPECT().SaveFromRemote(gomock.Any(), decoded, fixedNow).Return(nil)

	stats, err := p.Apply(testContext(), []models.RemoteCategory{remote})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Saved)
}

// ── Pull ─────────────────────────────────────────────────────────────────────

func TestPullReconciler_PullTracksMaxUpdatedAt(t *testing.T) {
	p, m := newTestPullReconciler(t)
	since := fixedNow.Add(-24 * time.Hour)
	older := remoteCategory("c-1", true, since.Add(time.Hour))
	newest := remoteCategory("c-2", true, since.Add(3*time.Hour))
	middle := remoteCategory("c-3", true, since.Add(2*time.Hour))

	m.source.EXPECT().ListChangedSince(gomock.Any(), since).Return([]models.RemoteCategory{older, newest, middle}, nil)
	m.repo.EXPECT().FindByServerID(gomock.Any(), gomock.Any()).Return(nil, store.ErrRecordNotFound).Times(3)

	stats, err := p.Pull(testContext(), since)

	require.NoError(t, err)
	assert.Equal(t, newest.UpdatedAt, stats.Watermark)
	assert.Equal(t, 3, stats.Skipped)
}

func TestPullReconciler_PullNothingChangedKeepsWatermark(t *testing.T) {
	p, m := newTestPullReconciler(t)
	since := fixedNow.Add(-time.Hour)

	m.source.EXPECT().ListChangedSince(gomock.Any(), since).Return(nil, nil)

	stats, err := p.Pull(testContext(), since)

	require.NoError(t, err)
	assert.Equal(t, since, stats.Watermark)
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestPullReconciler_Failures(t *testing.T) {
	storageErr := errors.New("disk I/O error")

	t.Run("list fails", func(t *testing.T) {
		p, m := newTestPullReconciler(t)
		m.source.EXPECT().ListChangedSince(gomock.Any(), gomock.Any()).Return(nil, storageErr)

		_, err := p.Pull(testContext(), time.Time{})
		assert.ErrorIs(t, err, ErrPullFailed)
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("missing server id", func(t *testing.T) {
		p, _ := newTestPullReconciler(t)

		_, err := p.Apply(testContext(), []models.RemoteCategory{remoteCategory("", false, fixedNow)})
		assert.ErrorIs(t, err, ErrInvalidRemoteRecord)
	})

	t.Run("lookup fails", func(t *testing.T) {
		p, m := newTestPullReconciler(t)
		m.repo.EXPECT().FindByServerID(gomock.Any(), "c-1").Return(nil, storageErr)

		_, err := p.Apply(testContext(), []models.RemoteCategory{remoteCategory("c-1", false, fixedNow)})
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("decode fails", func(t *testing.T) {
		p, m := newTestPullReconciler(t)
		first := remoteCategory("c-1", false, fixedNow)
		second := remoteCategory("c-2", false, fixedNow)
		decodeErr := errors.New("unknown category kind")

		m.repo.EXPECT().FindByServerID(gomock.Any(), "c-1").Return(nil, store.ErrRecordNotFound)
		m.decoder.EXPECT().Decode(gomock.Any(), first).Return(nil, decodeErr)

		_, err := p.Apply(testContext(), []models.RemoteCategory{first, second})
		assert.ErrorIs(t, err, decodeErr)
	})
}

// ── missing parents ──────────────────────────────────────────────────────────

func TestPullReconciler_MissingParentDefersRecord(t *testing.T) {
	p, m := newTestPullReconciler(t)
	since := fixedNow.Add(-24 * time.Hour)
	orphan := remoteCategory("c-1", false, since.Add(time.Hour))
	later := remoteCategory("c-2", false, since.Add(2*time.Hour))
	decoded := localCategory(0, "c-2", later.UpdatedAt)

	m.source.EXPECT().ListChangedSince(gomock.Any(), since).Return([]models.RemoteCategory{orphan, later}, nil)
	m.repo.EXPECT().FindByServerID(gomock.Any(), "c-1").Return(nil, store.ErrRecordNotFound)
	m.decoder.EXPECT().Decode(gomock.Any(), orphan).Return(nil, fmt.Errorf("%w: book server_id=\"b-9\"", ErrParentNotFound))
	m.repo.EXPECT().FindByServerID(gomock.Any(), "c-2").Return(nil, store.ErrRecordNotFound)
	m.decoder.EXPECT().Decode(gomock.Any(), later).Return(decoded, nil)
	m.repo.EXPECT().SaveFromRemote(gomock.Any(), decoded, fixedNow).Return(nil)

	stats, err := p.Pull(testContext(), since)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Saved)
	assert.Equal(t, 1, stats.Deferred)
	// the next pass lists the orphan again
	assert.Equal(t, orphan.UpdatedAt, stats.Watermark)
}

// retiringDecoder adds dependent retirement to the generated decoder mock.
type retiringDecoder struct {
	*mock.MockRecordDecoder[*models.Category, models.RemoteCategory]
	retired []int64
	err     error
}

func (d *retiringDecoder) RetireDependents(_ context.Context, localID int64, at time.Time) error {
	d.retired = append(d.retired, localID)
	return d.err
}

func TestPullReconciler_RemoteDeleteRetiresDependentsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEntitySyncRepository[*models.Category](ctrl)
	decoder := &retiringDecoder{MockRecordDecoder: mock.NewMockRecordDecoder[*models.Category, models.RemoteCategory](ctrl)}
	p := NewPullReconciler[*models.Category, models.RemoteCategory](models.EntityCategory, repo, mock.NewMockRemoteSource[models.RemoteCategory](ctrl), decoder)
	p.now = fixedClock

	repo.EXPECT().FindByServerID(gomock.Any(), "c-3").Return(localCategory(9, "c-3", fixedNow), nil)
	repo.EXPECT().PurgePermanently(gomock.Any(), int64(9)).DoAndReturn(func(context.Context, int64) error {
		assert.Equal(t, []int64{9}, decoder.retired)
		return nil
	})

	stats, err := p.Apply(testContext(), []models.RemoteCategory{remoteCategory("c-3", true, fixedNow)})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Purged)
}

func TestPullReconciler_RetireDependentsErrorKeepsParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEntitySyncRepository[*models.Category](ctrl)
	storageErr := errors.New("database is locked")
	decoder := &retiringDecoder{
		MockRecordDecoder: mock.NewMockRecordDecoder[*models.Category, models.RemoteCategory](ctrl),
		err:               storageErr,
	}
	p := NewPullReconciler[*models.Category, models.RemoteCategory](models.EntityCategory, repo, mock.NewMockRemoteSource[models.RemoteCategory](ctrl), decoder)

	// no PurgePermanently expected
	repo.EXPECT().FindByServerID(gomock.Any(), "c-3").Return(localCategory(9, "c-3", fixedNow), nil)

	_, err := p.Apply(testContext(), []models.RemoteCategory{remoteCategory("c-3", true, fixedNow)})

	assert.ErrorIs(t, err, ErrPullFailed)
	assert.ErrorIs(t, err, storageErr)
}
