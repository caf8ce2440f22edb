// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// metaColumns are the sync metadata columns shared by every entity table,
// in scan order.
var metaColumns = []string{
	"local_id",
	"server_id",
	"is_synced",
	"is_deleted",
	"sync_action",
	"last_sync_at",
	"updated_at",
}

func selectEntities[T models.Syncable](t table[T]) sq.SelectBuilder {
	return sqliteBuilder.
		Select(slices.Concat(metaColumns, t.columns)...).
		From(t.name)
}

func buildListUnsyncedQuery[T models.Syncable](t table[T]) (string, []any, error) {
	return selectEntities(t).
		Where(sq.Eq{"is_synced": false}).
		OrderBy("local_id").
		ToSql()
}

func buildListActiveQuery[T models.Syncable](t table[T]) (string, []any, error) {
	return selectEntities(t).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("local_id").
		ToSql()
}

func buildListByParentQuery[T models.Syncable](t table[T], column string, parentID int64) (string, []any, error) {
	return selectEntities(t).
		Where(sq.Eq{column: parentID}).
		OrderBy("local_id").
		ToSql()
}

func buildFindByServerIDQuery[T models.Syncable](t table[T], serverID string) (string, []any, error) {
	return selectEntities(t).
		Where(sq.Eq{"server_id": serverID}).
		ToSql()
}

func buildFindByLocalIDQuery[T models.Syncable](t table[T], localID int64) (string, []any, error) {
	return selectEntities(t).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

func buildInsertQuery[T models.Syncable](t table[T], record T) (string, []any, error) {
	m := record.Meta()

	return sqliteBuilder.
		Insert(t.name).
		Columns(slices.Concat(metaColumns[1:], t.columns)...).
		Values(slices.Concat([]any{
			nullableString(m.ServerID),
			m.IsSynced,
			m.IsDeleted,
			nullableString(string(m.SyncAction)),
			nullableTime(m.LastSyncAt),
			m.UpdatedAt.UTC(),
		}, t.values(record))...).
		ToSql()
}

func buildUpdateQuery[T models.Syncable](t table[T], record T) (string, []any, error) {
	m := record.Meta()

	set := map[string]any{
		"is_synced":   m.IsSynced,
		"is_deleted":  m.IsDeleted,
		"sync_action": nullableString(string(m.SyncAction)),
		"updated_at":  m.UpdatedAt.UTC(),
	}
	for i, value := range t.values(record) {
		set[t.columns[i]] = value
	}

	return sqliteBuilder.
		Update(t.name).
		SetMap(set).
		Where(sq.Eq{"local_id": m.LocalID}).
		ToSql()
}

func buildMarkDeletedQuery[T models.Syncable](t table[T], localID int64, updatedAt time.Time) (string, []any, error) {
	return sqliteBuilder.
		Update(t.name).
		Set("is_deleted", true).
		Set("is_synced", false).
		Set("sync_action", string(models.SyncActionDelete)).
		Set("updated_at", updatedAt.UTC()).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

// buildRecordSyncSuccessQuery only matches while updated_at still equals the
// value that was pushed, so an edit made during the round trip survives.
func buildRecordSyncSuccessQuery[T models.Syncable](t table[T], localID int64, serverID string, pushedAt, syncedAt time.Time) (string, []any, error) {
	return sqliteBuilder.
		Update(t.name).
		Set("server_id", serverID).
		Set("is_synced", true).
		Set("sync_action", nil).
		Set("last_sync_at", syncedAt.UTC()).
		Where(sq.Eq{"local_id": localID, "updated_at": pushedAt.UTC()}).
		ToSql()
}

// buildRecordServerIDQuery stores the server id of a record that changed
// while its push was in flight. A pending CREATE becomes an UPDATE and the
// record stays unsynced.
func buildRecordServerIDQuery[T models.Syncable](t table[T], localID int64, serverID string) (string, []any, error) {
	return sqliteBuilder.
		Update(t.name).
		Set("server_id", serverID).
		Set("sync_action", sq.Expr(
			"CASE WHEN sync_action = ? THEN ? ELSE sync_action END",
			string(models.SyncActionCreate), string(models.SyncActionUpdate),
		)).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

// buildMarkPendingUpdateQuery flags synced live rows whose column points at
// parentID so their next push carries the parent's current server id.
func buildMarkPendingUpdateQuery[T models.Syncable](t table[T], column string, parentID int64) (string, []any, error) {
	return sqliteBuilder.
		Update(t.name).
		Set("is_synced", false).
		Set("sync_action", string(models.SyncActionUpdate)).
		Where(sq.Eq{column: parentID, "is_deleted": false, "sync_action": nil}).
		Where(sq.NotEq{"server_id": nil}).
		ToSql()
}

func buildPurgeQuery[T models.Syncable](t table[T], localID int64) (string, []any, error) {
	return sqliteBuilder.
		Delete(t.name).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

func buildPurgeAcknowledgedTombstonesQuery[T models.Syncable](t table[T]) (string, []any, error) {
	return sqliteBuilder.
		Delete(t.name).
		Where(sq.Eq{"is_deleted": true, "is_synced": true}).
		ToSql()
}

// buildSaveFromRemoteQuery upserts on server_id. The local id of an existing
// row is kept, so children referencing it stay attached.
func buildSaveFromRemoteQuery[T models.Syncable](t table[T], record T, syncedAt time.Time) (string, []any, error) {
	m := record.Meta()

	updates := make([]string, 0, len(metaColumns)+len(t.columns))
	for _, column := range slices.Concat(metaColumns[2:], t.columns) {
		updates = append(updates, column+" = excluded."+column)
	}

	return sqliteBuilder.
		Insert(t.name).
		Columns(slices.Concat(metaColumns[1:], t.columns)...).
		Values(slices.Concat([]any{
			m.ServerID,
			true,
			false,
			nil,
			syncedAt.UTC(),
			m.UpdatedAt.UTC(),
		}, t.values(record))...).
		Suffix("ON CONFLICT(server_id) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
}

func buildSelectWatermarksQuery() (string, []any, error) {
	return sqliteBuilder.
		Select("entity", "last_sync_at").
		From("sync_state").
		ToSql()
}

func buildUpsertWatermarkQuery(entity models.EntityType, lastSyncAt time.Time) (string, []any, error) {
	return sqliteBuilder.
		Insert("sync_state").
		Columns("entity", "last_sync_at").
		Values(string(entity), lastSyncAt.UTC()).
		Suffix("ON CONFLICT(entity) DO UPDATE SET last_sync_at = excluded.last_sync_at").
		ToSql()
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
