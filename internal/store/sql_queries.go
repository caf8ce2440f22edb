package store

import (
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

var postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateResourceQuery[P models.RemoteRecord](t resourceTable[P], userID int64, record P) (string, []any, error) {
	return postgresBuilder.
		Insert(t.name).
		Columns(slices.Concat([]string{"id", "user_id"}, t.columns, []string{"is_deleted", "updated_at"})...).
		Values(slices.Concat([]any{record.GetRemoteMeta().ID, userID}, t.values(record), []any{false, sq.Expr("NOW()")})...).
		Suffix("RETURNING updated_at").
		ToSql()
}

// buildUpdateResourceQuery does not filter out tombstones: an edit of a
// deleted record bumps updated_at, so the deletion is pulled again by the
// editing client.
func buildUpdateResourceQuery[P models.RemoteRecord](t resourceTable[P], userID int64, record P) (string, []any, error) {
	update := postgresBuilder.
		Update(t.name).
		Set("updated_at", sq.Expr("NOW()"))
	for i, value := range t.values(record) {
		update = update.Set(t.columns[i], value)
	}

	return update.
		Where(sq.Eq{"id": record.GetRemoteMeta().ID, "user_id": userID}).
		Suffix("RETURNING is_deleted, updated_at").
		ToSql()
}

func buildDeleteResourceQuery[P models.RemoteRecord](t resourceTable[P], userID int64, id string) (string, []any, error) {
	return postgresBuilder.
		Update(t.name).
		Set("is_deleted", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildListChangedSinceQuery selects with >= so a record sharing the
// watermark timestamp is never skipped; the pull side drops the repeat.
func buildListChangedSinceQuery[P models.RemoteRecord](t resourceTable[P], userID int64, since time.Time) (string, []any, error) {
	query := postgresBuilder.
		Select(slices.Concat([]string{"id", "is_deleted", "updated_at"}, t.columns)...).
		From(t.name).
		Where(sq.Eq{"user_id": userID})

	if !since.IsZero() {
		query = query.Where(sq.GtOrEq{"updated_at": since.UTC()})
	}

	return query.OrderBy("updated_at", "id").ToSql()
}
