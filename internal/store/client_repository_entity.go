package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// entityRepository is the SQLite implementation of [EntityRepository]. A
// single generic type serves all four entity tables; the table descriptor
// supplies the domain columns.
type entityRepository[T models.Syncable] struct {
	*DB
	table table[T]
}

func newEntityRepository[T models.Syncable](db *DB, t table[T]) *entityRepository[T] {
	return &entityRepository[T]{
		DB:    db,
		table: t,
	}
}

// NewBookRepository returns the repository of the books table.
func NewBookRepository(db *DB) EntityRepository[*models.Book] {
	return newEntityRepository(db, booksTable)
}

// NewWalletRepository returns the repository of the wallets table.
func NewWalletRepository(db *DB) EntityRepository[*models.Wallet] {
	return newEntityRepository(db, walletsTable)
}

// NewCategoryRepository returns the repository of the categories table.
func NewCategoryRepository(db *DB) EntityRepository[*models.Category] {
	return newEntityRepository(db, categoriesTable)
}

// NewTransactionRepository returns the repository of the transactions table.
func NewTransactionRepository(db *DB) EntityRepository[*models.Transaction] {
	return newEntityRepository(db, transactionsTable)
}

func (r *entityRepository[T]) ListUnsynced(ctx context.Context) ([]T, error) {
	query, args, err := buildListUnsyncedQuery(r.table)
	if err != nil {
		return nil, r.buildError(ctx, "entityRepository.ListUnsynced", err)
	}

	return r.list(ctx, "entityRepository.ListUnsynced", query, args)
}

func (r *entityRepository[T]) ListActive(ctx context.Context) ([]T, error) {
	query, args, err := buildListActiveQuery(r.table)
	if err != nil {
		return nil, r.buildError(ctx, "entityRepository.ListActive", err)
	}

	return r.list(ctx, "entityRepository.ListActive", query, args)
}

// ListByParent returns every row, tombstones included, whose parent key
// column equals parentID.
func (r *entityRepository[T]) ListByParent(ctx context.Context, column string, parentID int64) ([]T, error) {
	if err := r.checkColumn(column); err != nil {
		return nil, r.buildError(ctx, "entityRepository.ListByParent", err)
	}

	query, args, err := buildListByParentQuery(r.table, column, parentID)
	if err != nil {
		return nil, r.buildError(ctx, "entityRepository.ListByParent", err)
	}

	return r.list(ctx, "entityRepository.ListByParent", query, args)
}

func (r *entityRepository[T]) FindByServerID(ctx context.Context, serverID string) (T, error) {
	query, args, err := buildFindByServerIDQuery(r.table, serverID)
	if err != nil {
		var zero T
		return zero, r.buildError(ctx, "entityRepository.FindByServerID", err)
	}

	return r.get(ctx, "entityRepository.FindByServerID", query, args)
}

func (r *entityRepository[T]) FindByLocalID(ctx context.Context, localID int64) (T, error) {
	query, args, err := buildFindByLocalIDQuery(r.table, localID)
	if err != nil {
		var zero T
		return zero, r.buildError(ctx, "entityRepository.FindByLocalID", err)
	}

	return r.get(ctx, "entityRepository.FindByLocalID", query, args)
}

func (r *entityRepository[T]) Insert(ctx context.Context, record T) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuery(r.table, record)
	if err != nil {
		return 0, r.buildError(ctx, "entityRepository.Insert", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Insert").
			Str("table", r.table.name).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to insert record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	localID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Insert").
			Str("table", r.table.name).
			Msg("failed to read inserted id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return localID, nil
}

func (r *entityRepository[T]) Update(ctx context.Context, record T) error {
	query, args, err := buildUpdateQuery(r.table, record)
	if err != nil {
		return r.buildError(ctx, "entityRepository.Update", err)
	}

	return r.execOne(ctx, "entityRepository.Update", record.Meta().LocalID, query, args)
}

func (r *entityRepository[T]) MarkDeleted(ctx context.Context, localID int64, updatedAt time.Time) error {
	query, args, err := buildMarkDeletedQuery(r.table, localID, updatedAt)
	if err != nil {
		return r.buildError(ctx, "entityRepository.MarkDeleted", err)
	}

	return r.execOne(ctx, "entityRepository.MarkDeleted", localID, query, args)
}

// RecordSyncSuccess acknowledges a push. When the row was edited after the
// pushed snapshot was read, only the server id is stored and the row keeps
// its pending state.
func (r *entityRepository[T]) RecordSyncSuccess(ctx context.Context, localID int64, serverID string, pushedAt, syncedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordSyncSuccessQuery(r.table, localID, serverID, pushedAt, syncedAt)
	if err != nil {
		return r.buildError(ctx, "entityRepository.RecordSyncSuccess", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.RecordSyncSuccess").
			Str("table", r.table.name).
			Int64("local_id", localID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	log.Debug().
		Str("func", "entityRepository.RecordSyncSuccess").
		Str("table", r.table.name).
		Int64("local_id", localID).
		Msg("record changed during push, keeping it pending")

	query, args, err = buildRecordServerIDQuery(r.table, localID, serverID)
	if err != nil {
		return r.buildError(ctx, "entityRepository.RecordSyncSuccess", err)
	}

	return r.execOne(ctx, "entityRepository.RecordSyncSuccess", localID, query, args)
}

// MarkChildrenPending flags the synced live rows whose parent column equals
// parentID as pending UPDATE and returns how many rows changed.
func (r *entityRepository[T]) MarkChildrenPending(ctx context.Context, column string, parentID int64) (int64, error) {
	log := logger.FromContext(ctx)

	if err := r.checkColumn(column); err != nil {
		return 0, r.buildError(ctx, "entityRepository.MarkChildrenPending", err)
	}

	query, args, err := buildMarkPendingUpdateQuery(r.table, column, parentID)
	if err != nil {
		return 0, r.buildError(ctx, "entityRepository.MarkChildrenPending", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.MarkChildrenPending").
			Str("table", r.table.name).
			Int64("parent_id", parentID).
			Msg("failed to mark children pending")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	marked, _ := result.RowsAffected()
	return marked, nil
}

// PurgePermanently removes the row. Purging a row that is already gone is
// not an error.
func (r *entityRepository[T]) PurgePermanently(ctx context.Context, localID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeQuery(r.table, localID)
	if err != nil {
		return r.buildError(ctx, "entityRepository.PurgePermanently", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "entityRepository.PurgePermanently").
			Str("table", r.table.name).
			Int64("local_id", localID).
			Msg("failed to purge record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *entityRepository[T]) PurgeAcknowledgedTombstones(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeAcknowledgedTombstonesQuery(r.table)
	if err != nil {
		return 0, r.buildError(ctx, "entityRepository.PurgeAcknowledgedTombstones", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.PurgeAcknowledgedTombstones").
			Str("table", r.table.name).
			Msg("failed to purge acknowledged tombstones")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, _ := result.RowsAffected()
	return purged, nil
}

func (r *entityRepository[T]) SaveFromRemote(ctx context.Context, record T, syncedAt time.Time) error {
	log := logger.FromContext(ctx)

	if !record.Meta().HasServerID() {
		return ErrMissingServerID
	}

	query, args, err := buildSaveFromRemoteQuery(r.table, record, syncedAt)
	if err != nil {
		return r.buildError(ctx, "entityRepository.SaveFromRemote", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "entityRepository.SaveFromRemote").
			Str("table", r.table.name).
			Str("server_id", record.Meta().ServerID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to upsert remote record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// checkColumn rejects parent key columns the table does not have. Column
// names end up in the statement text, so they must come from the table.
func (r *entityRepository[T]) checkColumn(column string) error {
	if !slices.Contains(r.table.columns, column) || !strings.HasSuffix(column, "_id") {
		return fmt.Errorf("%w: %s has no parent column %q", ErrBuildingSQLQuery, r.table.name, column)
	}
	return nil
}

// execOne executes a statement that must touch exactly the row with localID.
func (r *entityRepository[T]) execOne(ctx context.Context, funcName string, localID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("table", r.table.name).
			Int64("local_id", localID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s local_id=%d", ErrRecordNotFound, r.table.name, localID)
	}

	return nil
}

func (r *entityRepository[T]) list(ctx context.Context, funcName, query string, args []any) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("table", r.table.name).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]T, 0, 16)
	for rows.Next() {
		record, scanErr := r.scan(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Str("table", r.table.name).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("table", r.table.name).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *entityRepository[T]) get(ctx context.Context, funcName, query string, args []any) (T, error) {
	log := logger.FromContext(ctx)

	record, err := r.scan(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("table", r.table.name).
			Msg("failed to scan row")
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *entityRepository[T]) scan(row rowScanner) (T, error) {
	record := r.table.newRecord()
	m := record.Meta()

	var (
		serverID   sql.NullString
		syncAction sql.NullString
		lastSyncAt sql.NullTime
	)

	dest := append([]any{
		&m.LocalID,
		&serverID,
		&m.IsSynced,
		&m.IsDeleted,
		&syncAction,
		&lastSyncAt,
		&m.UpdatedAt,
	}, r.table.fields(record)...)

	if err := row.Scan(dest...); err != nil {
		var zero T
		return zero, err
	}

	m.ServerID = serverID.String
	m.SyncAction = models.SyncAction(syncAction.String)
	if lastSyncAt.Valid {
		syncedAt := lastSyncAt.Time
		m.LastSyncAt = &syncedAt
	}

	return record, nil
}

func (r *entityRepository[T]) buildError(ctx context.Context, funcName string, err error) error {
	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Str("table", r.table.name).
		Msg("failed to build query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
