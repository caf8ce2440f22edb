package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// retireFunc deletes the local children of the parent with the given local
// id. at is the deletion time recorded on new tombstones.
type retireFunc func(ctx context.Context, parentID int64, at time.Time) error

// relinkFunc queues the synced children of a parent for another push.
type relinkFunc func(ctx context.Context, parentID int64) error

// childRepository is the part of a child entity repository the cascades
// need.
type childRepository[T models.Syncable] interface {
	ListByParent(ctx context.Context, column string, parentID int64) ([]T, error)
	PurgePermanently(ctx context.Context, localID int64) error
	MarkDeleted(ctx context.Context, localID int64, updatedAt time.Time) error
	MarkChildrenPending(ctx context.Context, column string, parentID int64) (int64, error)
}

// retireChildren deletes the live rows of repo whose column points at the
// parent, the same way a local delete does: rows the server never saw are
// purged and the rest become tombstones pending DELETE. next retires the
// children of each row first.
func retireChildren[T models.Syncable](entity models.EntityType, repo childRepository[T], column string, next retireFunc) retireFunc {
	return func(ctx context.Context, parentID int64, at time.Time) error {
		children, err := repo.ListByParent(ctx, column, parentID)
		if err != nil {
			return fmt.Errorf("list %s of parent %d: %w", entity, parentID, err)
		}

		retired := 0
		for _, child := range children {
			m := child.Meta()
			if m.IsDeleted {
				continue
			}
			if next != nil {
				if err = next(ctx, m.LocalID, at); err != nil {
					return err
				}
			}

			if m.HasServerID() {
				err = repo.MarkDeleted(ctx, m.LocalID, laterThan(at, m.UpdatedAt))
			} else {
				err = repo.PurgePermanently(ctx, m.LocalID)
			}
			if err != nil {
				return fmt.Errorf("retire %s local_id=%d: %w", entity, m.LocalID, err)
			}
			retired++
		}

		if retired > 0 {
			logger.FromContext(ctx).Debug().
				Str("func", "retireChildren").
				Str("entity", string(entity)).
				Str("column", column).
				Int64("parent_id", parentID).
				Int("retired", retired).
				Msg("children of deleted parent retired")
		}
		return nil
	}
}

// relinkChildren marks the synced live rows of repo whose column points at
// the parent as pending UPDATE.
func relinkChildren[T models.Syncable](entity models.EntityType, repo childRepository[T], column string) relinkFunc {
	return func(ctx context.Context, parentID int64) error {
		marked, err := repo.MarkChildrenPending(ctx, column, parentID)
		if err != nil {
			return fmt.Errorf("relink %s of parent %d: %w", entity, parentID, err)
		}
		if marked > 0 {
			logger.FromContext(ctx).Info().
				Str("func", "relinkChildren").
				Str("entity", string(entity)).
				Int64("parent_id", parentID).
				Int64("marked", marked).
				Msg("children queued to push the new parent id")
		}
		return nil
	}
}

func chainRetire(fns ...retireFunc) retireFunc {
	return func(ctx context.Context, parentID int64, at time.Time) error {
		for _, fn := range fns {
			if err := fn(ctx, parentID, at); err != nil {
				return err
			}
		}
		return nil
	}
}

func chainRelink(fns ...relinkFunc) relinkFunc {
	return func(ctx context.Context, parentID int64) error {
		for _, fn := range fns {
			if err := fn(ctx, parentID); err != nil {
				return err
			}
		}
		return nil
	}
}

// ledgerDependents is the parent to children graph of the ledger: books own
// wallets and categories, which both own transactions.
type ledgerDependents struct {
	retireBook     retireFunc
	retireWallet   retireFunc
	retireCategory retireFunc

	relinkBook     relinkFunc
	relinkWallet   relinkFunc
	relinkCategory relinkFunc
}

func newLedgerDependents(storages *store.ClientStorages) ledgerDependents {
	byWallet := retireChildren[*models.Transaction](models.EntityTransaction, storages.Transactions, store.ColumnWalletID, nil)
	byCategory := retireChildren[*models.Transaction](models.EntityTransaction, storages.Transactions, store.ColumnCategoryID, nil)

	return ledgerDependents{
		retireBook: chainRetire(
			retireChildren[*models.Wallet](models.EntityWallet, storages.Wallets, store.ColumnBookID, byWallet),
			retireChildren[*models.Category](models.EntityCategory, storages.Categories, store.ColumnBookID, byCategory),
		),
		retireWallet:   byWallet,
		retireCategory: byCategory,

		relinkBook: chainRelink(
			relinkChildren[*models.Wallet](models.EntityWallet, storages.Wallets, store.ColumnBookID),
			relinkChildren[*models.Category](models.EntityCategory, storages.Categories, store.ColumnBookID),
		),
		relinkWallet:   relinkChildren[*models.Transaction](models.EntityTransaction, storages.Transactions, store.ColumnWalletID),
		relinkCategory: relinkChildren[*models.Transaction](models.EntityTransaction, storages.Transactions, store.ColumnCategoryID),
	}
}

// laterThan returns now, or a moment after prev when the clock has not moved
// past it. Local changes always advance updated_at; RecordSyncSuccess
// compares against it.
func laterThan(now, prev time.Time) time.Time {
	now = now.UTC()
	if !now.After(prev) {
		return prev.UTC().Add(time.Microsecond)
	}
	return now
}
