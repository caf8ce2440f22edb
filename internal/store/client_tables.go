package store

import (
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Parent key columns of the child tables.
const (
	ColumnBookID     = "book_id"
	ColumnWalletID   = "wallet_id"
	ColumnCategoryID = "category_id"
)

// table describes how one entity type is laid out in its SQLite table.
// columns, values and fields list the domain columns in the same order.
type table[T models.Syncable] struct {
	name      string
	columns   []string
	newRecord func() T
	values    func(T) []any
	fields    func(T) []any
}

var booksTable = table[*models.Book]{
	name:      "books",
	columns:   []string{"name", "currency"},
	newRecord: func() *models.Book { return &models.Book{} },
	values: func(b *models.Book) []any {
		return []any{b.Name, b.Currency}
	},
	fields: func(b *models.Book) []any {
		return []any{&b.Name, &b.Currency}
	},
}

var walletsTable = table[*models.Wallet]{
	name:      "wallets",
	columns:   []string{ColumnBookID, "name", "balance"},
	newRecord: func() *models.Wallet { return &models.Wallet{} },
	values: func(w *models.Wallet) []any {
		return []any{w.BookID, w.Name, w.Balance}
	},
	fields: func(w *models.Wallet) []any {
		return []any{&w.BookID, &w.Name, &w.Balance}
	},
}

var categoriesTable = table[*models.Category]{
	name:      "categories",
	columns:   []string{ColumnBookID, "name", "kind"},
	newRecord: func() *models.Category { return &models.Category{} },
	values: func(c *models.Category) []any {
		return []any{c.BookID, c.Name, string(c.Kind)}
	},
	fields: func(c *models.Category) []any {
		return []any{&c.BookID, &c.Name, &c.Kind}
	},
}

var transactionsTable = table[*models.Transaction]{
	name:      "transactions",
	columns:   []string{ColumnWalletID, ColumnCategoryID, "amount", "note", "occurred_at"},
	newRecord: func() *models.Transaction { return &models.Transaction{} },
	values: func(t *models.Transaction) []any {
		return []any{t.WalletID, t.CategoryID, t.Amount, t.Note, t.OccurredAt.UTC()}
	},
	fields: func(t *models.Transaction) []any {
		return []any{&t.WalletID, &t.CategoryID, &t.Amount, &t.Note, &t.OccurredAt}
	},
}
