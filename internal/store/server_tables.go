package store

import (
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// resourceTable describes the server table of one resource family.
// columns, values and fields list the domain columns in the same order.
type resourceTable[P models.RemoteRecord] struct {
	name    string
	columns []string
	meta    func(*P) *models.RemoteMeta
	values  func(P) []any
	fields  func(*P) []any
}

var booksResource = resourceTable[models.RemoteBook]{
	name:    "books",
	columns: []string{"name", "currency"},
	meta:    func(b *models.RemoteBook) *models.RemoteMeta { return &b.RemoteMeta },
	values: func(b models.RemoteBook) []any {
		return []any{b.Name, b.Currency}
	},
	fields: func(b *models.RemoteBook) []any {
		return []any{&b.Name, &b.Currency}
	},
}

var walletsResource = resourceTable[models.RemoteWallet]{
	name:    "wallets",
	columns: []string{"book_id", "name", "balance"},
	meta:    func(w *models.RemoteWallet) *models.RemoteMeta { return &w.RemoteMeta },
	values: func(w models.RemoteWallet) []any {
		return []any{w.BookID, w.Name, w.Balance}
	},
	fields: func(w *models.RemoteWallet) []any {
		return []any{&w.BookID, &w.Name, &w.Balance}
	},
}

var categoriesResource = resourceTable[models.RemoteCategory]{
	name:    "categories",
	columns: []string{"book_id", "name", "kind"},
	meta:    func(c *models.RemoteCategory) *models.RemoteMeta { return &c.RemoteMeta },
	values: func(c models.RemoteCategory) []any {
		return []any{c.BookID, c.Name, string(c.Kind)}
	},
	fields: func(c *models.RemoteCategory) []any {
		return []any{&c.BookID, &c.Name, &c.Kind}
	},
}

var transactionsResource = resourceTable[models.RemoteTransaction]{
	name:    "transactions",
	columns: []string{"wallet_id", "category_id", "amount", "note", "occurred_at"},
	meta:    func(t *models.RemoteTransaction) *models.RemoteMeta { return &t.RemoteMeta },
	values: func(t models.RemoteTransaction) []any {
		return []any{t.WalletID, t.CategoryID, t.Amount, t.Note, t.OccurredAt.UTC()}
	},
	fields: func(t *models.RemoteTransaction) []any {
		return []any{&t.WalletID, &t.CategoryID, &t.Amount, &t.Note, &t.OccurredAt}
	},
}
