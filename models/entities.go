package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryKind tells whether a category groups income or expense records.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// Book is the root entity: an independent ledger with its own currency.
type Book struct {
	SyncMeta

	Name     string
	Currency string
}

// Wallet is a money holder (cash, card, account) that belongs to a Book.
type Wallet struct {
	SyncMeta

	// BookID is the local id of the parent book.
	BookID  int64
	Name    string
	Balance decimal.Decimal
}

// Category classifies transactions inside a Book.
type Category struct {
	SyncMeta

	// BookID is the local id of the parent book.
	BookID int64
	Name   string
	Kind   CategoryKind
}

// Transaction is a single income or expense movement.
type Transaction struct {
	SyncMeta

	// WalletID is the local id of the wallet the money moved through.
	WalletID int64
	// CategoryID is the local id of the category.
	CategoryID int64
	Amount     decimal.Decimal
	Note       string
	OccurredAt time.Time
}
