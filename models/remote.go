package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemoteMeta is the sync metadata the server attaches to every record it
// returns. ID is the server id.
type RemoteMeta struct {
	ID        string    `json:"id"`
	IsDeleted bool      `json:"isDeleted"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetRemoteMeta returns the receiver; it is promoted to the payload types.
func (m RemoteMeta) GetRemoteMeta() RemoteMeta {
	return m
}

// RemoteRecord is implemented by every wire payload.
type RemoteRecord interface {
	GetRemoteMeta() RemoteMeta
}

// RemoteBook is the wire shape of a [Book].
type RemoteBook struct {
	RemoteMeta

	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// RemoteWallet is the wire shape of a [Wallet]. BookID is a server id.
type RemoteWallet struct {
	RemoteMeta

	BookID  string          `json:"bookId"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// RemoteCategory is the wire shape of a [Category]. BookID is a server id.
type RemoteCategory struct {
	RemoteMeta

	BookID string       `json:"bookId"`
	Name   string       `json:"name"`
	Kind   CategoryKind `json:"kind"`
}

// RemoteTransaction is the wire shape of a [Transaction]. WalletID and
// CategoryID are server ids.
type RemoteTransaction struct {
	RemoteMeta

	WalletID   string          `json:"walletId"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// CreatedResponse is returned by the server after a successful POST.
type CreatedResponse struct {
	ID string `json:"id"`
}
