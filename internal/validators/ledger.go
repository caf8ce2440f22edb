// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/shopspring/decimal"
)

// Field names accepted by [LedgerValidator.Validate].
const (
	FieldID         = "id"
	FieldName       = "name"
	FieldCurrency   = "currency"
	FieldKind       = "kind"
	FieldBookID     = "book_id"
	FieldWalletID   = "wallet_id"
	FieldCategoryID = "category_id"
	FieldAmount     = "amount"
	FieldOccurredAt = "occurred_at"
)

var allowedCategoryKinds = []models.CategoryKind{
	models.CategoryIncome,
	models.CategoryExpense,
}

// LedgerValidator validates local entities and their wire payloads.
// Local parent keys must be positive local ids; wire ids and parent keys
// must be UUIDs.
type LedgerValidator struct {
}

func NewLedgerValidator() Validator {
	return &LedgerValidator{}
}

// Validate implements [Validator]. The server id of a local entity and the
// id of a payload are checked only when [FieldID] is requested explicitly,
// because new records do not carry one yet.
func (v *LedgerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.Book:
		return v.validateBook(value.Name, value.Currency, fields...)
	case *models.Wallet:
		return v.validateWallet(value.BookID > 0, value.Name, fields...)
	case *models.Category:
		return v.validateCategory(value.BookID > 0, value.Name, value.Kind, fields...)
	case *models.Transaction:
		return v.validateTransaction(value.WalletID > 0, value.CategoryID > 0, value.Amount, value.OccurredAt, fields...)

	case models.RemoteBook:
		return v.withRemoteID(value.ID, fields, func(fields []string) error {
			return v.validateBook(value.Name, value.Currency, fields...)
		})
	case models.RemoteWallet:
		return v.withRemoteID(value.ID, fields, func(fields []string) error {
			return v.validateWallet(utils.IsValidUUID(value.BookID), value.Name, fields...)
		})
	case models.RemoteCategory:
		return v.withRemoteID(value.ID, fields, func(fields []string) error {
			return v.validateCategory(utils.IsValidUUID(value.BookID), value.Name, value.Kind, fields...)
		})
	case models.RemoteTransaction:
		return v.withRemoteID(value.ID, fields, func(fields []string) error {
			return v.validateTransaction(utils.IsValidUUID(value.WalletID), utils.IsValidUUID(value.CategoryID),
				value.Amount, value.OccurredAt, fields...)
		})

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// withRemoteID checks FieldID when requested and passes the remaining fields
// on to validate.
func (v *LedgerValidator) withRemoteID(id string, fields []string, validate func([]string) error) error {
	rest := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != FieldID {
			rest = append(rest, f)
			continue
		}
		if !utils.IsValidUUID(id) {
			return ErrInvalidID
		}
	}
	if len(fields) > 0 && len(rest) == 0 {
		return nil
	}
	return validate(rest)
}

func (v *LedgerValidator) validateBook(name, currency string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCurrency}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyName
			}
		case FieldCurrency:
			if !isCurrencyCode(currency) {
				return ErrInvalidCurrency
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func (v *LedgerValidator) validateWallet(hasBook bool, name string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBookID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldBookID:
			if !hasBook {
				return ErrInvalidBookID
			}
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func (v *LedgerValidator) validateCategory(hasBook bool, name string, kind models.CategoryKind, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBookID, FieldName, FieldKind}
	}

	for _, f := range fields {
		switch f {
		case FieldBookID:
			if !hasBook {
				return ErrInvalidBookID
			}
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyName
			}
		case FieldKind:
			if !isValidCategoryKind(kind) {
				return ErrInvalidKind
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func (v *LedgerValidator) validateTransaction(hasWallet, hasCategory bool, amount decimal.Decimal, occurredAt time.Time, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWalletID, FieldCategoryID, FieldAmount, FieldOccurredAt}
	}

	for _, f := range fields {
		switch f {
		case FieldWalletID:
			if !hasWallet {
				return ErrInvalidWalletID
			}
		case FieldCategoryID:
			if !hasCategory {
				return ErrInvalidCategoryID
			}
		case FieldAmount:
			if amount.IsZero() {
				return ErrZeroAmount
			}
		case FieldOccurredAt:
			if occurredAt.IsZero() {
				return ErrEmptyOccurredAt
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func isValidCategoryKind(kind models.CategoryKind) bool {
	for _, k := range allowedCategoryKinds {
		if kind == k {
			return true
		}
	}
	return false
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
