package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrInvalidCurrency   = errors.New("currency must be a three-letter upper-case code")
	ErrInvalidKind       = errors.New("category kind must be income or expense")
	ErrZeroAmount        = errors.New("amount must not be zero")
	ErrEmptyOccurredAt   = errors.New("occurred_at is required")
	ErrInvalidID         = errors.New("invalid record id")
	ErrInvalidBookID     = errors.New("invalid book id")
	ErrInvalidWalletID   = errors.New("invalid wallet id")
	ErrInvalidCategoryID = errors.New("invalid category id")
)
