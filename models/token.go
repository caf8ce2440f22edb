package models

import (
	"fmt"
	"strconv"
	"time"
)

// Token is a verified bearer token. OwnerID scopes every resource query on
// the server: a ledger record is only visible to the owner that created it.
type Token struct {
	// Raw is the compact JWS form sent in the Authorization header.
	Raw string `json:"-"`

	OwnerID   int64     `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// OwnerIDFromSubject parses the "sub" claim, which carries the owner id in
// base 10.
func OwnerIDFromSubject(subject string) (int64, error) {
	ownerID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || ownerID <= 0 {
		return 0, fmt.Errorf("invalid owner id %q in token subject", subject)
	}
	return ownerID, nil
}

func (t Token) String() string {
	return t.Raw
}
