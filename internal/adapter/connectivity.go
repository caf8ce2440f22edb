package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

const defaultPingTimeout = 3 * time.Second

type pingConnectivityChecker struct {
	adapter ServerAdapter
	timeout time.Duration
}

// NewConnectivityChecker returns a [ConnectivityChecker] that pings the
// server with the given timeout. A non-positive timeout falls back to three
// seconds.
func NewConnectivityChecker(adapter ServerAdapter, timeout time.Duration) ConnectivityChecker {
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	return &pingConnectivityChecker{adapter: adapter, timeout: timeout}
}

func (c *pingConnectivityChecker) IsAvailable(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.adapter.Ping(pingCtx); err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "*pingConnectivityChecker.IsAvailable").
			Msg("server is not reachable")
		return false
	}
	return true
}
