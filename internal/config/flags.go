package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-r remote server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-hash-key request integrity hash key
//	-token bearer token presented by the client
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval periodic sync interval
//	-on-demand-delay delay before an on-demand sync
//	-idle-after inactivity period after which the device is idle
//	-backoff-min first retry delay
//	-backoff-max retry delay cap
//	-max-retries retry budget of one scheduled run
//	-log-file client log file path
func ParseFlags() *StructuredConfig {
	var serverAddress, remoteAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var token string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var syncInterval, onDemandDelay, idleAfter time.Duration
	var backoffMin, backoffMax time.Duration
	var maxRetries uint64
	var logFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&remoteAddress, "r", "Remote server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashKey, "hash-key", "", "Security hash key")
	flag.StringVar(&token, "token", "", "Bearer token")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 15m)")
	flag.DurationVar(&onDemandDelay, "on-demand-delay", 0, "Delay before an on-demand sync")
	flag.DurationVar(&idleAfter, "idle-after", 0, "Inactivity period after which the device is idle")
	flag.DurationVar(&backoffMin, "backoff-min", 0, "First retry delay")
	flag.DurationVar(&backoffMax, "backoff-max", 0, "Retry delay cap")
	flag.Uint64Var(&maxRetries, "max-retries", 0, "Retry budget of one scheduled run")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashKey:      hashKey,
			Token:        token,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:  syncInterval,
			OnDemandDelay: onDemandDelay,
			IdleAfter:     idleAfter,
			BackoffMin:    backoffMin,
			BackoffMax:    backoffMax,
			MaxRetries:    maxRetries,
		},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
