// Package http implements the REST transport of the reference ledger
// server.
//
// It serves the books, wallets, categories and transactions resource
// families under /api, plus unauthenticated health and version endpoints.
// Request tracing, access logging, JWT authentication, body integrity
// checks and response compression are handled here before requests reach
// the service layer.
package http
