// Package config provides configuration loading, merging, and validation
// facilities for the ledger client and the reference server.
//
// Configuration is assembled from multiple sources. A field takes the value
// of the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults ([Defaults])
//
// The entry points are [GetClientConfig] for the sync daemon and
// [GetServerConfig] for the reference server.
package config
