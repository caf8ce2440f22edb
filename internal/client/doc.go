// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the offline-first ledger client runtime.
//
// It wires local storage, the server adapter, the sync orchestrator and the
// background scheduler into a single process lifecycle. Local edits go
// through [App.Services] and never wait for the network.
package client
