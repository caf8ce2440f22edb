// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured, so no transport handler can be initialised. It is fatal
	// at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errTokenSettingsMissing is returned by NewHandlers when the JWT sign key
	// or issuer is empty; every resource route requires both.
	errTokenSettingsMissing = errors.New("token sign key and issuer are required")
)
