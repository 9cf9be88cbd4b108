// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package server

import "errors"

// errNoServersAreCreated guards RunServer and Shutdown against a Servers
// aggregate that was built without any underlying server.
var (
	errNoServersAreCreated = errors.New("no servers are created")
)
