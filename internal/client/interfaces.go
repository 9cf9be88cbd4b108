// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package client

// Client is the lifecycle contract of the interactive favourites client.
// Run starts the command loop together with the background sync workers and
// blocks until exit.
type Client interface {
	Run() error
}
