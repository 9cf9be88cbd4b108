// Package config assembles the server and client configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults, in that priority order (earlier sources win for
// non-zero fields).
//
// [GetServerConfig] produces the cloud server view (HTTP listen address,
// Postgres DSN, token signing parameters); [GetClientConfig] produces the
// client view (cloud API address, local SQLite path, sync worker interval).
// Both are projections of the same [StructuredConfig] built by
// [GetStructuredConfig].
package config
