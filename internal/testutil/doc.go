// Package testutil starts shared MongoDB and Redis containers for integration tests.
// Tests using it are skipped with -short or when no container runtime is reachable.
package testutil
