// Package testutil provides shared helpers for tinyptr tests.
package testutil
