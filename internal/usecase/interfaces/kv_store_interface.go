package interfaces

import "context"

// IKeyValueStore abstracts the profile-scoped key/value storage the estimate
// engine persists to.
//
// Implementations:
//   - SQLite file (default, local persistence)
//   - DynamoDB table (optional driver, usually DynamoDB Local)
//   - in-memory map (tests)
//
// Get reports found=false for missing keys; that is not an error.

type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
