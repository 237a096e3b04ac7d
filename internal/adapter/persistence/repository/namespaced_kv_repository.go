package repository

import (
	"context"

	"meraki_estimator/internal/usecase/interfaces"
)

// NamespacedKVRepository prefixes every key so several profiles can share one
// underlying store without seeing each other's estimates.
type NamespacedKVRepository struct {
	inner  interfaces.IKeyValueStore
	prefix string
}

var _ interfaces.IKeyValueStore = (*NamespacedKVRepository)(nil)

// NewNamespacedKVRepository scopes inner to "profile/{profile}/".
func NewNamespacedKVRepository(inner interfaces.IKeyValueStore, profile string) *NamespacedKVRepository {
	return &NamespacedKVRepository{inner: inner, prefix: ProfilePrefix(profile)}
}

func ProfilePrefix(profile string) string {
	return "profile/" + profile + "/"
}

func (r *NamespacedKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if !validKey(key) {
		return "", false, ErrEmptyKey
	}
	return r.inner.Get(ctx, r.prefix+key)
}

func (r *NamespacedKVRepository) Set(ctx context.Context, key, value string) error {
	if !validKey(key) {
		return ErrEmptyKey
	}
	return r.inner.Set(ctx, r.prefix+key, value)
}

func (r *NamespacedKVRepository) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return ErrEmptyKey
	}
	return r.inner.Delete(ctx, r.prefix+key)
}
