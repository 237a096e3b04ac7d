package usecase

import (
	"regexp"
	"sync"

	"meraki_estimator/internal/usecase/interfaces"
)

// DefaultProfileID is used when a request names no profile.
const DefaultProfileID = "default"

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidProfileID reports whether id can be used as a storage namespace.
func ValidProfileID(id string) bool {
	return profileIDPattern.MatchString(id)
}

// StoreScope returns the key/value store of one profile.
type StoreScope func(profileID string) interfaces.IKeyValueStore

// IProfileRegistry resolves the estimate engine of a profile.
type IProfileRegistry interface {
	For(profileID string) (IEstimateUseCase, bool)
}

// ProfileRegistry hands out one EstimateUseCase per profile, created on first
// use. All of them report to the same notifier.
type ProfileRegistry struct {
	scope    StoreScope
	notifier interfaces.IChangeNotifier
	opts     []Option

	mu       sync.Mutex
	profiles map[string]*EstimateUseCase
}

var _ IProfileRegistry = (*ProfileRegistry)(nil)

func NewProfileRegistry(scope StoreScope, notifier interfaces.IChangeNotifier, opts ...Option) *ProfileRegistry {
	return &ProfileRegistry{
		scope:    scope,
		notifier: notifier,
		opts:     opts,
		profiles: make(map[string]*EstimateUseCase),
	}
}

// For returns the use case of profileID. Blank ids map to DefaultProfileID;
// ids that are not valid namespaces return false.
func (r *ProfileRegistry) For(profileID string) (IEstimateUseCase, bool) {
	if profileID == "" {
		profileID = DefaultProfileID
	}
	if !ValidProfileID(profileID) {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.profiles[profileID]; ok {
		return u, true
	}
	var store interfaces.IKeyValueStore
	if r.scope != nil {
		store = r.scope(profileID)
	}
	u := NewEstimateUseCase(store, r.notifier, r.opts...)
	r.profiles[profileID] = u
	return u, true
}
