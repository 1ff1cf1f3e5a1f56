package utils

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// RegistryValidator is a function that validates a key-value pair before registration
type RegistryValidator[K comparable, V any] func(key K, value V, existing map[K]V) error

// SealedError is returned by Register once a registry has been sealed
type SealedError struct {
	RegistryName string
}

func (e *SealedError) Error() string {
	return fmt.Sprintf("%s registry is sealed", e.RegistryName)
}

// BaseRegistry provides a generic registry that remembers registration order
// and can be sealed. Before sealing, access is guarded by a mutex; after
// sealing, the contents are frozen and reads take no lock.
type BaseRegistry[K comparable, V any] struct {
	mu              sync.RWMutex
	items           map[K]V
	order           []K
	sealed          atomic.Bool
	validator       RegistryValidator[K, V]
	registryName    string
	keyDescriptor   string // e.g., "parameter name"
	valueDescriptor string // e.g., "descriptor"
}

// NewBaseRegistry creates a new base registry with the specified configuration
func NewBaseRegistry[K comparable, V any](registryName, keyDesc, valueDesc string) *BaseRegistry[K, V] {
	return &BaseRegistry[K, V]{
		items:           make(map[K]V),
		registryName:    registryName,
		keyDescriptor:   keyDesc,
		valueDescriptor: valueDesc,
	}
}

// SetValidator sets the validation function for this registry
func (r *BaseRegistry[K, V]) SetValidator(validator RegistryValidator[K, V]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validator = validator
}

// Register adds an item to the registry with validation
func (r *BaseRegistry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return &SealedError{RegistryName: r.registryName}
	}

	if r.validator != nil {
		if err := r.validator(key, value, r.items); err != nil {
			return err
		}
	}

	if _, exists := r.items[key]; !exists {
		r.order = append(r.order, key)
	}
	r.items[key] = value
	return nil
}

// Seal freezes the registry. Sealing twice is a no-op.
func (r *BaseRegistry[K, V]) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed.Store(true)
}

// Sealed reports whether Seal has been called
func (r *BaseRegistry[K, V]) Sealed() bool {
	return r.sealed.Load()
}

func (r *BaseRegistry[K, V]) rlock() func() {
	if r.sealed.Load() {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

// Get retrieves an item from the registry
func (r *BaseRegistry[K, V]) Get(key K) (V, bool) {
	defer r.rlock()()

	value, exists := r.items[key]
	return value, exists
}

// Has checks if a key exists in the registry
func (r *BaseRegistry[K, V]) Has(key K) bool {
	defer r.rlock()()

	_, exists := r.items[key]
	return exists
}

// List returns all keys in registration order
func (r *BaseRegistry[K, V]) List() []K {
	defer r.rlock()()

	keys := make([]K, len(r.order))
	copy(keys, r.order)
	return keys
}

// Values returns all values in registration order
func (r *BaseRegistry[K, V]) Values() []V {
	defer r.rlock()()

	values := make([]V, 0, len(r.order))
	for _, key := range r.order {
		values = append(values, r.items[key])
	}
	return values
}

// Size returns the number of items in the registry
func (r *BaseRegistry[K, V]) Size() int {
	defer r.rlock()()

	return len(r.items)
}

// DuplicateKeyError is returned by NoDuplicateValidator for a key that is
// already registered
type DuplicateKeyError struct {
	KeyDescriptor string
	Key           any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s '%v' is already registered", e.KeyDescriptor, e.Key)
}

// NoDuplicateValidator validates that a key doesn't already exist
func NoDuplicateValidator[K comparable, V any](keyDesc string) RegistryValidator[K, V] {
	return func(key K, value V, existing map[K]V) error {
		if _, exists := existing[key]; exists {
			return &DuplicateKeyError{KeyDescriptor: keyDesc, Key: key}
		}
		return nil
	}
}
