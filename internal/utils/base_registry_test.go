package utils

import (
	"errors"
	"sync"
	"testing"
)

func TestBaseRegistry_BasicOperations(t *testing.T) {
	registry := NewBaseRegistry[string, int]("test", "key", "value")

	if registry.Size() != 0 {
		t.Errorf("expected empty registry, got size %d", registry.Size())
	}

	if err := registry.Register("key1", 42); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	value, exists := registry.Get("key1")
	if !exists {
		t.Error("expected key1 to exist")
	}
	if value != 42 {
		t.Errorf("expected value 42, got %d", value)
	}

	if !registry.Has("key1") {
		t.Error("expected Has to return true for key1")
	}
	if registry.Has("nonexistent") {
		t.Error("expected Has to return false for nonexistent key")
	}
}

func TestBaseRegistry_PreservesOrder(t *testing.T) {
	registry := NewBaseRegistry[string, string]("test", "key", "value")

	for _, key := range []string{"c", "a", "b"} {
		if err := registry.Register(key, "value_"+key); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	keys := registry.List()
	expected := []string{"c", "a", "b"}
	if len(keys) != len(expected) {
		t.Fatalf("expected %d keys, got %d", len(expected), len(keys))
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("key %d: expected %s, got %s", i, expected[i], keys[i])
		}
	}

	values := registry.Values()
	if values[0] != "value_c" || values[2] != "value_b" {
		t.Errorf("values out of order: %v", values)
	}
}

func TestBaseRegistry_Seal(t *testing.T) {
	registry := NewBaseRegistry[string, int]("descriptor", "key", "value")
	if err := registry.Register("a", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	registry.Seal()
	registry.Seal()

	if !registry.Sealed() {
		t.Fatal("expected registry to be sealed")
	}

	err := registry.Register("b", 2)
	var sealedErr *SealedError
	if !errors.As(err, &sealedErr) {
		t.Fatalf("expected SealedError, got %v", err)
	}
	if sealedErr.RegistryName != "descriptor" {
		t.Errorf("expected registry name 'descriptor', got %q", sealedErr.RegistryName)
	}

	if registry.Has("b") {
		t.Error("sealed registry must not accept new items")
	}
	if v, ok := registry.Get("a"); !ok || v != 1 {
		t.Errorf("expected a=1 after sealing, got %d (%v)", v, ok)
	}
}

func TestBaseRegistry_ConcurrentReadsAfterSeal(t *testing.T) {
	registry := NewBaseRegistry[int, int]("test", "key", "value")
	for i := 0; i < 100; i++ {
		_ = registry.Register(i, i*i)
	}
	registry.Seal()

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if v, ok := registry.Get(i); !ok || v != i*i {
					t.Errorf("unexpected value for %d: %d", i, v)
				}
			}
		}()
	}
	wg.Wait()
}

func TestBaseRegistry_NoDuplicateValidator(t *testing.T) {
	registry := NewBaseRegistry[string, int]("test", "key", "value")
	registry.SetValidator(NoDuplicateValidator[string, int]("key"))

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "first", key: "one"},
		{name: "second", key: "two"},
		{name: "duplicate", key: "one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.Register(tt.key, 1)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var dup *DuplicateKeyError
			if !errors.As(err, &dup) {
				t.Fatalf("expected DuplicateKeyError, got %v", err)
			}
			if dup.Key != tt.key {
				t.Errorf("expected key %q, got %v", tt.key, dup.Key)
			}
			if err.Error() != "key 'one' is already registered" {
				t.Errorf("unexpected message: %s", err.Error())
			}
		})
	}

	if registry.Size() != 2 {
		t.Errorf("rejected item must not be stored, size %d", registry.Size())
	}
}
