// Package table looks up values in maps whose keys are known in full at the
// call site. A missing key there is a programming mistake, not a condition to
// paper over with the zero value.
package table

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched with errors.Is on any lookup failure.
var ErrKeyNotFound = errors.New("key not found")

// KeyError carries the key that was missing.
type KeyError[K comparable] struct {
	Key K
}

func (e *KeyError[K]) Error() string {
	return fmt.Sprintf("%v: %v", ErrKeyNotFound, e.Key)
}

// Is reports a match against ErrKeyNotFound so callers need not know K.
func (e *KeyError[K]) Is(target error) bool { return target == ErrKeyNotFound }

// Get returns the value bound to key, or a *KeyError[K] if there is none.
func Get[K comparable, V any](m map[K]V, key K) (V, error) {
	v, ok := m[key]
	if !ok {
		var zero V
		return zero, &KeyError[K]{Key: key}
	}
	return v, nil
}

// MustGet is like Get but panics with the *KeyError[K] when key is absent.
//
//	port := table.MustGet(defaults, "port")
func MustGet[K comparable, V any](m map[K]V, key K) V {
	v, err := Get(m, key)
	if err != nil {
		panic(err)
	}
	return v
}

