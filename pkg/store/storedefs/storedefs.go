// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import (
	"errors"

	"src.marq.sh/pkg/eval/vals"
)

// ErrNoSharedValue is returned by (Store).SharedValue when there is no value
// with the given name.
var ErrNoSharedValue = errors.New("no such shared value")

// Store is an interface satisfied by the storage service.
type Store interface {
	SharedValue(name string) (vals.Value, error)
	SetSharedValue(name string, v vals.Value) error
	DelSharedValue(name string) error
	SharedValueNames() ([]string, error)
}
