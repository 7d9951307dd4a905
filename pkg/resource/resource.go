// Package resource reads packaged assets by logical name.
//
// Packages that carry embedded files register them under a namespace
// at init time; consumers read them back as text or bytes without
// knowing where the bytes live. There is no caching and no error
// taxonomy beyond propagating the underlying not-found failure.
package resource

import (
	"fmt"
	"io/fs"
	"sync"
)

var (
	mu         sync.RWMutex
	namespaces = make(map[string]fs.FS)
)

// ErrNamespace is returned when reading from a namespace nobody
// registered.
var ErrNamespace = fmt.Errorf("unknown resource namespace")

// Register makes the files in fsys available under the given
// namespace. Registering the same namespace twice replaces the
// previous filesystem; the last writer wins.
func Register(namespace string, fsys fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	namespaces[namespace] = fsys
}

// Bytes returns the raw contents of a named resource.
func Bytes(namespace, name string) ([]byte, error) {
	mu.RLock()
	fsys, ok := namespaces[namespace]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("reading %s/%s: %w", namespace, name, ErrNamespace)
	}

	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s/%s: %w", namespace, name, err)
	}
	return b, nil
}

// Text returns the contents of a named resource as a string.
func Text(namespace, name string) (string, error) {
	b, err := Bytes(namespace, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
