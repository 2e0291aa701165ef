package mempatch

import (
	"github.com/pkg/errors"

	"crylauncher/internal/arch"
)

// Catalog maps capability, architecture variant and game build to the
// ordered operations that implement the capability. It is assembled
// once and never modified afterwards, lookups have no side effects.
type Catalog map[Capability]map[arch.Variant]map[int][]Op

// Lookup is used to get the operations for one capability. An unknown
// capability is a programming error and returns an error. A build or
// variant without entries returns an empty sequence, patches are made
// per exact build and a build that needs none is normal.
func (cat Catalog) Lookup(cap Capability, variant arch.Variant, build int) ([]Op, error) {
	variants, ok := cat[cap]
	if !ok {
		return nil, errors.Errorf("unknown capability: %s", cap)
	}
	return variants[variant][build], nil
}
