package mempatch

import (
	"github.com/pkg/errors"
)

// neuterVTable builds the replacement virtual method table, the first
// keep entries stay, every later entry becomes a copy of the first.
// The input is never modified.
func neuterVTable(entries []uintptr, keep int) ([]uintptr, error) {
	if keep < 0 || keep > len(entries) {
		return nil, errors.Errorf("cannot keep %d of %d vtable entries", keep, len(entries))
	}
	table := make([]uintptr, len(entries))
	copy(table, entries[:keep])
	for i := keep; i < len(entries); i++ {
		table[i] = entries[0]
	}
	return table, nil
}

// encodePointers packs the table entries little endian in ptrSize
// width for writing back in one piece.
func encodePointers(entries []uintptr, ptrSize int) ([]byte, error) {
	table := make([]byte, len(entries)*ptrSize)
	for i := 0; i < len(entries); i++ {
		err := encodePointer(table[i*ptrSize:(i+1)*ptrSize], entries[i])
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}
