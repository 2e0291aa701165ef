// +build !windows

package memory

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// makeWritable is used to add write permission to every page that
// covers [addr, addr+size). POSIX has no portable way to query the
// previous protection, so the pages are left readable, writable and
// executable, the returned restore function does nothing.
func makeWritable(addr, size uintptr) (func() error, error) {
	pageSize := uintptr(os.Getpagesize())
	start := addr &^ (pageSize - 1)
	for page := start; page < addr+size; page += pageSize {
		err := unix.Mprotect(
			rawBytes(page, int(pageSize)),
			unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		)
		if err != nil {
			return nil, errors.Errorf("mprotect: failed to unprotect page at 0x%X, because %s", page, err)
		}
	}
	return func() error { return nil }, nil
}
