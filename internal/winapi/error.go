package winapi

import (
	"fmt"

	"github.com/pkg/errors"
)

func newError(name, reason string, err error) error {
	if err != nil {
		return errors.Errorf("%s: %s, because %s", name, reason, err)
	}
	return errors.Errorf("%s: %s", name, reason)
}

func newErrorf(name string, err error, format string, v ...interface{}) error {
	return newError(name, fmt.Sprintf(format, v...), err)
}
