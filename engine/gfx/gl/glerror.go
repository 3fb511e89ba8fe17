package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
)

// GL keeps one sticky flag per error kind; a handful of reads always empties them.
const maxPendingErrors = 16

// checkedCall runs f and reports an error only if f itself raised one.
// Flags left by earlier calls are discarded first.
func checkedCall(getError func() uint32, f func()) error {
	for i := 0; i < maxPendingErrors && getError() != gl.NO_ERROR; i++ {
	}
	f()
	if e := getError(); e != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", e)
	}
	return nil
}
