// Package greeting implements the salutation composition shared by the
// fixture binaries and the greeting service.
package greeting

import (
	"errors"
	"fmt"
)

// Salutation is the fixed literal prepended to every greeting.
const Salutation = "Hello World! "

// DefaultSuffix is used by the hello-world fixture when no suffix is baked
// in at link time.
const DefaultSuffix = "A test string"

// ErrBufferLimit reports that the composed message would exceed the
// configured ceiling. Callers treat it as an allocation failure.
var ErrBufferLimit = errors.New("greeting: message exceeds buffer limit")

// Composer builds greeting messages. The zero value composes without a
// size ceiling.
type Composer struct {
	// MaxMessageBytes caps the required buffer size, terminator included.
	// Zero or negative means unlimited.
	MaxMessageBytes int
}

// RequiredSize returns the buffer size a greeting for suffix needs:
// salutation plus suffix plus one terminator byte.
func RequiredSize(suffix string) int {
	return len(Salutation) + len(suffix) + 1
}

// Compose returns Salutation + suffix, or ErrBufferLimit when the required
// size exceeds the ceiling.
func (c Composer) Compose(suffix string) (string, error) {
	if n := RequiredSize(suffix); c.MaxMessageBytes > 0 && n > c.MaxMessageBytes {
		return "", fmt.Errorf("%w: need %d bytes, limit %d", ErrBufferLimit, n, c.MaxMessageBytes)
	}
	return Salutation + suffix, nil
}

// Compose is the package-level shortcut with no size ceiling. It cannot
// fail; the error form exists so callers exercising the failure path share
// one code path with the limited composer.
func Compose(suffix string) string {
	msg, _ := Composer{}.Compose(suffix)
	return msg
}
