package safe

import (
	"fmt"
	"reflect"
	"runtime/debug"

	"WProject/logger"
)

// MustNotNil panics if the given value is nil.
// Useful for enforcing required fields during struct initialization.
func MustNotNil(v any, name string) {
	if v == nil || reflect.ValueOf(v).IsNil() {
		panic(fmt.Sprintf("%s must not be nil", name))
	}
}

// Go starts a named goroutine that recovers from panic, so a bug in one
// connection's pump cannot take down the whole relay.
func Go(name string, f func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("[safe.Go] %s panic recovered: %v\n%s", name, r, debug.Stack())
			}
		}()
		f()
	}()
}
