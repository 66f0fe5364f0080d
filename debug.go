package camgesture

import "fmt"

// debugPanic panics with a descriptive message when debug checks are on.
// In release mode logic defects are only logged and returned as errors.
func debugPanic(enabled bool, err error) {
	if enabled {
		panic(fmt.Sprintf("camgesture debug: %v", err))
	}
}
