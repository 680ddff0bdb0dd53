// Package memory implements the repository interfaces over in-memory
// collections seeded at startup. Mutations follow full-collection-replace
// semantics: read the current slice, build a new one, install it under the
// lock. Readers always get a consistent point-in-time snapshot; nothing
// survives a process restart.
package memory

// cloneSlice returns a shallow copy so installed collections are never
// aliased by callers.
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// nextID assigns ids the way the console always has: max existing id + 1.
func nextID[T any](in []T, id func(T) int) int {
	max := 0
	for _, item := range in {
		if id(item) > max {
			max = id(item)
		}
	}
	return max + 1
}
