// Package view models what a list screen shows: a loading placeholder, the
// loaded items, or an empty notice.
package view

// Kind tags a State.
type Kind uint8

const (
	KindLoading Kind = iota
	KindSuccess
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// State is exactly one of Loading, Success(items) or Empty. The zero value
// is Loading.
type State[T any] struct {
	kind  Kind
	items []T
}

// Loading returns the loading state.
func Loading[T any]() State[T] {
	return State[T]{kind: KindLoading}
}

// Loaded returns Success for a non-empty slice and Empty otherwise.
func Loaded[T any](items []T) State[T] {
	if len(items) == 0 {
		return State[T]{kind: KindEmpty}
	}
	return State[T]{kind: KindSuccess, items: items}
}

// Empty returns the empty state.
func Empty[T any]() State[T] {
	return State[T]{kind: KindEmpty}
}

// FromResult collapses a fetch result into a state. A failed fetch shows
// as Empty.
func FromResult[T any](items []T, err error) State[T] {
	if err != nil {
		return Empty[T]()
	}
	return Loaded(items)
}

// Kind returns the state's tag.
func (s State[T]) Kind() Kind { return s.kind }

// Items returns the loaded items, or nil unless in Success.
func (s State[T]) Items() []T { return s.items }

func (s State[T]) IsLoading() bool { return s.kind == KindLoading }
func (s State[T]) IsEmpty() bool   { return s.kind == KindEmpty }

// Match calls exactly one of the functions for the current state.
func Match[T, R any](s State[T], loading func() R, success func([]T) R, empty func() R) R {
	switch s.kind {
	case KindSuccess:
		return success(s.items)
	case KindEmpty:
		return empty()
	default:
		return loading()
	}
}
