package sparse

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// New returns an Array of length slots, all reading as def.
// Returns ErrInvalidArgument if length is negative.
func New[T comparable](length int, def T) (*Array[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}

	return &Array[T]{
		data:   make(map[int]T),
		def:    def,
		length: length,
	}, nil
}

// FromSlice builds an Array of len(values) slots, storing only the values
// that differ from def.
func FromSlice[T comparable](values []T, def T) *Array[T] {
	a := &Array[T]{
		data:   make(map[int]T),
		def:    def,
		length: len(values),
	}
	for i, v := range values {
		if v != def {
			// indices arrive ascending, append keeps keys sorted
			a.data[i] = v
			a.keys = append(a.keys, i)
		}
	}

	return a
}

// Set stores value at index. Setting the default value frees the slot.
// Returns ErrIndexOutOfRange if index is outside [0, Len()).
func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, a.length)
	}

	_, occupied := a.data[index]
	if value != a.def {
		if !occupied {
			i, _ := slices.BinarySearch(a.keys, index)
			a.keys = slices.Insert(a.keys, i, index)
		}
		a.data[index] = value
		return nil
	}

	if !occupied {
		return nil
	}
	delete(a.data, index)
	i, _ := slices.BinarySearch(a.keys, index)
	a.keys = slices.Delete(a.keys, i, i+1)

	return nil
}

// Get returns the value at index, or the default for unoccupied slots.
func (a *Array[T]) Get(index int) T {
	if v, ok := a.data[index]; ok {
		return v
	}

	return a.def
}

// Prev returns the greatest occupied index strictly less than index.
func (a *Array[T]) Prev(index int) (int, bool) {
	i, _ := slices.BinarySearch(a.keys, index)
	if i == 0 {
		return 0, false
	}

	return a.keys[i-1], true
}

// Next returns the smallest occupied index strictly greater than index.
func (a *Array[T]) Next(index int) (int, bool) {
	i, found := slices.BinarySearch(a.keys, index)
	if found {
		i++
	}
	if i >= len(a.keys) {
		return 0, false
	}

	return a.keys[i], true
}

// Len returns the logical length.
func (a *Array[T]) Len() int {
	return a.length
}

// Occupied returns the number of slots holding a non-default value.
func (a *Array[T]) Occupied() int {
	return len(a.keys)
}

// Default returns the value unoccupied slots read as.
func (a *Array[T]) Default() T {
	return a.def
}

// All yields occupied (index, value) pairs in ascending index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, k := range a.keys {
			if !yield(k, a.data[k]) {
				return
			}
		}
	}
}

// String renders the occupied slots as "sparse[len]{i:v ...}".
func (a *Array[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sparse[%d]{", a.length)
	for n, k := range a.keys {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%v", k, a.data[k])
	}
	sb.WriteByte('}')

	return sb.String()
}
