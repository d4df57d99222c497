package sparse

import "errors"

var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")
	// ErrInvalidArgument indicates a negative length.
	ErrInvalidArgument = errors.New("sparse: invalid argument")
)

// Array is a logical array of Len() slots where unoccupied slots read as
// the default value.
type Array[T comparable] struct {
	data   map[int]T
	keys   []int // occupied indices, ascending
	def    T
	length int
}
