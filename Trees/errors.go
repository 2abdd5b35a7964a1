package Trees

import (
	"fmt"

	"github.com/ansel1/merry"
)

// Keys of the values attached to errors returned by this package.
// Retrieve them with merry.Value(err, ItemKey).
const (
	ItemKey        = "item"
	ReplacementKey = "replacement"
)

var (
	// ErrNotFound is returned when the item to remove or replace isn't in
	// the tree. Test for it with merry.Is.
	ErrNotFound = merry.New("Trees: item not in tree")
	// ErrOrderViolation is returned by StrictReplace when the replacement
	// would break the ordering of the tree.
	ErrOrderViolation = merry.New("Trees: replacement violates tree order")
)

func notFound[T any](v T) error {
	return merry.Here(ErrNotFound).WithValue(ItemKey, v)
}

// InvalidSliceError is the panic value of Build when the given slice
// isn't sorted in ascending order. Cur is at index At and is less than
// Prev at At-1.
type InvalidSliceError[T any] struct {
	At        int
	Prev, Cur T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: slice not sorted at index %d: %v is followed by %v", e.At, e.Prev, e.Cur)
}
