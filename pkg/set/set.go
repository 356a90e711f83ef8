/*
Package set implements a bounded, insertion-ordered set of comparable values.

A [Set] keeps its elements in the order they were added, together with a map
from element to position for constant-time membership tests. Every set has a
maximum size fixed when it is created; adding beyond it fails with
[ErrSetFull]. Set algebra (union, difference, intersection and symmetric
difference) always returns a new set and never modifies its operands.
*/
package set

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// DefaultCapacity is the capacity of sets created without an explicit bound
const DefaultCapacity = math.MaxInt - 1

// Errors returned by set operations
var (
	ErrDuplicateElement  = errors.New("element already exists in the set")
	ErrSetFull           = errors.New("set is full")
	ErrElementNotFound   = errors.New("element not found in the set")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrZeroCapacity      = errors.New("set capacity must be > 0")
	ErrCapacityBelowSize = errors.New("new capacity is smaller than the element count")
)

// Set is an ordered collection of unique values with a maximum size.
// The zero value is an empty set with [DefaultCapacity].
type Set[T comparable] struct {
	items    []T
	indexes  map[T]int
	capacity int
}

// New returns an empty set with [DefaultCapacity]
func New[T comparable]() *Set[T] {
	return &Set[T]{capacity: DefaultCapacity}
}

// WithCapacity returns an empty set that holds at most n elements
func WithCapacity[T comparable](n int) (*Set[T], error) {
	if n <= 0 {
		return nil, ErrZeroCapacity
	}
	return &Set[T]{capacity: n}, nil
}

// From returns a set holding the unique values of items in first-seen order.
// Duplicates are dropped silently and the capacity is the resulting size,
// so an empty input fails with [ErrZeroCapacity].
func From[T comparable](items []T) (*Set[T], error) {
	s := New[T]()
	for _, it := range items {
		if !s.Contains(it) {
			s.push(it)
		}
	}
	if len(s.items) == 0 {
		return nil, ErrZeroCapacity
	}
	s.capacity = len(s.items)
	return s, nil
}

func (s *Set[T]) initIndexes() {
	if s.indexes == nil {
		s.indexes = make(map[T]int, len(s.items))
	}
}

func (s *Set[T]) reindex(from int) {
	s.initIndexes()
	for i := from; i < len(s.items); i++ {
		s.indexes[s.items[i]] = i
	}
}

// push appends without any capacity or uniqueness check
func (s *Set[T]) push(x T) {
	s.initIndexes()
	s.indexes[x] = len(s.items)
	s.items = append(s.items, x)
}

// Cap returns the maximum number of elements
func (s *Set[T]) Cap() int {
	if s.capacity == 0 {
		return DefaultCapacity
	}
	return s.capacity
}

// Len returns the number of elements
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsEmpty reports whether the set has no elements
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Contains reports whether x is in the set
func (s *Set[T]) Contains(x T) bool {
	if s == nil {
		return false
	}
	_, ok := s.indexes[x]
	return ok
}

// IndexOf returns the position of x, or -1 if it is absent
func (s *Set[T]) IndexOf(x T) int {
	if s == nil {
		return -1
	}
	if i, ok := s.indexes[x]; ok {
		return i
	}
	return -1
}

// Add appends x. It fails with [ErrDuplicateElement] if x is already
// present and with [ErrSetFull] if the set is at capacity.
func (s *Set[T]) Add(x T) error {
	if s.Contains(x) {
		return ErrDuplicateElement
	}
	if len(s.items) >= s.Cap() {
		return ErrSetFull
	}
	s.push(x)
	return nil
}

// Remove deletes x, shifting later elements down by one
func (s *Set[T]) Remove(x T) error {
	i, ok := s.indexes[x]
	if !ok {
		return ErrElementNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	delete(s.indexes, x)
	s.reindex(i)
	return nil
}

// Change replaces from with to at the same position. The uniqueness check
// on to runs before the lookup of from.
func (s *Set[T]) Change(from, to T) error {
	if s.Contains(to) {
		return ErrDuplicateElement
	}
	i, ok := s.indexes[from]
	if !ok {
		return ErrElementNotFound
	}
	delete(s.indexes, from)
	s.items[i] = to
	s.indexes[to] = i
	return nil
}

// IndexIsValid returns an error if i does not address an element
func (s *Set[T]) IndexIsValid(i int) error {
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, s.Len())
	}
	return nil
}

// At returns the element at position i
func (s *Set[T]) At(i int) (T, error) {
	if err := s.IndexIsValid(i); err != nil {
		var zero T
		return zero, err
	}
	return s.items[i], nil
}

// Set replaces the element at position i with x. Writing a value that is
// already stored at another position fails with [ErrDuplicateElement].
func (s *Set[T]) Set(i int, x T) error {
	if err := s.IndexIsValid(i); err != nil {
		return err
	}
	if j, ok := s.indexes[x]; ok {
		if j == i {
			return nil
		}
		return ErrDuplicateElement
	}
	delete(s.indexes, s.items[i])
	s.items[i] = x
	s.indexes[x] = i
	return nil
}

// Items returns a copy of the elements in order
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// All iterates over positions and elements in order
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s == nil {
			return
		}
		for i, it := range s.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Clear removes every element, keeping the capacity
func (s *Set[T]) Clear() {
	s.items = nil
	s.indexes = nil
}

// Resize changes the capacity
func (s *Set[T]) Resize(n int) error {
	if n <= 0 {
		return ErrZeroCapacity
	}
	if n < len(s.items) {
		return ErrCapacityBelowSize
	}
	s.capacity = n
	return nil
}

// Clone returns an independent copy with the same capacity
func (s *Set[T]) Clone() *Set[T] {
	c := &Set[T]{capacity: s.Cap(), items: slices.Clone(s.items)}
	c.reindex(0)
	return c
}

// Union returns the elements of s followed by those of other not in s
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	res := New[T]()
	for _, it := range s.items {
		res.push(it)
	}
	for _, it := range other.items {
		if !res.Contains(it) {
			res.push(it)
		}
	}
	return res
}

// Difference returns the elements of s that are not in other
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	res := New[T]()
	for _, it := range s.items {
		if !other.Contains(it) {
			res.push(it)
		}
	}
	return res
}

// Intersection returns the elements of s that are also in other
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	res := New[T]()
	for _, it := range s.items {
		if other.Contains(it) {
			res.push(it)
		}
	}
	return res
}

// SymmetricDifference returns the elements in exactly one of s and other,
// computed as (s ∪ other) − (s ∩ other).
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	return s.Union(other).Difference(s.Intersection(other))
}

// Equal reports whether both sets hold the same elements, in any order
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, it := range s.Items() {
		if !other.Contains(it) {
			return false
		}
	}
	return true
}

// String formats the set as "{ a b c }"
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, it := range s.Items() {
		fmt.Fprintf(&sb, "%v ", it)
	}
	sb.WriteString("}")
	return sb.String()
}
