// Package linkedlist implements a generic intrusive doubly linked list.
//
// A List owns a chain of Node values; callers keep the *Node returned by
// PushFront or InsertAfter so they can remove or relocate it in O(1) without
// searching. This is the mechanism both the cache's frequency-bucket chain
// and the entry ordering within a single bucket are built on.
package linkedlist

import "iter"

// Node is one element of a List. The zero value is not usable; obtain nodes
// through List.PushFront or List.InsertAfter.
type Node[T any] struct {
	Value T

	next *Node[T]
	prev *Node[T]
}

// Next returns the node following n, or nil if n is the last node of its list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node preceding n, or nil if n is the first node of its list.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a doubly linked list of Node[T].
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes currently in the list.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Front returns the first node in the list, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node in the list, or nil if the list is empty.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// PushFront creates a new node holding value, links it at the front of the
// list, and returns it so the caller can retain it for later O(1) removal or
// relocation.
func (l *List[T]) PushFront(value T) *Node[T] {
	n := &Node[T]{Value: value}
	l.PushFrontNode(n)
	return n
}

// PushFrontNode links the detached node n at the front of the list. n must
// not already belong to a list.
func (l *List[T]) PushFrontNode(n *Node[T]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

// InsertAfter creates a new node holding value and splices it immediately
// after ref, which must already belong to the list. It returns the new node.
func (l *List[T]) InsertAfter(ref *Node[T], value T) *Node[T] {
	n := &Node[T]{Value: value, prev: ref, next: ref.next}
	if ref.next != nil {
		ref.next.prev = n
	} else {
		l.tail = n
	}
	ref.next = n
	l.length++
	return n
}

// Remove unlinks n from the list. n's own next/prev links are cleared, so
// the node can safely be re-pushed onto another list afterward.
func (l *List[T]) Remove(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next = nil
	n.prev = nil
	l.length--
}

// All returns an iterator over the list's values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the list's values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}
