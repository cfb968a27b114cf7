// Package lfu implements a fixed-capacity least-frequently-used cache with
// O(1) expected time per operation.
//
// The policy evicts the least-frequently-used entry when an Insert of a new
// key would exceed capacity. Ties at the minimum frequency are broken by
// evicting the entry most recently admitted or promoted into that
// frequency, leaving the longest-idle one in place. Insert, Get and Remove
// all mutate internal bookkeeping — Get included, since it promotes the
// accessed entry's frequency — so a Cache must not be shared across
// goroutines without external synchronization.
package lfu

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"lfucache/internal/linkedlist"
)

// ErrInvalidCapacity is the panic value raised by New when capacity is not
// a positive integer.
var ErrInvalidCapacity = errors.New("lfu: capacity must be a positive integer")

// entry is one (key, value) association held by the cache. bucket is a
// non-owning back-reference: an entry is always detached from its bucket's
// entry list before (or as part of) being destroyed, so bucket never
// dangles. node is the entry's own position within bucket.entries, kept so
// the entry can be relocated to another bucket in O(1) without a search.
type entry[K comparable, V any] struct {
	key    K
	value  V
	bucket *bucket[K, V]
	node   *linkedlist.Node[*entry[K, V]]
}

// bucket holds every entry currently at a given frequency, ordered newest-
// at-head: the entry most recently admitted or promoted into this bucket
// sits at entries.Front(), so entries.Back() is always the least-recently-
// used entry at this frequency. bucket is itself one node (via node) in the
// cache's ascending-frequency chain of buckets.
type bucket[K comparable, V any] struct {
	frequency int
	entries   *linkedlist.List[*entry[K, V]]
	node      *linkedlist.Node[*bucket[K, V]]
}

func newBucket[K comparable, V any](frequency int) *bucket[K, V] {
	return &bucket[K, V]{
		frequency: frequency,
		entries:   linkedlist.New[*entry[K, V]](),
	}
}

func (b *bucket[K, V]) isEmpty() bool {
	return b.entries.Len() == 0
}

// admit creates a brand new entry for (key, value) and pushes it to the
// head of b.
func (b *bucket[K, V]) admit(key K, value V) *entry[K, V] {
	e := &entry[K, V]{key: key, value: value, bucket: b}
	e.node = b.entries.PushFront(e)
	return e
}

// reclaim re-attaches a previously detached entry node at the head of b,
// preserving the entry's identity across the move between buckets.
func (b *bucket[K, V]) reclaim(e *entry[K, V]) {
	e.bucket = b
	b.entries.PushFrontNode(e.node)
}

// Cache is a fixed-capacity least-frequently-used cache mapping keys of
// type K to values of type V.
type Cache[K comparable, V any] struct {
	capacity int
	buckets  *linkedlist.List[*bucket[K, V]]
	index    map[K]*entry[K, V]
}

// New creates an empty cache with the given capacity. It panics with
// ErrInvalidCapacity if capacity is not a positive integer: admitting an
// entry only to immediately evict it, the behavior a capacity of zero would
// otherwise produce, is rejected outright rather than left as an implicit
// edge case.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	return &Cache[K, V]{
		capacity: capacity,
		buckets:  linkedlist.New[*bucket[K, V]](),
		index:    make(map[K]*entry[K, V], capacity),
	}
}

// promote moves e from its current bucket to the bucket of frequency one
// greater, creating and splicing that bucket in if none at the exact target
// frequency already exists. This is the central O(1) operation underlying
// both Get and Insert-of-an-existing-key.
func (c *Cache[K, V]) promote(e *entry[K, V]) {
	from := e.bucket
	target := c.frequencyAfter(from)

	from.entries.Remove(e.node)
	if from.isEmpty() {
		c.buckets.Remove(from.node)
	}

	target.reclaim(e)
}

// frequencyAfter returns the bucket holding frequency b.frequency+1,
// reusing b's successor if it already sits at exactly that frequency, or
// else allocating a new bucket and splicing it in immediately after b.
func (c *Cache[K, V]) frequencyAfter(b *bucket[K, V]) *bucket[K, V] {
	want := b.frequency + 1
	if next := b.node.Next(); next != nil && next.Value.frequency == want {
		return next.Value
	}

	fresh := newBucket[K, V](want)
	fresh.node = c.buckets.InsertAfter(b.node, fresh)
	return fresh
}

// leadingFrequencyOne returns the bucket at the front of the chain if it
// already holds frequency 1, or else creates one and splices it in as the
// new front of the chain.
func (c *Cache[K, V]) leadingFrequencyOne() *bucket[K, V] {
	if front := c.buckets.Front(); front != nil && front.Value.frequency == 1 {
		return front.Value
	}

	fresh := newBucket[K, V](1)
	fresh.node = c.buckets.PushFront(fresh)
	return fresh
}

// evict discards the head entry of the lowest-frequency bucket: the
// least-frequently-used entry, tie-broken to the entry most recently
// admitted or promoted into that frequency. This mirrors the reference
// implementation's victim selection exactly; the entry sitting longest at
// the minimum frequency (the bucket's tail) is the one left untouched.
func (c *Cache[K, V]) evict() {
	lowest := c.buckets.Front().Value
	victim := lowest.entries.Front()

	lowest.entries.Remove(victim)
	if lowest.isEmpty() {
		c.buckets.Remove(lowest.node)
	}
	delete(c.index, victim.Value.key)
}

// Insert stores value under key. If key was already present, its value is
// replaced, its frequency is promoted by one, and the previous value is
// returned with hadPrevious set to true. Otherwise the key is admitted at
// frequency 1; if the cache is at capacity, the least-frequently-used entry
// is evicted first (see evict for the tie-break rule).
func (c *Cache[K, V]) Insert(key K, value V) (previous V, hadPrevious bool) {
	if e, ok := c.index[key]; ok {
		previous = e.value
		c.promote(e)
		e.value = value
		return previous, true
	}

	if len(c.index) == c.capacity {
		c.evict()
	}

	head := c.leadingFrequencyOne()
	c.index[key] = head.admit(key, value)

	var zero V
	return zero, false
}

// Get returns the value associated with key and promotes its frequency by
// one. found is false if key is not present, in which case value is the
// zero value of V.
func (c *Cache[K, V]) Get(key K) (value V, found bool) {
	e, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.promote(e)
	return e.value, true
}

// Remove deletes key from the cache and returns its value. found is false
// if key was not present.
func (c *Cache[K, V]) Remove(key K) (value V, found bool) {
	e, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	b := e.bucket
	b.entries.Remove(e.node)
	if b.isEmpty() {
		c.buckets.Remove(b.node)
	}
	delete(c.index, key)

	return e.value, true
}

// Len returns the number of entries currently in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Capacity returns the cache's configured capacity.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Frequency returns key's current access frequency without promoting it.
// found is false if key is not present.
func (c *Cache[K, V]) Frequency(key K) (frequency int, found bool) {
	e, ok := c.index[key]
	if !ok {
		return 0, false
	}
	return e.bucket.frequency, true
}

// Dump renders the cache's full state as deterministic text, one line per
// bucket in ascending-frequency order. Each line reads "Count <f>:" followed
// by a space-prefixed, textual rendering of every entry in that bucket from
// most- to least-recently-touched. An empty cache renders as "<empty>".
func (c *Cache[K, V]) Dump() string {
	if c.buckets.IsEmpty() {
		return "<empty>"
	}

	var sb strings.Builder
	for b := range c.buckets.All() {
		fmt.Fprintf(&sb, "Count %d:", b.frequency)
		for e := range b.entries.All() {
			fmt.Fprintf(&sb, " %v", e.value)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// All returns an iterator over every (key, value) pair in the cache, in
// descending-frequency order; within a frequency, the most recently touched
// entry is yielded first.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for b := range c.buckets.Backward() {
			for e := range b.entries.All() {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
