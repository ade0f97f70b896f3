package domain

import "iter"

// KeySet is a hash set of PackageKeys. Buckets are keyed by the name-only
// hash (see PackageKey.Hash) and membership uses PackageKey.Equal, so an
// unqualified lookup matches any stored key with the same name.
//
// Closure results only ever store qualified keys; the wildcard matching is
// what lets an id-less root request find them.
type KeySet struct {
	buckets map[uint64][]PackageKey
	size    int
}

// NewKeySet creates a KeySet containing the given keys.
func NewKeySet(keys ...PackageKey) *KeySet {
	s := &KeySet{buckets: make(map[uint64][]PackageKey)}
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts the key and reports whether it was not already present.
func (s *KeySet) Add(k PackageKey) bool {
	h := k.Hash()
	for _, existing := range s.buckets[h] {
		if existing.Equal(k) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], k)
	s.size++
	return true
}

// Contains reports whether a key equal to k is in the set.
func (s *KeySet) Contains(k PackageKey) bool {
	for _, existing := range s.buckets[k.Hash()] {
		if existing.Equal(k) {
			return true
		}
	}
	return false
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	return s.size
}

// Keys returns an iterator over the set. Iteration order is unspecified.
func (s *KeySet) Keys() iter.Seq[PackageKey] {
	return func(yield func(PackageKey) bool) {
		for _, bucket := range s.buckets {
			for _, k := range bucket {
				if !yield(k) {
					return
				}
			}
		}
	}
}
