// Package domain contains the core domain models and the closure/segment logic.
package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// PackageKey identifies a package by name and, optionally, by its unique id.
// A zero ID (uuid.Nil) means the identity has not been disambiguated yet;
// such a key matches any entry with the same name.
type PackageKey struct {
	Name string
	ID   uuid.UUID
}

// NewPackageKey constructs a key from an explicit name/id pair. Unlike ParseKey
// it cannot fail.
func NewPackageKey(name string, id uuid.UUID) PackageKey {
	return PackageKey{Name: name, ID: id}
}

// ParseKey parses a textual package key of the form "name" or "name:uuid".
func ParseKey(text string) (PackageKey, error) {
	parts := strings.Split(text, ":")
	if len(parts) > 2 || parts[0] == "" {
		return PackageKey{}, zerr.With(zerr.Wrap(ErrInvalidKeyFormat, "failed to parse package key"), "key", text)
	}

	key := PackageKey{Name: parts[0]}
	if len(parts) == 2 {
		id, err := uuid.Parse(parts[1])
		if err != nil {
			perr := zerr.Wrap(ErrInvalidKeyID, "failed to parse package key")
			perr = zerr.With(perr, "key", text)
			return PackageKey{}, zerr.With(perr, "cause", err.Error())
		}
		key.ID = id
	}
	return key, nil
}

// Qualified reports whether the key carries an id.
func (k PackageKey) Qualified() bool {
	return k.ID != uuid.Nil
}

// Equal reports whether two keys identify the same package. Names must match;
// an unset id on either side acts as a wildcard, so an unqualified key is equal
// to every qualified key with the same name.
//
// This relation is deliberately not transitive: "a:1" == "a" and "a" == "a:2"
// while "a:1" != "a:2". It is only ever used to match an unqualified root
// request against qualified manifest keys, never to collapse distinct entries.
func (k PackageKey) Equal(other PackageKey) bool {
	if k.Name != other.Name {
		return false
	}
	if !k.Qualified() || !other.Qualified() {
		return true
	}
	return k.ID == other.ID
}

// Hash returns the key's hash, derived from the name only so that keys
// differing only in id-presence land in the same bucket. Required for Equal's
// wildcard contract to work in a hash-based set.
func (k PackageKey) Hash() uint64 {
	return xxhash.Sum64String(k.Name)
}

// String renders the key in its textual form, "name" or "name:uuid".
func (k PackageKey) String() string {
	if !k.Qualified() {
		return k.Name
	}
	return k.Name + ":" + k.ID.String()
}
