package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Closure computes the transitive dependency set reachable from the given
// roots, following each manifest entry's recorded deps edges. The result
// contains only fully qualified keys, the surviving roots included.
//
// A root that matches nothing in the manifest is silently dropped: asking for
// a package that is not part of the resolved graph is not an error. Every
// dependency edge, in contrast, must resolve to exactly one entry; a missing
// or ambiguous reference aborts the whole computation.
func Closure(manifest *Manifest, roots *KeySet) (*KeySet, error) {
	result := NewKeySet()
	queue := make([]PackageKey, 0, roots.Len())

	for root := range roots.Keys() {
		qualified, _, err := manifest.Resolve(root)
		if err != nil {
			if errors.Is(err, ErrMissingEntry) {
				continue
			}
			return nil, err
		}
		if result.Add(qualified) {
			queue = append(queue, qualified)
		}
	}

	// Each key is visited once, so this is O(V+E) over the reachable subgraph.
	for len(queue) > 0 {
		key := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		_, entry, err := manifest.Resolve(key)
		if err != nil {
			return nil, err
		}

		for _, dep := range entry.Deps {
			qualified, _, err := manifest.Resolve(dep)
			if err != nil {
				return nil, zerr.With(err, "required_by", key.String())
			}
			if result.Add(qualified) {
				queue = append(queue, qualified)
			}
		}
	}

	return result, nil
}
