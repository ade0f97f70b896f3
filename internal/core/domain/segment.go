package domain

import (
	"bytes"

	"github.com/google/uuid"
)

// RuntimePackage is always added to the root set when building a segment.
// The runtime is present in every environment that records it, so segments
// never strip it; when the manifest has no such entry the extra root is a
// no-op.
const RuntimePackage = "julia"

// SegmentRequest names one segment to produce: the requested root packages
// and the subdirectory the pruned pair is written to.
type SegmentRequest struct {
	Name   string
	Roots  *KeySet
	Subdir string
}

// BuildSegment derives a minimal, mutually consistent (manifest, project)
// pair containing only the packages reachable from the requested roots.
//
// The returned values are freshly constructed: entry tables are copied
// verbatim (membership is the only thing that changes), the project's deps
// table is rewritten to exactly the closure's names and ids, and compat keeps
// only constraints for surviving dependencies. The inputs are never mutated.
func BuildSegment(project *Project, manifest *Manifest, roots *KeySet) (*Manifest, *Project, error) {
	seeded := NewKeySet(PackageKey{Name: RuntimePackage})
	for key := range roots.Keys() {
		seeded.Add(key)
	}

	closure, err := Closure(manifest, seeded)
	if err != nil {
		return nil, nil, err
	}

	return pruneManifest(manifest, closure), pruneProject(project, closure), nil
}

func pruneManifest(manifest *Manifest, closure *KeySet) *Manifest {
	out := &Manifest{Packages: make(map[string][]ManifestEntry)}
	for name, entries := range manifest.Packages {
		var kept []ManifestEntry
		for _, entry := range entries {
			if !closure.Contains(PackageKey{Name: name, ID: entry.ID}) {
				continue
			}
			fields := copyTable(entry.Fields)
			kept = append(kept, ManifestEntry{
				ID:     entry.ID,
				Deps:   append([]PackageKey(nil), entry.Deps...),
				Fields: fields,
			})
		}
		if len(kept) > 0 {
			out.Packages[name] = kept
		}
	}
	return out
}

func pruneProject(project *Project, closure *KeySet) *Project {
	// A deps table holds one id per name. When several versions of one name
	// survive the closure, the smallest id wins so repeated runs stay
	// byte-identical regardless of set iteration order.
	deps := make(map[string]uuid.UUID, closure.Len())
	for key := range closure.Keys() {
		if id, ok := deps[key.Name]; ok && bytes.Compare(id[:], key.ID[:]) <= 0 {
			continue
		}
		deps[key.Name] = key.ID
	}

	compat := make(map[string]string)
	for name, constraint := range project.Compat {
		if _, ok := deps[name]; ok {
			compat[name] = constraint
		}
	}

	return &Project{
		Name:   project.Name,
		ID:     project.ID,
		Deps:   deps,
		Compat: compat,
		Fields: copyTable(project.Fields),
	}
}
