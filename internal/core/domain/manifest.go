package domain

import (
	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// ManifestEntry is one version-record for a package: the raw entry table as
// read from the manifest, plus the decoded id and direct-dependency references.
type ManifestEntry struct {
	// ID is the entry's unique identifier, decoded from the "uuid" field.
	ID uuid.UUID

	// Deps are the entry's direct dependency references, possibly unqualified.
	Deps []PackageKey

	// Fields is the raw entry table, preserved verbatim for serialization.
	Fields map[string]any
}

// Manifest is a fully resolved package environment: every installed package
// version and its direct dependencies, keyed by package name. A single name
// may map to multiple entries (multiple installed versions), each carrying
// its own id.
type Manifest struct {
	Packages map[string][]ManifestEntry
}

// ParseManifest interprets a raw TOML document (nested maps and arrays) as a
// manifest. Every top-level value must be an array of entry tables and every
// entry must carry a well-formed "uuid" field.
func ParseManifest(raw map[string]any) (*Manifest, error) {
	m := &Manifest{Packages: make(map[string][]ManifestEntry, len(raw))}

	for name, value := range raw {
		tables, ok := entryTables(value)
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrInvalidShape, "manifest value is not an array of tables"), "package", name)
		}
		entries := make([]ManifestEntry, 0, len(tables))
		for _, table := range tables {
			entry, err := parseEntry(name, table)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		m.Packages[name] = entries
	}

	return m, nil
}

func entryTables(value any) ([]map[string]any, bool) {
	switch v := value.(type) {
	case []map[string]any:
		return v, true
	case []any:
		tables := make([]map[string]any, 0, len(v))
		for _, elem := range v {
			table, ok := elem.(map[string]any)
			if !ok {
				return nil, false
			}
			tables = append(tables, table)
		}
		return tables, true
	default:
		return nil, false
	}
}

func parseEntry(name string, table map[string]any) (ManifestEntry, error) {
	rawID, ok := table["uuid"].(string)
	if !ok {
		return ManifestEntry{}, zerr.With(zerr.Wrap(ErrMissingField, "manifest entry has no uuid"), "package", name)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		perr := zerr.Wrap(ErrInvalidKeyID, "failed to parse manifest entry uuid")
		perr = zerr.With(perr, "package", name)
		return ManifestEntry{}, zerr.With(perr, "cause", err.Error())
	}

	deps, err := parseDeps(name, table["deps"])
	if err != nil {
		return ManifestEntry{}, err
	}

	return ManifestEntry{ID: id, Deps: deps, Fields: table}, nil
}

// parseDeps decodes an entry's optional "deps" field. Two shapes are accepted:
// an array of strings (bare names or "name:uuid" encodings) and a table
// mapping dependency names to their uuid strings.
func parseDeps(name string, value any) ([]PackageKey, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case []any:
		deps := make([]PackageKey, 0, len(v))
		for _, elem := range v {
			text, ok := elem.(string)
			if !ok {
				return nil, zerr.With(zerr.Wrap(ErrInvalidShape, "dependency list element is not a string"), "package", name)
			}
			key, err := ParseKey(text)
			if err != nil {
				return nil, zerr.With(err, "package", name)
			}
			deps = append(deps, key)
		}
		return deps, nil
	case map[string]any:
		deps := make([]PackageKey, 0, len(v))
		for depName, rawID := range v {
			text, ok := rawID.(string)
			if !ok {
				perr := zerr.Wrap(ErrInvalidShape, "dependency id is not a string")
				perr = zerr.With(perr, "package", name)
				return nil, zerr.With(perr, "dependency", depName)
			}
			id, err := uuid.Parse(text)
			if err != nil {
				perr := zerr.Wrap(ErrInvalidKeyID, "failed to parse dependency uuid")
				perr = zerr.With(perr, "dependency", depName)
				return nil, zerr.With(perr, "cause", err.Error())
			}
			deps = append(deps, PackageKey{Name: depName, ID: id})
		}
		return deps, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrInvalidShape, "deps is neither an array nor a table"), "package", name)
	}
}

// Resolve maps a possibly-unqualified key to its fully qualified form and the
// matching entry. A qualified key must match exactly one entry id; an
// unqualified key is only valid when a single entry exists for the name.
func (m *Manifest) Resolve(key PackageKey) (PackageKey, *ManifestEntry, error) {
	entries := m.Packages[key.Name]

	if key.Qualified() {
		for i := range entries {
			if entries[i].ID == key.ID {
				return key, &entries[i], nil
			}
		}
		return PackageKey{}, nil, zerr.With(zerr.Wrap(ErrMissingEntry, "failed to resolve package"), "package", key.String())
	}

	switch len(entries) {
	case 0:
		return PackageKey{}, nil, zerr.With(zerr.Wrap(ErrMissingEntry, "failed to resolve package"), "package", key.Name)
	case 1:
		return PackageKey{Name: key.Name, ID: entries[0].ID}, &entries[0], nil
	default:
		// Multiple installed versions and no id to pick one: refuse to guess.
		rerr := zerr.Wrap(ErrAmbiguousReference, "failed to resolve package")
		rerr = zerr.With(rerr, "package", key.Name)
		return PackageKey{}, nil, zerr.With(rerr, "candidates", len(entries))
	}
}

// Raw renders the manifest back into a raw TOML document. Entry tables are
// deep-copied so the result shares no mutable state with the manifest.
func (m *Manifest) Raw() map[string]any {
	raw := make(map[string]any, len(m.Packages))
	for name, entries := range m.Packages {
		tables := make([]map[string]any, 0, len(entries))
		for _, entry := range entries {
			tables = append(tables, copyTable(entry.Fields))
		}
		raw[name] = tables
	}
	return raw
}

func copyTable(table map[string]any) map[string]any {
	out := make(map[string]any, len(table))
	for k, v := range table {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return copyTable(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = copyValue(elem)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, elem := range v {
			out[i] = copyTable(elem)
		}
		return out
	default:
		return v
	}
}
