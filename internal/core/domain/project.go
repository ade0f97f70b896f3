package domain

import (
	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// Project is a project descriptor: the project's own identity, its direct
// dependencies and their version constraints, plus any other fields passed
// through untouched.
type Project struct {
	Name string
	ID   uuid.UUID

	// Deps maps direct dependency names to their package ids.
	Deps map[string]uuid.UUID

	// Compat maps dependency names to version-constraint strings. A name may
	// have a deps entry without a compat entry.
	Compat map[string]string

	// Fields holds every other top-level field of the descriptor, preserved
	// verbatim for serialization.
	Fields map[string]any
}

// ParseProject interprets a raw TOML document as a project descriptor.
// "name" and "uuid" are required; "deps" and "compat" default to empty.
func ParseProject(raw map[string]any) (*Project, error) {
	name, ok := raw["name"].(string)
	if !ok || name == "" {
		return nil, zerr.With(zerr.Wrap(ErrMissingField, "project has no name"), "field", "name")
	}

	rawID, ok := raw["uuid"].(string)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrMissingField, "project has no uuid"), "project", name)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		perr := zerr.Wrap(ErrInvalidKeyID, "failed to parse project uuid")
		perr = zerr.With(perr, "project", name)
		return nil, zerr.With(perr, "cause", err.Error())
	}

	deps, err := parseProjectDeps(raw["deps"])
	if err != nil {
		return nil, zerr.With(err, "project", name)
	}

	compat, err := parseCompat(raw["compat"])
	if err != nil {
		return nil, zerr.With(err, "project", name)
	}

	fields := make(map[string]any)
	for k, v := range raw {
		switch k {
		case "name", "uuid", "deps", "compat":
		default:
			fields[k] = copyValue(v)
		}
	}

	return &Project{Name: name, ID: id, Deps: deps, Compat: compat, Fields: fields}, nil
}

func parseProjectDeps(value any) (map[string]uuid.UUID, error) {
	deps := make(map[string]uuid.UUID)
	if value == nil {
		return deps, nil
	}

	table, ok := value.(map[string]any)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrInvalidShape, "deps is not a table"), "field", "deps")
	}
	for name, rawID := range table {
		text, ok := rawID.(string)
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrInvalidShape, "dependency id is not a string"), "dependency", name)
		}
		id, err := uuid.Parse(text)
		if err != nil {
			perr := zerr.Wrap(ErrInvalidKeyID, "failed to parse dependency uuid")
			perr = zerr.With(perr, "dependency", name)
			return nil, zerr.With(perr, "cause", err.Error())
		}
		deps[name] = id
	}
	return deps, nil
}

func parseCompat(value any) (map[string]string, error) {
	compat := make(map[string]string)
	if value == nil {
		return compat, nil
	}

	table, ok := value.(map[string]any)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrInvalidShape, "compat is not a table"), "field", "compat")
	}
	for name, rawConstraint := range table {
		constraint, ok := rawConstraint.(string)
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrInvalidShape, "compat constraint is not a string"), "dependency", name)
		}
		compat[name] = constraint
	}
	return compat, nil
}

// Raw renders the descriptor back into a raw TOML document. Empty deps and
// compat tables are omitted.
func (p *Project) Raw() map[string]any {
	raw := make(map[string]any, len(p.Fields)+4)
	for k, v := range p.Fields {
		raw[k] = copyValue(v)
	}
	raw["name"] = p.Name
	raw["uuid"] = p.ID.String()

	if len(p.Deps) > 0 {
		deps := make(map[string]any, len(p.Deps))
		for name, id := range p.Deps {
			deps[name] = id.String()
		}
		raw["deps"] = deps
	}
	if len(p.Compat) > 0 {
		compat := make(map[string]any, len(p.Compat))
		for name, constraint := range p.Compat {
			compat[name] = constraint
		}
		raw["compat"] = compat
	}

	return raw
}
