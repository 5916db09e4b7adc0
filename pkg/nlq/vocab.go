package nlq

import (
	"fmt"
	"strings"
)

// CasefoldMap maps the lowercased form of an identifier to its canonical
// original casing.
type CasefoldMap map[string]string

// NodeLabel pairs a graph node label with its property names. Order is
// preserved when the label set is serialized into a prompt.
type NodeLabel struct {
	Label      string
	Properties []string
}

// Vocabulary holds the schema-derived identifiers for one bound schema.
// It is immutable after construction; input slices are copied, never
// retained or mutated.
type Vocabulary struct {
	container     string
	identifiers   []string
	labels        []NodeLabel
	relationships []string
}

// NewVocabulary builds a flat vocabulary from a container name (table,
// collection or dataframe name) and its ordered identifier list. Duplicate
// identifiers collapse harmlessly at casefold time; empty identifiers are
// rejected.
func NewVocabulary(container string, identifiers []string) (*Vocabulary, error) {
	if container == "" {
		return nil, ErrEmptyContainer
	}
	for _, id := range identifiers {
		if id == "" {
			return nil, fmt.Errorf("container %q: %w", container, ErrEmptyIdentifier)
		}
	}
	return &Vocabulary{
		container:   container,
		identifiers: append([]string(nil), identifiers...),
	}, nil
}

// NewGraphVocabulary builds a vocabulary from ordered node labels with
// their properties, plus an optional relationship-name list.
func NewGraphVocabulary(labels []NodeLabel, relationships []string) (*Vocabulary, error) {
	if len(labels) == 0 {
		return nil, ErrNoNodeLabels
	}
	copied := make([]NodeLabel, 0, len(labels))
	for _, l := range labels {
		if l.Label == "" {
			return nil, fmt.Errorf("node label: %w", ErrEmptyIdentifier)
		}
		for _, p := range l.Properties {
			if p == "" {
				return nil, fmt.Errorf("label %q: %w", l.Label, ErrEmptyIdentifier)
			}
		}
		copied = append(copied, NodeLabel{
			Label:      l.Label,
			Properties: append([]string(nil), l.Properties...),
		})
	}
	for _, r := range relationships {
		if r == "" {
			return nil, fmt.Errorf("relationship: %w", ErrEmptyIdentifier)
		}
	}
	return &Vocabulary{
		labels:        copied,
		relationships: append([]string(nil), relationships...),
	}, nil
}

// Container returns the container name; empty for graph vocabularies.
func (v *Vocabulary) Container() string { return v.container }

// Identifiers returns a copy of the ordered identifier list.
func (v *Vocabulary) Identifiers() []string {
	return append([]string(nil), v.identifiers...)
}

// Labels returns a copy of the ordered node labels.
func (v *Vocabulary) Labels() []NodeLabel {
	out := make([]NodeLabel, 0, len(v.labels))
	for _, l := range v.labels {
		out = append(out, NodeLabel{
			Label:      l.Label,
			Properties: append([]string(nil), l.Properties...),
		})
	}
	return out
}

// Relationships returns a copy of the relationship-name list.
func (v *Vocabulary) Relationships() []string {
	return append([]string(nil), v.relationships...)
}

// IsGraph reports whether the vocabulary was built from node labels.
func (v *Vocabulary) IsGraph() bool { return len(v.labels) > 0 }

// CasefoldMap derives the casefold-to-canonical mapping for every
// identifier in the vocabulary. For graph vocabularies this covers labels,
// properties and relationships; flat vocabularies cover identifiers only,
// matching how the prompt serializes them. Casefold collisions resolve
// last-write-wins in vocabulary order.
func (v *Vocabulary) CasefoldMap() CasefoldMap {
	m := make(CasefoldMap)
	if v.IsGraph() {
		for _, l := range v.labels {
			m[strings.ToLower(l.Label)] = l.Label
			for _, p := range l.Properties {
				m[strings.ToLower(p)] = p
			}
		}
		for _, r := range v.relationships {
			m[strings.ToLower(r)] = r
		}
		return m
	}
	for _, id := range v.identifiers {
		m[strings.ToLower(id)] = id
	}
	return m
}

// serialize renders the vocabulary as the schema segment of a prompt:
// "container : id1, id2" for flat vocabularies, or pipe-joined
// "label : p1, p2" segments plus a trailing relationships segment for
// graph vocabularies.
func (v *Vocabulary) serialize() string {
	if !v.IsGraph() {
		return v.container + " : " + strings.Join(v.identifiers, ", ")
	}
	segments := make([]string, 0, len(v.labels)+1)
	for _, l := range v.labels {
		segments = append(segments, l.Label+" : "+strings.Join(l.Properties, ", "))
	}
	if len(v.relationships) > 0 {
		segments = append(segments, "relationships : "+strings.Join(v.relationships, ", "))
	}
	return strings.Join(segments, " | ")
}
