package userdata

import (
	"encoding/json"

	"github.com/google/uuid"

	apperrors "lawmap/pkg/errors"
	"lawmap/pkg/utils"
)

// ImportStrategy selects how an imported document is combined with current
// state
type ImportStrategy string

const (
	// StrategyReplace discards current state entirely
	StrategyReplace ImportStrategy = "replace"
	// StrategyMerge keeps the current record unless the incoming one has a
	// strictly newer updatedAt. Ids are matched literally, so independently
	// created datasets that happen to reuse an id merge last-writer-wins.
	StrategyMerge ImportStrategy = "merge"
	// StrategyAppend gives every incoming record a fresh id and unions it
	// with current records. Nothing is ever lost, and nothing is deduplicated.
	StrategyAppend ImportStrategy = "append"
)

// Valid reports whether the strategy is one of the three known ones
func (s ImportStrategy) Valid() bool {
	return s == StrategyReplace || s == StrategyMerge || s == StrategyAppend
}

// ParseImport decodes an uploaded backup file. A payload without a version
// marker is rejected as a format error and current state stays untouched.
func ParseImport(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, apperrors.NewFormatError("invalid backup file: not valid JSON").WithCause(err)
	}
	if doc.Version == 0 {
		return Document{}, apperrors.NewFormatError("invalid backup file: missing version marker")
	}
	return Migrate(doc), nil
}

// Import combines the incoming document with the current one using the given
// strategy and returns the resulting document.
func Import(current, incoming Document, strategy ImportStrategy) (Document, error) {
	switch strategy {
	case StrategyReplace:
		out := incoming.Clone()
		out.ExportedAt = ""
		return out, nil

	case StrategyMerge:
		out := NewDocument()
		out.Regulations = mergeRegulations(current.Regulations, incoming.Regulations)
		out.Links = mergeLinks(current.Links, incoming.Links)
		out.Notes = mergeNotes(current.Notes, incoming.Notes)
		out.Themes = mergeThemes(current.Themes, incoming.Themes)
		return out, nil

	case StrategyAppend:
		out := current.Clone()
		out.ExportedAt = ""
		for _, r := range incoming.Regulations {
			r.ID = uuid.New().String()
			out.Regulations[r.ID] = r
		}
		for _, l := range incoming.Links {
			l.ID = uuid.New().String()
			out.Links[l.ID] = l
		}
		for _, n := range incoming.Notes {
			n.ID = uuid.New().String()
			out.Notes[n.ID] = n
		}
		for _, t := range incoming.Themes {
			t = t.clone()
			t.ID = uuid.New().String()
			out.Themes[t.ID] = t
		}
		return out, nil

	default:
		return Document{}, apperrors.NewValidationError("unknown import strategy: " + string(strategy))
	}
}

func mergeRegulations(current, incoming map[string]Regulation) map[string]Regulation {
	out := make(map[string]Regulation, len(current))
	for id, r := range current {
		out[id] = r
	}
	for id, r := range incoming {
		if cur, ok := out[id]; !ok || utils.NewerThan(r.UpdatedAt, cur.UpdatedAt) {
			out[id] = r
		}
	}
	return out
}

func mergeLinks(current, incoming map[string]Link) map[string]Link {
	out := make(map[string]Link, len(current))
	for id, l := range current {
		out[id] = l
	}
	for id, l := range incoming {
		if cur, ok := out[id]; !ok || utils.NewerThan(l.UpdatedAt, cur.UpdatedAt) {
			out[id] = l
		}
	}
	return out
}

func mergeNotes(current, incoming map[string]Note) map[string]Note {
	out := make(map[string]Note, len(current))
	for id, n := range current {
		out[id] = n
	}
	for id, n := range incoming {
		if cur, ok := out[id]; !ok || utils.NewerThan(n.UpdatedAt, cur.UpdatedAt) {
			out[id] = n
		}
	}
	return out
}

func mergeThemes(current, incoming map[string]Theme) map[string]Theme {
	out := make(map[string]Theme, len(current))
	for id, t := range current {
		out[id] = t.clone()
	}
	for id, t := range incoming {
		if cur, ok := out[id]; !ok || utils.NewerThan(t.UpdatedAt, cur.UpdatedAt) {
			out[id] = t.clone()
		}
	}
	return out
}
