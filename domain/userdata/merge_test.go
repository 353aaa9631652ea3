package userdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lawmap/pkg/errors"
)

func TestParseImport(t *testing.T) {
	t.Run("rejects invalid json", func(t *testing.T) {
		_, err := ParseImport([]byte("{not json"))
		require.Error(t, err)
		assert.True(t, apperrors.IsFormat(err))
	})

	t.Run("rejects payload without version", func(t *testing.T) {
		_, err := ParseImport([]byte(`{"regulations":{}}`))
		require.Error(t, err)
		assert.True(t, apperrors.IsFormat(err))
	})

	t.Run("fills nil maps on sparse payload", func(t *testing.T) {
		doc, err := ParseImport([]byte(`{"version":1}`))
		require.NoError(t, err)
		assert.NotNil(t, doc.Regulations)
		assert.NotNil(t, doc.Links)
		assert.NotNil(t, doc.Notes)
		assert.NotNil(t, doc.Themes)
	})

	t.Run("round trips an exported document", func(t *testing.T) {
		orig := NewDocument()
		orig.ExportedAt = "2026-08-30T10:00:00Z"
		orig.Regulations["r1"] = Regulation{ID: "r1", Title: "fuel policy"}

		data, err := json.Marshal(orig)
		require.NoError(t, err)

		parsed, err := ParseImport(data)
		require.NoError(t, err)
		assert.Equal(t, orig.Regulations, parsed.Regulations)
	})
}

func TestImportReplace(t *testing.T) {
	current := NewDocument()
	current.Regulations["old"] = Regulation{ID: "old"}

	incoming := NewDocument()
	incoming.ExportedAt = "2026-08-30T10:00:00Z"
	incoming.Regulations["new"] = Regulation{ID: "new"}

	out, err := Import(current, incoming, StrategyReplace)
	require.NoError(t, err)

	assert.NotContains(t, out.Regulations, "old")
	assert.Contains(t, out.Regulations, "new")
	assert.Empty(t, out.ExportedAt, "export stamp must not survive import")
}

func TestImportMerge(t *testing.T) {
	current := NewDocument()
	current.Regulations["shared"] = Regulation{ID: "shared", Title: "mine", UpdatedAt: "2026-05-01T00:00:00Z"}
	current.Regulations["only-mine"] = Regulation{ID: "only-mine", UpdatedAt: "2026-05-01T00:00:00Z"}
	current.Notes["n1"] = Note{ID: "n1", Content: "current", UpdatedAt: "2026-06-01T00:00:00Z"}
	current.Themes["t1"] = Theme{ID: "t1", Name: "current theme", UpdatedAt: "2026-06-01T00:00:00Z"}

	incoming := NewDocument()
	incoming.Regulations["shared"] = Regulation{ID: "shared", Title: "theirs", UpdatedAt: "2026-07-01T00:00:00Z"}
	incoming.Regulations["only-theirs"] = Regulation{ID: "only-theirs", UpdatedAt: "2026-05-01T00:00:00Z"}
	incoming.Notes["n1"] = Note{ID: "n1", Content: "older", UpdatedAt: "2026-01-01T00:00:00Z"}
	incoming.Themes["t1"] = Theme{ID: "t1", Name: "newer theme", UpdatedAt: "2026-07-01T00:00:00Z"}

	out, err := Import(current, incoming, StrategyMerge)
	require.NoError(t, err)

	t.Run("strictly newer incoming wins", func(t *testing.T) {
		assert.Equal(t, "theirs", out.Regulations["shared"].Title)
		assert.Equal(t, "newer theme", out.Themes["t1"].Name)
	})

	t.Run("older incoming loses", func(t *testing.T) {
		assert.Equal(t, "current", out.Notes["n1"].Content)
	})

	t.Run("union of disjoint records", func(t *testing.T) {
		assert.Contains(t, out.Regulations, "only-mine")
		assert.Contains(t, out.Regulations, "only-theirs")
	})

	t.Run("equal timestamps keep current", func(t *testing.T) {
		cur := NewDocument()
		cur.Notes["n"] = Note{ID: "n", Content: "a", UpdatedAt: "2026-06-01T00:00:00Z"}
		inc := NewDocument()
		inc.Notes["n"] = Note{ID: "n", Content: "b", UpdatedAt: "2026-06-01T00:00:00Z"}

		merged, err := Import(cur, inc, StrategyMerge)
		require.NoError(t, err)
		assert.Equal(t, "a", merged.Notes["n"].Content)
	})
}

func TestImportAppend(t *testing.T) {
	current := NewDocument()
	current.Regulations["r1"] = Regulation{ID: "r1", Title: "fuel policy"}
	current.Links["l1"] = Link{ID: "l1", TargetRegulationID: "r1"}

	incoming := current.Clone()

	out, err := Import(current, incoming, StrategyAppend)
	require.NoError(t, err)

	t.Run("importing own backup doubles every record", func(t *testing.T) {
		assert.Len(t, out.Regulations, 2)
		assert.Len(t, out.Links, 2)
	})

	t.Run("incoming records get fresh ids", func(t *testing.T) {
		for id, r := range out.Regulations {
			assert.Equal(t, id, r.ID)
		}
		assert.Contains(t, out.Regulations, "r1")
	})

	t.Run("link targets are not remapped", func(t *testing.T) {
		for _, l := range out.Links {
			assert.Equal(t, "r1", l.TargetRegulationID)
		}
	})
}

func TestImportUnknownStrategy(t *testing.T) {
	_, err := Import(NewDocument(), NewDocument(), ImportStrategy("upsert"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestStrategyValid(t *testing.T) {
	assert.True(t, StrategyReplace.Valid())
	assert.True(t, StrategyMerge.Valid())
	assert.True(t, StrategyAppend.Valid())
	assert.False(t, ImportStrategy("").Valid())
	assert.False(t, ImportStrategy("upsert").Valid())
}
