package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nocflow/internal/wizard/models"
)

func TestCatalogShape(t *testing.T) {
	all := Sections()
	require.Len(t, all, 8)

	t.Run("order matches declaration order", func(t *testing.T) {
		for i, s := range all {
			assert.Equal(t, i+1, s.Order, "section %s out of order", s.ID)
		}
	})

	t.Run("IDs are unique", func(t *testing.T) {
		seen := make(map[models.SectionID]bool)
		for _, s := range all {
			assert.False(t, seen[s.ID], "duplicate section ID %s", s.ID)
			seen[s.ID] = true
		}
	})

	t.Run("field keys are unique within each section", func(t *testing.T) {
		for _, s := range all {
			seen := make(map[string]bool)
			for _, f := range s.Fields {
				assert.False(t, seen[f.Key], "duplicate key %q in section %s", f.Key, s.ID)
				seen[f.Key] = true
			}
		}
	})

	t.Run("select fields carry options", func(t *testing.T) {
		for _, s := range all {
			for _, f := range s.Fields {
				if f.Kind == models.KindSelect {
					assert.NotEmpty(t, f.Options, "select field %s.%s has no options", s.ID, f.Key)
				}
			}
		}
	})
}

func TestNavigation(t *testing.T) {
	assert.Equal(t, SectionProjectInformation, First())
	assert.Equal(t, SectionAnnexureA, Last())
	assert.True(t, IsLast(SectionAnnexureA))
	assert.False(t, IsLast(SectionDeclaration))

	t.Run("Next walks the whole catalog", func(t *testing.T) {
		id := First()
		count := 1
		for {
			next, ok := Next(id)
			if !ok {
				break
			}
			id = next
			count++
		}
		assert.Equal(t, Last(), id)
		assert.Equal(t, 8, count)
	})

	t.Run("Prev stops at the first section", func(t *testing.T) {
		_, ok := Prev(First())
		assert.False(t, ok)

		prev, ok := Prev(SectionProductionHouse)
		require.True(t, ok)
		assert.Equal(t, SectionProjectInformation, prev)
	})

	t.Run("unknown IDs", func(t *testing.T) {
		_, ok := Get("no-such-section")
		assert.False(t, ok)
		_, ok = Next("no-such-section")
		assert.False(t, ok)
		_, ok = Prev("no-such-section")
		assert.False(t, ok)
	})
}

// Declaration and Annexure A deliberately share the "date" key; the flat
// submission payload resolves the collision in favor of Annexure A. This
// pins the collision so a catalog edit cannot silently change the wire
// behavior.
func TestCrossSectionDateCollision(t *testing.T) {
	decl, ok := Get(SectionDeclaration)
	require.True(t, ok)
	annexure, ok := Get(SectionAnnexureA)
	require.True(t, ok)

	df, ok := decl.Field("date")
	require.True(t, ok)
	af, ok := annexure.Field("date")
	require.True(t, ok)

	assert.Equal(t, "Declaration Date", df.Label)
	assert.Equal(t, "Shoot Date", af.Label)
	assert.Greater(t, annexure.Order, decl.Order)
}
