package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/guestcard/pkg/card"
)

func TestTableCoversEveryKey(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 2*2*2*len(card.Categories))

	for _, priority := range []bool{false, true} {
		for _, slot := range []card.Slot{card.First, card.Second} {
			for _, notes := range []bool{false, true} {
				for _, cat := range card.Categories {
					k := Key{Priority: priority, Slot: slot, Notes: notes, Category: cat}
					_, ok := Lookup(k)
					assert.True(t, ok, "missing %+v", k)
				}
			}
		}
	}
}

func TestTablePrecedence(t *testing.T) {
	for _, k := range Keys() {
		o, _ := Lookup(k)
		var want Layer
		switch {
		case k.Priority && k.Slot == card.Second:
			want = LayerPrioritySecond
		case k.Priority:
			want = LayerPriorityFirst
		case k.Notes:
			want = LayerNotes
		case k.Category == card.Arrival:
			want = LayerArrival
		default:
			want = LayerStandard
		}
		assert.Equal(t, want, o.Layer, "%+v", k)
	}
}

func TestKeyForNormalizesSlot(t *testing.T) {
	k := KeyFor(card.Context{Category: card.Stayover, IsPriority: true})
	assert.Equal(t, card.First, k.Slot)

	_, ok := Lookup(k)
	assert.True(t, ok)
}

func TestUnknownCategoryKeepsPrecedence(t *testing.T) {
	tests := []struct {
		name string
		ctx  card.Context
		want Layer
	}{
		{"priority", card.Context{Category: "spa", IsPriority: true}, LayerPriorityFirst},
		{"priority second", card.Context{Category: "spa", IsPriority: true, Slot: card.Second}, LayerPrioritySecond},
		{"notes", card.Context{Category: "spa", HasNotes: true}, LayerNotes},
		{"plain", card.Context{Category: "spa"}, LayerStandard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Lookup(KeyFor(tt.ctx))
			assert.False(t, ok)
			assert.Equal(t, tt.want, offsetsFor(tt.ctx).Layer)
		})
	}
}

func TestPriorityLayersCarryBadgeOffset(t *testing.T) {
	for _, o := range []Offsets{priorityFirstOffsets, prioritySecondOffsets} {
		assert.Less(t, o.Badge.Left, 0.0, "badge sits left of the container")
		assert.Greater(t, o.ContainerLeft, standardOffsets.ContainerLeft)
	}
}
