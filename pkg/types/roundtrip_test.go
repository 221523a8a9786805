package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/emreozcan/pymetheus/pkg/schema"
)

// namePart draws a printable name part, frequently blank.
func namePart() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.StringMatching(`[A-Za-z][A-Za-z '\-]{0,14}`),
	)
}

func drawName(r *rapid.T, label string) NameData {
	return NameData{
		Family:              namePart().Draw(r, label+"-family"),
		Given:               namePart().Draw(r, label+"-given"),
		Suffix:              namePart().Draw(r, label+"-suffix"),
		DroppingParticle:    namePart().Draw(r, label+"-dp"),
		NonDroppingParticle: namePart().Draw(r, label+"-ndp"),
		Literal:             namePart().Draw(r, label+"-literal"),
	}
}

func TestNameTransportRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		nd := drawName(r, "nd")
		require.Equal(t, nd, NameFromTransport(nd.ToTransport()))
	})
}

func TestItemStoredRoundTripProperty(t *testing.T) {
	allTypes := schema.Types()

	rapid.Check(t, func(r *rapid.T) {
		typ := allTypes[rapid.IntRange(0, len(allTypes)-1).Draw(r, "type")]
		item := NewItem(typ)
		item.ID = rapid.Int64Range(1, 1<<40).Draw(r, "id")

		fields := typ.Fields()
		numFields := rapid.IntRange(0, 6).Draw(r, "numFields")
		for i := 0; i < numFields; i++ {
			field := fields[rapid.IntRange(0, len(fields)-1).Draw(r, "field")]
			item.SetField(field, rapid.StringN(0, 40, 120).Draw(r, "value"))
		}

		ctypes := typ.CreatorTypes()
		numCreators := rapid.IntRange(0, 4).Draw(r, "numCreators")
		for i := 0; i < numCreators; i++ {
			ctype := ctypes[rapid.IntRange(0, len(ctypes)-1).Draw(r, "ctype")]
			item.AddCreator(ctype, drawName(r, "creator"))
		}

		typeCode, fieldJSON, creatorsJSON, err := item.ToStored()
		require.NoError(t, err)
		back, err := ItemFromStored(item.ID, typeCode, fieldJSON, creatorsJSON)
		require.NoError(t, err)
		require.Equal(t, item, back)
	})
}
