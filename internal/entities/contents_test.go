package entities

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContentsCodec() *ContentsCodec {
	seq := 0
	return &ContentsCodec{
		NewID: func() string {
			seq++
			return fmt.Sprintf("ci-test-%d", seq)
		},
		Now: func() time.Time {
			return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestContentsRoundTrip(t *testing.T) {
	codec := testContentsCodec()

	items := []ContentsItem{
		{ID: "a", Label: "Manikin", Checked: false, SortOrder: 99},
		{ID: "b", Label: "Charger", Checked: false, SortOrder: 0},
	}

	parsed := codec.Parse(codec.Serialize(items))
	require.Len(t, parsed, 2)

	assert.Equal(t, "a", parsed[0].ID)
	assert.Equal(t, "Manikin", parsed[0].Label)
	assert.Equal(t, 0, parsed[0].SortOrder, "sortOrder reassigned to array index")
	assert.Equal(t, "b", parsed[1].ID)
	assert.Equal(t, 1, parsed[1].SortOrder)
}

func TestContentsParseLegacyStringArray(t *testing.T) {
	codec := testContentsCodec()

	parsed := codec.Parse(`["Cables","Spare batteries"]`)
	require.Len(t, parsed, 2)

	assert.Equal(t, "ci-test-1", parsed[0].ID)
	assert.Equal(t, "Cables", parsed[0].Label)
	assert.False(t, parsed[0].Checked)
	assert.Nil(t, parsed[0].LastChecked)
	assert.Equal(t, 0, parsed[0].SortOrder)
	assert.Equal(t, "Spare batteries", parsed[1].Label)
	assert.Equal(t, 1, parsed[1].SortOrder)
}

func TestContentsParseAutoResetsStaleTicks(t *testing.T) {
	codec := testContentsCodec()

	fresh := codec.Now().Add(-24 * time.Hour).Format(time.RFC3339)
	stale := codec.Now().Add(-8 * 24 * time.Hour).Format(time.RFC3339)
	raw := codec.Serialize([]ContentsItem{
		{ID: "a", Label: "Fresh", Checked: true, LastChecked: &fresh},
		{ID: "b", Label: "Stale", Checked: true, LastChecked: &stale},
	})

	parsed := codec.Parse(raw)
	require.Len(t, parsed, 2)

	assert.True(t, parsed[0].Checked)
	require.NotNil(t, parsed[0].LastChecked)
	assert.Equal(t, fresh, *parsed[0].LastChecked)

	assert.False(t, parsed[1].Checked, "ticks older than 7 days reset")
	assert.Nil(t, parsed[1].LastChecked)
}

func TestContentsParseMalformedInput(t *testing.T) {
	codec := testContentsCodec()

	assert.Empty(t, codec.Parse(""))
	assert.Empty(t, codec.Parse("[]"))
	assert.Empty(t, codec.Parse("not json"))
	assert.Empty(t, codec.Parse(`{"nodes":[]}`))
	assert.Empty(t, codec.Parse(`[42]`))
}

func TestContentsNewItem(t *testing.T) {
	codec := testContentsCodec()

	item := codec.NewItem("Suction unit", 3)
	assert.Equal(t, "ci-test-1", item.ID)
	assert.Equal(t, "Suction unit", item.Label)
	assert.False(t, item.Checked)
	assert.Nil(t, item.LastChecked)
	assert.Equal(t, 3, item.SortOrder)
}

func TestContentsDefaultCodecGeneratesUniqueIDs(t *testing.T) {
	codec := NewContentsCodec()
	a := codec.NewID()
	b := codec.NewID()
	assert.NotEqual(t, a, b)
}
