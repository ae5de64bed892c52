package jsonopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/mdtest/pkg/mdtest"
	"github.com/calvinalkan/mdtest/pkg/mdtest/jsonopts"
)

// Compile-time check that Map satisfies the merge capability.
var _ mdtest.Merger[jsonopts.Map] = jsonopts.Map(nil)

func Test_MergeSerialized_OverlaysTopLevelKeys(t *testing.T) {
	t.Parallel()

	base := jsonopts.Map{"keep": "yes", "replace": float64(1)}

	merged, err := base.MergeSerialized(`{"replace": 2, "add": true}`)
	require.NoError(t, err, "valid object should merge")

	keep, ok := merged.GetString("keep")
	assert.True(t, ok, "inherited key should survive")
	assert.Equal(t, "yes", keep)

	replace, ok := merged.GetInt("replace")
	assert.True(t, ok)
	assert.Equal(t, int64(2), replace, "block key should replace inherited key")

	add, ok := merged.GetBool("add")
	assert.True(t, ok)
	assert.True(t, add)
}

func Test_MergeSerialized_LeavesReceiverUntouched(t *testing.T) {
	t.Parallel()

	base := jsonopts.Map{"n": float64(1)}

	_, err := base.MergeSerialized(`{"n": 2}`)
	require.NoError(t, err)

	n, ok := base.GetInt("n")
	require.True(t, ok)
	assert.Equal(t, int64(1), n, "merge must return a new map, not mutate the receiver")
}

func Test_MergeSerialized_AcceptsHuJSON(t *testing.T) {
	t.Parallel()

	block := `{
		// comments are fine
		"strict": true, // and so are trailing commas
	}`

	merged, err := jsonopts.Map(nil).MergeSerialized(block)
	require.NoError(t, err, "HuJSON comments and trailing commas should parse")

	strict, ok := merged.GetBool("strict")
	require.True(t, ok)
	assert.True(t, strict)
}

func Test_MergeSerialized_Rejects_NonObjectBlocks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{name: "array", raw: `[1, 2]`},
		{name: "scalar", raw: `5`},
		{name: "null", raw: `null`},
		{name: "garbage", raw: `{"unterminated`},
		{name: "empty", raw: ``},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := jsonopts.Map(nil).MergeSerialized(tc.raw)
			assert.Error(t, err, "non-object block should be rejected")
		})
	}
}

func Test_Getters_ReportMisses(t *testing.T) {
	t.Parallel()

	m := jsonopts.Map{"s": "x", "f": 1.5}

	_, ok := m.GetString("missing")
	assert.False(t, ok)

	_, ok = m.GetInt("s")
	assert.False(t, ok, "string value is not an int")

	_, ok = m.GetInt("f")
	assert.False(t, ok, "fractional value is not an int")

	f, ok := m.GetFloat("f")
	assert.True(t, ok)
	assert.InDelta(t, 1.5, f, 0)

	_, ok = m.GetBool("s")
	assert.False(t, ok)
}
