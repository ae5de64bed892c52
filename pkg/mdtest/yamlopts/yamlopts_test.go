package yamlopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/mdtest/pkg/mdtest"
	"github.com/calvinalkan/mdtest/pkg/mdtest/yamlopts"
)

// Compile-time check that Map satisfies the merge capability.
var _ mdtest.Merger[yamlopts.Map] = yamlopts.Map(nil)

func Test_MergeSerialized_OverlaysTopLevelKeys(t *testing.T) {
	t.Parallel()

	base := yamlopts.Map{"keep": "yes", "replace": 1}

	merged, err := base.MergeSerialized("replace: 2\nadd: true\n")
	require.NoError(t, err, "valid mapping should merge")

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

func Test_GetFloat_ReadsFractionalAndWholeNumbers(t *testing.T) {
	t.Parallel()

	merged, err := yamlopts.Map(nil).MergeSerialized("epsilon: 0.001\nscale: 3\nname: x\n")
	require.NoError(t, err)

	epsilon, ok := merged.GetFloat("epsilon")
	require.True(t, ok, "fractional value should be readable")
	assert.InDelta(t, 0.001, epsilon, 1e-12)

	scale, ok := merged.GetFloat("scale")
	require.True(t, ok, "whole number decodes as an integer but is still a float")
	assert.InDelta(t, 3.0, scale, 0)

	_, ok = merged.GetFloat("name")
	assert.False(t, ok, "non-numeric value should not be readable as a float")

	_, ok = merged.GetFloat("missing")
	assert.False(t, ok)
}

func Test_MergeSerialized_LeavesReceiverUntouched(t *testing.T) {
	t.Parallel()

	base := yamlopts.Map{"n": 1}

	_, err := base.MergeSerialized("n: 2\n")
	require.NoError(t, err)

	n, ok := base.GetInt("n")
	require.True(t, ok)
	assert.Equal(t, int64(1), n, "merge must return a new map, not mutate the receiver")
}

func Test_MergeSerialized_Rejects_NonMappingBlocks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{name: "sequence", raw: "- a\n- b\n"},
		{name: "scalar", raw: "5\n"},
		{name: "empty", raw: ""},
		{name: "garbage", raw: "a: [unterminated\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := yamlopts.Map(nil).MergeSerialized(tc.raw)
			assert.Error(t, err, "non-mapping block should be rejected")
		})
	}
}
