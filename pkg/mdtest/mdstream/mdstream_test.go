package mdstream_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/mdtest/pkg/mdtest/mdstream"
)

func doc(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

// Contract: only headings and fenced code blocks become events; paragraphs,
// lists, blockquotes, and indented code are dropped.
func Test_Events_EmitsOnlyHeadingsAndFences_When_DocumentMixesConstructs(t *testing.T) {
	t.Parallel()

	source := doc(
		"# Title",               // 1
		"",                      // 2
		"A paragraph of prose.", // 3
		"",                      // 4
		"- list item",           // 5
		"",                      // 6
		"> quoted",              // 7
		"",                      // 8
		"    indented code",     // 9
		"",                      // 10
		"```go",                 // 11
		"fenced",                // 12
		"```",                   // 13
	)

	got := mdstream.Events(source)

	want := []mdstream.Event{
		{Kind: mdstream.KindHeading, Level: 1, Title: "Title", Line: 1},
		{Kind: mdstream.KindCodeBlock, Tag: "go", Content: "fenced", Line: 11},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

// Contract: every heading level 1..6 is reported with its plain text and
// source line.
func Test_Events_ReportsLevelAndLine_When_HeadingsNest(t *testing.T) {
	t.Parallel()

	source := doc(
		"# One",      // 1
		"## Two",     // 2
		"### Three",  // 3
		"#### Four",  // 4
		"##### Five", // 5
		"###### Six", // 6
	)

	got := mdstream.Events(source)

	want := []mdstream.Event{
		{Kind: mdstream.KindHeading, Level: 1, Title: "One", Line: 1},
		{Kind: mdstream.KindHeading, Level: 2, Title: "Two", Line: 2},
		{Kind: mdstream.KindHeading, Level: 3, Title: "Three", Line: 3},
		{Kind: mdstream.KindHeading, Level: 4, Title: "Four", Line: 4},
		{Kind: mdstream.KindHeading, Level: 5, Title: "Five", Line: 5},
		{Kind: mdstream.KindHeading, Level: 6, Title: "Six", Line: 6},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

// Contract: fence content is verbatim (interior whitespace preserved), the
// info string is verbatim, and the event line is the opening fence's line.
func Test_Events_PreservesContentAndTag_When_FencesVary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		lines []string
		want  []mdstream.Event
	}{
		{
			name: "tagged fence",
			lines: []string{
				"```options", // 1
				`{"a": 1}`,   // 2
				"```",        // 3
			},
			want: []mdstream.Event{
				{Kind: mdstream.KindCodeBlock, Tag: "options", Content: `{"a": 1}`, Line: 1},
			},
		},
		{
			name: "untagged fence with interior whitespace",
			lines: []string{
				"```",        // 1
				"  indented", // 2
				"",           // 3
				"tail",       // 4
				"```",        // 5
			},
			want: []mdstream.Event{
				{Kind: mdstream.KindCodeBlock, Content: "  indented\n\ntail", Line: 1},
			},
		},
		{
			name: "tilde fence",
			lines: []string{
				"~~~text", // 1
				"body",    // 2
				"~~~",     // 3
			},
			want: []mdstream.Event{
				{Kind: mdstream.KindCodeBlock, Tag: "text", Content: "body", Line: 1},
			},
		},
		{
			name: "multi-word info string kept verbatim",
			lines: []string{
				"```go run main", // 1
				"x",              // 2
				"```",            // 3
			},
			want: []mdstream.Event{
				{Kind: mdstream.KindCodeBlock, Tag: "go run main", Content: "x", Line: 1},
			},
		},
		{
			name: "empty tagged fence",
			lines: []string{
				"# H",        // 1
				"",           // 2
				"```options", // 3
				"```",        // 4
			},
			want: []mdstream.Event{
				{Kind: mdstream.KindHeading, Level: 1, Title: "H", Line: 1},
				{Kind: mdstream.KindCodeBlock, Tag: "options", Content: "", Line: 3},
			},
		},
		{
			name: "empty untagged fence",
			lines: []string{
				"# H", // 1
				"",    // 2
				"```", // 3
				"```", // 4
			},
			want: []mdstream.Event{
				{Kind: mdstream.KindHeading, Level: 1, Title: "H", Line: 1},
				{Kind: mdstream.KindCodeBlock, Content: "", Line: 3},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := mdstream.Events(doc(tc.lines...))

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Contract: consecutive fences each resolve to their own opening line,
// including an empty untagged fence that follows another fence.
func Test_Events_ResolvesFenceLines_When_FencesAreAdjacent(t *testing.T) {
	t.Parallel()

	source := doc(
		"# H",    // 1
		"",       // 2
		"```",    // 3
		"first",  // 4
		"```",    // 5
		"",       // 6
		"```",    // 7
		"```",    // 8
		"",       // 9
		"```",    // 10
		"second", // 11
		"```",    // 12
	)

	got := mdstream.Events(source)

	want := []mdstream.Event{
		{Kind: mdstream.KindHeading, Level: 1, Title: "H", Line: 1},
		{Kind: mdstream.KindCodeBlock, Content: "first", Line: 3},
		{Kind: mdstream.KindCodeBlock, Content: "", Line: 7},
		{Kind: mdstream.KindCodeBlock, Content: "second", Line: 10},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

// Contract: a fence nested inside a dropped construct occupies source lines
// but emits nothing, and a later empty untagged fence still resolves to its
// own opening line.
func Test_Events_ResolvesFenceLine_When_DroppedListHoldsAFence(t *testing.T) {
	t.Parallel()

	source := doc(
		"# H",      // 1
		"",         // 2
		"- item",   // 3
		"  ```go",  // 4
		"  nested", // 5
		"  ```",    // 6
		"",         // 7
		"```",      // 8
		"```",      // 9
	)

	got := mdstream.Events(source)

	want := []mdstream.Event{
		{Kind: mdstream.KindHeading, Level: 1, Title: "H", Line: 1},
		{Kind: mdstream.KindCodeBlock, Content: "", Line: 8},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

// Contract: an empty document and a whitespace-only document produce no
// events.
func Test_Events_ReturnsNil_When_DocumentHasNoBlocks(t *testing.T) {
	t.Parallel()

	for _, source := range []string{"", "\n", "   \n\n"} {
		if got := mdstream.Events([]byte(source)); got != nil {
			t.Errorf("Events(%q) = %v, want nil", source, got)
		}
	}
}
