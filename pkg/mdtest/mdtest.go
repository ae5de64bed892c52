package mdtest

import (
	"github.com/calvinalkan/mdtest/pkg/mdtest/mdstream"
)

// OptionsTag is the info string that marks a code block as configuration.
// The comparison is verbatim and case-sensitive; any other info string
// (including none) marks a positional argument.
const OptionsTag = "options"

// Merger is the caller-supplied merge capability. MergeSerialized folds one
// options block's raw content into the current options value and returns the
// result as a new value.
//
// Implementations must not mutate the receiver: parent and child headings
// may hold the same snapshot until a merge replaces one of them.
type Merger[O any] interface {
	MergeSerialized(raw string) (O, error)
}

// TestCase is one extracted test fixture. Immutable once returned.
type TestCase[O Merger[O]] struct {
	// Name is the title of the heading that defines the test case.
	Name string

	// Headings is the root-to-leaf chain of heading titles at the point the
	// case was emitted, including Name itself as the last element.
	Headings []string

	// Line is the 1-based source line of the defining heading.
	Line int

	// Options is the effective options snapshot: the root options merged
	// with every options block on the path from the document root to the
	// defining heading, in document order.
	Options O

	// Args holds the contents of the positional code blocks placed directly
	// under the defining heading, in document order.
	Args []string
}

// frame is the live state of one currently-open heading. frames at level 0
// represent the virtual document root, which inherits the caller's root
// options and never emits a test case.
type frame[O Merger[O]] struct {
	level   int
	title   string
	line    int
	options O
	args    []string
}

// Cases parses source and returns its test cases in document order of each
// case's defining heading. rootOptions seeds the options inheritance chain.
//
// It fails on the first [MergeError] or [OrphanArgumentError]; no partial
// results are returned.
func Cases[O Merger[O]](source []byte, rootOptions O) ([]TestCase[O], error) {
	return CasesFromEvents(mdstream.Events(source), rootOptions)
}

// CasesFromEvents runs the test-case interpreter over a pre-tokenized block
// event stream. Most callers want [Cases]; this entry point exists for
// alternate front ends and for tests that drive the interpreter directly.
func CasesFromEvents[O Merger[O]](events []mdstream.Event, rootOptions O) ([]TestCase[O], error) {
	stack := []frame[O]{{options: rootOptions}}

	var cases []TestCase[O]

	// finalize emits the top frame if it accumulated arguments while it was
	// on top. It runs whenever the top frame is about to be superseded (a
	// new heading arrives, at any level) and once more at stream end. This
	// is deliberately decoupled from popping: a parent heading's own case
	// must be emitted before its descendants', even though the parent frame
	// stays on the stack while the descendants are read.
	finalize := func() {
		top := &stack[len(stack)-1]
		if top.level == 0 || len(top.args) == 0 {
			return
		}

		titles := make([]string, 0, len(stack)-1)
		for _, f := range stack[1:] {
			titles = append(titles, f.title)
		}

		cases = append(cases, TestCase[O]{
			Name:     top.title,
			Headings: titles,
			Line:     top.line,
			Options:  top.options,
			Args:     top.args,
		})

		// Args ownership moved into the emitted case. The frame may remain
		// on the stack as an ancestor, but it can never re-emit.
		top.args = nil
	}

	for _, ev := range events {
		switch ev.Kind {
		case mdstream.KindHeading:
			finalize()

			// A new heading closes every frame at its level or deeper,
			// including same-level siblings. Skipped levels (H1 directly
			// followed by H4) are valid; no intermediate frames are
			// synthesized.
			for len(stack) > 1 && stack[len(stack)-1].level >= ev.Level {
				stack = stack[:len(stack)-1]
			}

			stack = append(stack, frame[O]{
				level:   ev.Level,
				title:   ev.Title,
				line:    ev.Line,
				options: stack[len(stack)-1].options,
			})
		case mdstream.KindCodeBlock:
			top := &stack[len(stack)-1]

			if ev.Tag == OptionsTag {
				merged, err := top.options.MergeSerialized(ev.Content)
				if err != nil {
					return nil, &MergeError{Line: ev.Line, Raw: ev.Content, Err: err}
				}

				top.options = merged

				continue
			}

			if top.level == 0 {
				return nil, &OrphanArgumentError{Line: ev.Line}
			}

			top.args = append(top.args, ev.Content)
		}
	}

	finalize()

	return cases, nil
}
