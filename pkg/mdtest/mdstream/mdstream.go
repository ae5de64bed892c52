// Package mdstream tokenizes markdown into a flat stream of block events.
//
// Only two constructs survive tokenization: headings and fenced code
// blocks, both taken from the document's top level. Paragraphs, lists,
// blockquotes, indented code, and all inline formatting are dropped. Every
// event carries the 1-based source line where its block starts.
//
// Parsing is delegated to goldmark; this package only flattens the AST.
package mdstream

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Kind distinguishes block event variants.
type Kind uint8

// Kind values enumerate the block constructs the stream reports.
const (
	KindHeading Kind = iota
	KindCodeBlock
)

// Event is one heading or fenced code block, in document order.
type Event struct {
	Kind Kind // Kind describes which fields are populated.

	Level int    // Level is the heading level 1..6 when Kind == KindHeading.
	Title string // Title is the heading's plain text when Kind == KindHeading.

	Tag     string // Tag is the verbatim info string when Kind == KindCodeBlock.
	Content string // Content is the fence interior when Kind == KindCodeBlock.

	Line int // Line is the 1-based source line where the block starts.
}

// markdown is a shared goldmark instance. No extensions: the stream cares
// only about CommonMark block structure.
var markdown = goldmark.New()

// Events parses source and returns its heading and fenced-code-block events
// in document order. The input is treated as UTF-8; malformed markdown is
// not an error, it simply produces fewer events.
func Events(source []byte) []Event {
	doc := markdown.Parser().Parse(text.NewReader(source))
	index := newLineIndex(source)

	var events []Event

	// lastLine tracks the final source line of the previous event so that
	// blocks without any recorded segment (an empty, untagged fence) can
	// still be located by scanning forward for their opening fence.
	lastLine := 0

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch block := node.(type) {
		case *ast.Heading:
			line := headingLine(block, index, lastLine)
			events = append(events, Event{
				Kind:  KindHeading,
				Level: block.Level,
				Title: headingText(block, source),
				Line:  line,
			})

			lastLine = line
		case *ast.FencedCodeBlock:
			line := fenceLine(block, index, source, lastLine)
			events = append(events, Event{
				Kind:    KindCodeBlock,
				Tag:     fenceTag(block, source),
				Content: fenceContent(block, source),
				Line:    line,
			})

			// Content lines plus the closing fence. If the fence is
			// unclosed at EOF this overshoots, but nothing follows it.
			lastLine = line + block.Lines().Len() + 1
		default:
			// Skipped blocks still occupy lines. A list item can hold a
			// fence of its own; without advancing lastLine past it, the
			// forward scan for the next empty top-level fence would stop
			// at the nested one.
			if end := blockEndLine(node, index); end > lastLine {
				lastLine = end
			}
		}
	}

	return events
}

// blockEndLine returns the last source line covered by a skipped block,
// descendants included, or 0 when the block recorded no segments.
func blockEndLine(node ast.Node, index lineIndex) int {
	end := 0

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		line := 0

		switch t := n.(type) {
		case *ast.Text:
			line = index.lineAt(t.Segment.Stop - 1)
		case *ast.FencedCodeBlock:
			// One past the last content line, for the closing fence.
			if lines := t.Lines(); lines.Len() > 0 {
				seg := lines.At(lines.Len() - 1)
				line = index.lineAt(seg.Stop-1) + 1
			}
		default:
			// Lines panics on inline nodes; their positions are covered
			// by the Text case and the enclosing block anyway.
			if n.Type() != ast.TypeBlock {
				break
			}

			if lines := n.Lines(); lines.Len() > 0 {
				seg := lines.At(lines.Len() - 1)
				line = index.lineAt(seg.Stop - 1)
			}
		}

		if line > end {
			end = line
		}

		return ast.WalkContinue, nil
	})

	return end
}

// headingText concatenates the plain-text segments of a heading. Inline
// markup characters other than text (emphasis markers, link targets) are
// dropped, which matches the expectation that fixture headings are plain
// names.
func headingText(heading *ast.Heading, source []byte) string {
	var sb strings.Builder

	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if t, ok := n.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}

		return ast.WalkContinue, nil
	})

	return sb.String()
}

// headingLine resolves a heading's source line from its text segment. An
// empty heading ("#" with no title) records no segment; fall back to the
// first non-blank line after the previous event.
func headingLine(heading *ast.Heading, index lineIndex, lastLine int) int {
	if heading.Lines().Len() > 0 {
		return index.lineAt(heading.Lines().At(0).Start)
	}

	return index.scanNonBlank(lastLine)
}

// fenceTag returns the verbatim info string, or "" when absent.
func fenceTag(fence *ast.FencedCodeBlock, source []byte) string {
	if fence.Info == nil {
		return ""
	}

	return string(fence.Info.Segment.Value(source))
}

// fenceContent returns the fence interior: delimiters and info string
// excluded, interior whitespace and newlines preserved. The newline that
// terminates the last interior line belongs to the fence, not the content,
// and is stripped.
func fenceContent(fence *ast.FencedCodeBlock, source []byte) string {
	var sb strings.Builder

	lines := fence.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}

	content := strings.TrimSuffix(sb.String(), "\n")

	return strings.TrimSuffix(content, "\r")
}

// fenceLine resolves the source line of a fence's opening delimiter. The
// goldmark AST records segments for the info string and the content lines
// but not for the fence line itself, so it is derived:
//
//  1. a tagged fence: the info string sits on the opening fence line;
//  2. an untagged fence with content: the line before the first content line;
//  3. an empty, untagged fence: the first fence-looking line after the
//     previous event.
func fenceLine(fence *ast.FencedCodeBlock, index lineIndex, source []byte, lastLine int) int {
	if fence.Info != nil {
		return index.lineAt(fence.Info.Segment.Start)
	}

	if fence.Lines().Len() > 0 {
		return index.lineAt(fence.Lines().At(0).Start) - 1
	}

	return index.scanFence(lastLine)
}

// lineIndex maps byte offsets in a source buffer to 1-based line numbers.
type lineIndex struct {
	source []byte
	starts []int // starts[i] is the byte offset where line i+1 begins.
}

func newLineIndex(source []byte) lineIndex {
	starts := []int{0}

	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}

	return lineIndex{source: source, starts: starts}
}

// lineAt returns the 1-based line containing the byte at offset.
func (ix lineIndex) lineAt(offset int) int {
	return sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
}

// lineText returns the text of the 1-based line, without its newline.
func (ix lineIndex) lineText(line int) []byte {
	if line < 1 || line > len(ix.starts) {
		return nil
	}

	start := ix.starts[line-1]

	end := len(ix.source)
	if line < len(ix.starts) {
		end = ix.starts[line] - 1
	}

	return ix.source[start:end]
}

// scanNonBlank returns the first non-blank line after the given line, or
// after+1 when every remaining line is blank.
func (ix lineIndex) scanNonBlank(after int) int {
	for line := after + 1; line <= len(ix.starts); line++ {
		if len(strings.TrimSpace(string(ix.lineText(line)))) > 0 {
			return line
		}
	}

	return after + 1
}

// scanFence returns the first line after the given line that opens a code
// fence (``` or ~~~, at most three leading spaces), or after+1 when none is
// found.
func (ix lineIndex) scanFence(after int) int {
	for line := after + 1; line <= len(ix.starts); line++ {
		raw := ix.lineText(line)

		indent := 0
		for indent < len(raw) && indent < 3 && raw[indent] == ' ' {
			indent++
		}

		rest := string(raw[indent:])
		if strings.HasPrefix(rest, "```") || strings.HasPrefix(rest, "~~~") {
			return line
		}
	}

	return after + 1
}
