// Package mdtest extracts named test cases from markdown documents.
//
// It is intentionally designed to keep fixture corpora as plain markdown
// files (git-friendly, human-readable diffs): headings name and group the
// tests, fenced code blocks carry their inputs, and code blocks tagged
// "options" carry configuration that nested headings inherit and may
// override.
//
// A document like
//
//	# Fruits
//
//	```options
//	{"ripe": true}
//	```
//
//	## Apple
//
//	```
//	Granny Smith
//	```
//
//	```
//	red
//	```
//
// yields one test case named "Apple" with two positional arguments and the
// options inherited from "Fruits". The options schema belongs entirely to
// the caller: any type implementing [Merger] can serve, and the subpackages
// jsonopts and yamlopts ship ready-made map-based implementations.
//
// Markdown tokenization lives in subpackage mdstream.
package mdtest
