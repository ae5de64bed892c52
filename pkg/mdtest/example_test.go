package mdtest_test

import (
	"fmt"

	"github.com/calvinalkan/mdtest/pkg/mdtest"
	"github.com/calvinalkan/mdtest/pkg/mdtest/yamlopts"
)

func ExampleCases() {
	source := []byte(`# Addition

` + "```options" + `
precision: 2
` + "```" + `

## Small numbers

` + "```" + `
1 + 1
` + "```" + `
`)

	cases, err := mdtest.Cases(source, yamlopts.Map{})
	if err != nil {
		panic(err)
	}

	for _, c := range cases {
		precision, _ := c.Options.GetInt("precision")
		fmt.Printf("%s (line %d): %d arg(s), precision=%d\n", c.Name, c.Line, len(c.Args), precision)
	}
	// Output:
	// Small numbers (line 7): 1 arg(s), precision=2
}
