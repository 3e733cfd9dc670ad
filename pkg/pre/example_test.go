package pre_test

import (
	"fmt"

	"github.com/Diggsey/minipre/pkg/pre"
)

func ExampleProcessString() {
	text := `some text
#if FOO
more text
#endif
more FOO text
`
	ctx := pre.NewContext().Define("FOO", "1")
	result, err := pre.ProcessString(text, ctx)
	if err != nil {
		panic(err)
	}
	fmt.Print(result)
	// Output:
	// some text
	// more text
	// more 1 text
}

func ExampleContext_Define() {
	ctx := pre.NewContext().Define("my_macro", "5")
	value, ok := ctx.Lookup("my_macro")
	fmt.Println(value, ok)
	// Output: 5 true
}
