// Command pcal converts, formats, and inspects Persian (Jalali) calendar
// dates and keeps a small SQLite store of user-defined occasions.
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "1.0.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pcal: %v\n", err)
		os.Exit(1)
	}
}

// run executes one pcal invocation, writing command output to out.
func run(args []string, out io.Writer) error {
	a := &app{out: out}
	defer a.Close()

	root := newRootCmd(a)
	root.SetArgs(negativeArgs(root, args))
	root.SetOut(out)
	return root.Execute()
}
