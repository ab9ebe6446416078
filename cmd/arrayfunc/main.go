// Command arrayfunc lists, runs and benchmarks the array operations.
//
// Usage:
//
//	arrayfunc list [--shape s]
//	arrayfunc info
//	arrayfunc call NAME --type T [flags] values...
//	arrayfunc bench [flags]
//
// Examples:
//
//	arrayfunc call asum --type int8 -- 1 2 3 -128
//	arrayfunc call findindex --type float64 --cmp '>' --threshold 2 1 2 3
//	arrayfunc call add --type uint8 --operand 250 --matherrors 10 20
//	arrayfunc bench --size 100000 --types float32,int16 --output benchfuncs.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
