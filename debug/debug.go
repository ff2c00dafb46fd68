// Package debug holds environment-driven debug switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tree bool
	Exec bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tree = boolEnv("CSSFMT_DEBUG_TREE")
	d.Exec = boolEnv("CSSFMT_DEBUG_EXEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tree reports whether raw parse trees should be dumped.
func Tree() bool {
	return d.Tree
}

// Exec reports whether subprocess invocations should be traced.
func Exec() bool {
	return d.Exec
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
