// Package debug gates trace logging behind environment variables, so the
// walk and patch machinery can narrate what it does without any cost in
// the default configuration.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk  bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("PATHOBJ_DEBUG_WALK")
	d.Patch = boolEnv("PATHOBJ_DEBUG_PATCH")
	d.Diff = boolEnv("PATHOBJ_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
