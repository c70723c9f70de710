package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for otherwise anonymous values in debug output. A sampled
// triangle has no natural identity, so when dumping a run it helps to tag
// each one with something a human can track across lines. Names are memoized
// by key and generated lazily; the memo is never freed, which is fine for
// debugging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so make them nondeterministic
	// as a reminder that the same name doesn't refer to the same thing
	// between runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
