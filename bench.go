package main

import (
	"fmt"
	"io"
	"time"
	"unique"

	"github.com/rs/zerolog/log"
	"github.com/xgzlucario/keybench/keys"
	"github.com/xgzlucario/keybench/table"
)

const (
	benchKey    = "ruby"
	benchIntKey = 42
	benchValue  = "an identifier bound to a description"
)

// Result is one timed scenario.
type Result struct {
	Label   string
	Elapsed time.Duration
}

// Runner times lookup scenarios and keeps results in run order.
type Runner struct {
	results []Result
}

func NewRunner() *Runner {
	return &Runner{}
}

// Run invokes lookup n times back to back and records the wall time of
// the whole loop, one monotonic clock reading on each side.
func (r *Runner) Run(label string, n int, lookup func()) {
	start := time.Now()
	for i := 0; i < n; i++ {
		lookup()
	}
	elapsed := time.Since(start)
	r.results = append(r.results, Result{Label: label, Elapsed: elapsed})
	log.Debug().Str("label", label).Dur("elapsed", elapsed).Msg("scenario done")
}

func (r *Runner) Results() []Result {
	return r.results
}

// Report writes one "<label>: <elapsed>" line per scenario, in run order.
func (r *Runner) Report(w io.Writer) {
	for _, res := range r.results {
		fmt.Fprintf(w, "%s: %v\n", res.Label, res.Elapsed)
	}
}

// runAll builds one single-entry table per key kind and times the six
// lookup scenarios: first with the key spelled inline, then with the key
// held in a variable. The tables are read-only once populated.
func runAll(n int) *Runner {
	textTable := table.New[string, string](1)
	textTable.Put(benchKey, benchValue)

	internTable := table.New[unique.Handle[string], string](1)
	internTable.Put(keys.Intern(benchKey), benchValue)

	intTable := table.New[int, string](1)
	intTable.Put(benchIntKey, benchValue)

	textKey := keys.Materialize(benchKey)
	internKey := keys.Intern(benchKey)
	intKey := benchIntKey

	r := NewRunner()
	r.Run("text literal", n, func() { textTable.Get("ruby") })
	r.Run("interned literal", n, func() { internTable.Get(keys.Intern("ruby")) })
	r.Run("integer literal", n, func() { intTable.Get(42) })
	r.Run("text variable", n, func() { textTable.Get(textKey) })
	r.Run("interned variable", n, func() { internTable.Get(internKey) })
	r.Run("integer variable", n, func() { intTable.Get(intKey) })
	return r
}

// printIdentityTokens materializes two equal keys of each kind and shows
// their runtime identity, twice per kind. Interned and integer keys land
// on the same token every time, text keys get a fresh backing array.
func printIdentityTokens(w io.Writer) {
	for i := 0; i < 2; i++ {
		a, b := keys.Materialize(benchKey), keys.Materialize(benchKey)
		fmt.Fprintf(w, "%s: %d vs %d\n", keys.Text, keys.TextToken(a), keys.TextToken(b))
	}
	for i := 0; i < 2; i++ {
		a, b := keys.Intern(benchKey), keys.Intern(benchKey)
		fmt.Fprintf(w, "%s: %d vs %d\n", keys.Interned, keys.InternToken(a), keys.InternToken(b))
	}
	for i := 0; i < 2; i++ {
		fmt.Fprintf(w, "%s: %d vs %d\n", keys.Integer, keys.IntToken(benchIntKey), keys.IntToken(benchIntKey))
	}
}
