// Package verify checks the conversion engine against a fixed catalog of
// documented epoch values and cycle anchors. It is a correctness gate: the
// package test fails the build on any mismatch, and the same report is
// exposed through the CLI and the API for operational spot checks.
package verify

// Result is the outcome of checking one documented fact.
type Result struct {
	Fact
	Got  int64  `json:"got"`
	Pass bool   `json:"pass"`
	Err  string `json:"error,omitempty"`
}

// Report aggregates per-fact results.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// OK reports whether every documented fact checked out.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Run evaluates the whole catalog and returns the per-fact report.
func Run() Report {
	rep := Report{Results: make([]Result, 0, len(facts))}
	for _, f := range facts {
		res := Result{Fact: f}
		got, err := f.got()
		if err != nil {
			res.Err = err.Error()
		} else {
			res.Got = got
			res.Pass = got == f.Want
		}
		if res.Pass {
			rep.Passed++
		} else {
			rep.Failed++
		}
		rep.Results = append(rep.Results, res)
	}
	return rep
}
