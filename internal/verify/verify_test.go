package verify

import "testing"

// TestRunAllFactsPass is the regression gate: every documented epoch,
// conversion and cycle anchor must be reproduced exactly.
func TestRunAllFactsPass(t *testing.T) {
	rep := Run()
	for _, res := range rep.Results {
		if res.Err != "" {
			t.Errorf("%s: error %s (source: %s)", res.Name, res.Err, res.Source)
			continue
		}
		if !res.Pass {
			t.Errorf("%s: got %d, want %d (source: %s)", res.Name, res.Got, res.Want, res.Source)
		}
	}
	if !rep.OK() {
		t.Errorf("report: %d passed, %d failed", rep.Passed, rep.Failed)
	}
	if rep.Passed+rep.Failed != len(rep.Results) {
		t.Errorf("counts do not add up: %d + %d != %d", rep.Passed, rep.Failed, len(rep.Results))
	}
}

func TestFactsCatalogShape(t *testing.T) {
	fs := Facts()
	if len(fs) < 20 {
		t.Fatalf("catalog has %d facts, expected the full documented set", len(fs))
	}
	for _, f := range fs {
		if f.Name == "" || f.Source == "" {
			t.Errorf("fact %+v missing name or source", f)
		}
	}
}

func TestFactsReturnsCopy(t *testing.T) {
	a := Facts()
	a[0].Name = "mutated"
	b := Facts()
	if b[0].Name == "mutated" {
		t.Error("Facts() exposes the internal catalog")
	}
}
