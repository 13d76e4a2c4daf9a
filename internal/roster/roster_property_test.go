package roster

import (
	"testing"

	"pgregory.net/rapid"
)

func TestMatchProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[A-Z][a-z]{2,9}`), 1, 8).Draw(t, "names")
		r := New(names)
		input := rapid.String().Draw(t, "input")
		threshold := rapid.Float64Range(1, 100).Draw(t, "threshold")

		name, confidence, ok := r.Match(input, threshold)

		if ok {
			if !r.Contains(name) {
				t.Fatalf("matched name %q is not in the roster", name)
			}
			if confidence < threshold || confidence > 100 {
				t.Fatalf("confidence %.2f outside [threshold=%.2f, 100]", confidence, threshold)
			}
		} else {
			if name != "" || confidence != 0 {
				t.Fatalf("miss must return empty name and zero confidence, got (%q, %.2f)", name, confidence)
			}
		}
	})
}

func TestMatchRosterMembersAlwaysExact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[A-Z][a-z]{2,9}`), 1, 8).Draw(t, "names")
		r := New(names)
		pick := rapid.SampledFrom(names).Draw(t, "pick")

		name, confidence, ok := r.Match(pick, 100)
		if !ok {
			t.Fatalf("roster member %q did not match", pick)
		}
		if name != pick || confidence != 100 {
			t.Fatalf("expected (%q, 100), got (%q, %.2f)", pick, name, confidence)
		}
	})
}

func TestMatchDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := Default()
		input := rapid.StringMatching(`[A-Za-z]{1,12}`).Draw(t, "input")

		n1, c1, ok1 := r.Match(input, DefaultThreshold)
		n2, c2, ok2 := r.Match(input, DefaultThreshold)
		if n1 != n2 || c1 != c2 || ok1 != ok2 {
			t.Fatalf("same input resolved differently: (%q, %.2f, %v) vs (%q, %.2f, %v)", n1, c1, ok1, n2, c2, ok2)
		}
	})
}
