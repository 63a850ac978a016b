package slug

import "testing"

func TestToTitle(t *testing.T) {
	tests := map[string]string{
		"la-lakers":             "La Lakers",
		"brazil":                "Brazil",
		"golden-state-warriors": "Golden State Warriors",
		"la--lakers":            "La Lakers",
		"-la-lakers-":           "La Lakers",
		"---":                   "",
		"":                      "",
	}
	for in, want := range tests {
		if got := ToTitle(in); got != want {
			t.Errorf("ToTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMake(t *testing.T) {
	tests := map[string]string{
		"LA Lakers":              "la-lakers",
		"Atlético Madrid":        "atletico-madrid",
		"St. Louis":              "st-louis",
		"  Paris Saint-Germain":  "paris-saint-germain",
		"Bayern München":         "bayern-munchen",
		"Brighton & Hove Albion": "brighton-hove-albion",
		"":                       "",
	}
	for in, want := range tests {
		if got := Make(in); got != want {
			t.Errorf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeThenToTitleIsLossy(t *testing.T) {
	if got := ToTitle(Make("LA Lakers")); got != "La Lakers" {
		t.Fatalf("round trip = %q", got)
	}
}
