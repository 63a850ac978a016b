package i18n

import "testing"

func TestLookupFallback(t *testing.T) {
	if got := Lookup(LocaleZH, "nav.dashboard"); got != "仪表盘" {
		t.Errorf("zh nav.dashboard = %q", got)
	}
	if got := Lookup(LocaleZH, "error.internal"); got != "Something went wrong" {
		t.Errorf("zh error.internal = %q, want English fallback", got)
	}
	if got := Lookup(Locale("fr"), "table.team"); got != "Team" {
		t.Errorf("fr table.team = %q, want English fallback", got)
	}
	if got := Lookup(LocaleEN, "no.such.key"); got != "no.such.key" {
		t.Errorf("missing key = %q, want the key", got)
	}
}

func TestDictionaryFillsGaps(t *testing.T) {
	zh := Dictionary(LocaleZH)
	if len(zh) != len(Keys()) {
		t.Fatalf("zh dictionary has %d keys, want %d", len(zh), len(Keys()))
	}
	if zh["error.internal"] != "Something went wrong" {
		t.Errorf("gap not filled: %q", zh["error.internal"])
	}

	zh["site.title"] = "mutated"
	if Lookup(LocaleZH, "site.title") != "PolyDelta" {
		t.Error("Dictionary must return a copy")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
		ok   bool
	}{
		{"en", LocaleEN, true},
		{"zh", LocaleZH, true},
		{"zh-Hans", LocaleZH, true},
		{"de", "", false},
		{"!!", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name                  string
		query, cookie, header string
		want                  Locale
	}{
		{"query wins", "zh", "en", "en-US", LocaleZH},
		{"cookie next", "", "zh", "en-US", LocaleZH},
		{"invalid query ignored", "xx-invalid", "zh", "", LocaleZH},
		{"accept-language", "", "", "fr-FR,zh;q=0.8", LocaleZH},
		{"unsupported header", "", "", "de-DE", LocaleEN},
		{"nothing", "", "", "", LocaleEN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Negotiate(tt.query, tt.cookie, tt.header); got != tt.want {
				t.Errorf("Negotiate = %q, want %q", got, tt.want)
			}
		})
	}
}
