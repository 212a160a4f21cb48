package redact

import (
	"strings"
	"testing"
)

func TestDetectTypes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType string
		wantVal  string
	}{
		{"email", "hubungi saya di test.user@example.com ya", "email", "test.user@example.com"},
		{"indonesian phone", "nomor saya 08123456789", "phone", "08123456789"},
		{"intl phone", "call +6281234567890 now", "phone", "+6281234567890"},
		{"card", "kartu 4111 1111 1111 1111 jangan disebar", "card", "4111 1111 1111 1111"},
		{"ssn-like", "id 123-45-6789 tercatat", "id_number", "123-45-6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Detect(tt.text, nil)
			found := false
			for _, m := range matches {
				if m.Type == tt.wantType && m.Value == tt.wantVal {
					found = true
				}
			}
			if !found {
				t.Errorf("Detect(%q) = %+v, want type %q value %q", tt.text, matches, tt.wantType, tt.wantVal)
			}
		})
	}
}

func TestDetectEmptyInput(t *testing.T) {
	if got := Detect("", nil); got != nil {
		t.Errorf("Detect(\"\") = %v, want nil", got)
	}
}

func TestRedactRemovesLiterals(t *testing.T) {
	text := "Halo, email saya test.user@example.com dan no 08123456789"
	out, matches := Redact(text, Options{})

	if strings.Contains(out, "test.user@example.com") {
		t.Errorf("redacted output still contains email: %q", out)
	}
	if strings.Contains(out, "08123456789") {
		t.Errorf("redacted output still contains phone: %q", out)
	}
	types := make(map[string]bool)
	for _, m := range matches {
		types[m.Type] = true
	}
	if !types["email"] || !types["phone"] {
		t.Errorf("detected types = %v, want email and phone", types)
	}
}

func TestRedactIdempotent(t *testing.T) {
	text := "email a@b.co dan a@b.co lagi"
	once, _ := Redact(text, Options{})
	twice, matches := Redact(once, Options{})
	if once != twice {
		t.Errorf("second redaction changed text: %q -> %q", once, twice)
	}
	if len(matches) != 0 {
		t.Errorf("second redaction found matches: %+v", matches)
	}
	if strings.Count(once, "[REDACTED_EMAIL]") != 2 {
		t.Errorf("every occurrence should be replaced: %q", once)
	}
}

func TestRedactWhitelist(t *testing.T) {
	text := "kontak admin@example.com atau spam@evil.com"
	out, matches := Redact(text, Options{
		Whitelist: func(v string) bool { return v == "admin@example.com" },
	})
	if !strings.Contains(out, "admin@example.com") {
		t.Errorf("whitelisted literal was redacted: %q", out)
	}
	if strings.Contains(out, "spam@evil.com") {
		t.Errorf("non-whitelisted literal survived: %q", out)
	}
	if len(matches) != 1 {
		t.Errorf("matches = %+v, want exactly the non-whitelisted one", matches)
	}
}

func TestRedactCustomPlaceholder(t *testing.T) {
	out, _ := Redact("email a@b.co", Options{
		ReplaceMap: map[string]string{"email": "<email>"},
	})
	if !strings.Contains(out, "<email>") {
		t.Errorf("custom placeholder not applied: %q", out)
	}
}
