package lexicon

import "testing"

func TestMeaningExactAndVariant(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name     string
		word     string
		lang     string
		wantWord string
		known    bool
	}{
		{"exact canonical id", "belajar", "id", "belajar", true},
		{"variant id", "mempelajari", "id", "belajar", true},
		{"case folded", "Belajar", "id", "belajar", true},
		{"ai variant id", "ai", "id", "kecerdasan buatan", true},
		{"exact en", "help", "en", "help", true},
		{"variant en", "helping", "en", "help", true},
		{"unknown", "xyzzy", "id", "xyzzy", false},
		{"wrong language", "belajar", "en", "belajar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := s.Meaning(tt.word, tt.lang)
			if m.Known != tt.known {
				t.Fatalf("Meaning(%q, %q): Known=%v, want %v", tt.word, tt.lang, m.Known, tt.known)
			}
			if m.Word != tt.wantWord {
				t.Errorf("Meaning(%q, %q): Word=%q, want %q", tt.word, tt.lang, m.Word, tt.wantWord)
			}
			if tt.known && m.Confidence <= 0 {
				t.Errorf("known word should have positive confidence, got %v", m.Confidence)
			}
			if !tt.known && m.Confidence != 0 {
				t.Errorf("unknown word must have zero confidence, got %v", m.Confidence)
			}
		})
	}
}

func TestLemma(t *testing.T) {
	s := NewStore()
	if got := s.Lemma("bekerja", "id"); got != "kerja" {
		t.Errorf("Lemma(bekerja) = %q, want kerja", got)
	}
	if got := s.Lemma("learning", "en"); got != "learn" {
		t.Errorf("Lemma(learning) = %q, want learn", got)
	}
	// Unknown words fold through unchanged.
	if got := s.Lemma("Zork", "id"); got != "zork" {
		t.Errorf("Lemma(Zork) = %q, want zork", got)
	}
}

func TestSynonymsAndVariants(t *testing.T) {
	s := NewStore()
	syn := s.Synonyms("senang", "id")
	if len(syn) == 0 {
		t.Fatal("expected synonyms for senang")
	}
	found := false
	for _, w := range syn {
		if w == "gembira" {
			found = true
		}
	}
	if !found {
		t.Errorf("synonyms for senang missing gembira: %v", syn)
	}

	if got := s.Synonyms("xyzzy", "id"); got != nil {
		t.Errorf("unknown word synonyms should be nil, got %v", got)
	}
	if v := s.Variants("terima kasih", "id"); len(v) == 0 {
		t.Error("expected variants for terima kasih")
	}
}

func TestNormalize(t *testing.T) {
	s := NewStore()
	tests := []struct{ in, lang, want string }{
		{"Mempelajari", "id", "belajar"},
		{"makasih", "id", "terima kasih"},
		{"Café", "id", "cafe"},
		{"THANKS", "en", "thank you"},
	}
	for _, tt := range tests {
		if got := s.Normalize(tt.in, tt.lang); got != tt.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tt.in, tt.lang, got, tt.want)
		}
	}
}

func TestPolarity(t *testing.T) {
	s := NewStore()
	if m := s.Meaning("bagus", "id"); m.Polarity != 1 {
		t.Errorf("bagus polarity = %d, want 1", m.Polarity)
	}
	if m := s.Meaning("buruk", "id"); m.Polarity != -1 {
		t.Errorf("buruk polarity = %d, want -1", m.Polarity)
	}
}
