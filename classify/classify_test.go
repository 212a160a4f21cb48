package classify

import "testing"

func TestIntent(t *testing.T) {
	c := New()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"greeting id", "halo apa kabar", "greeting"},
		{"greeting en", "hello there", "greeting"},
		{"question id", "Apa itu kecerdasan buatan?", "ask_question"},
		{"question en", "what is machine learning", "ask_question"},
		{"information", "ceritakan tentang pengalaman kerjamu", "request_information"},
		{"help", "tolong bantu saya dengan ini", "request_help"},
		{"gratitude", "terima kasih banyak", "gratitude"},
		{"farewell", "oke sampai jumpa", "farewell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Intent(tt.text)
			if got.Intent != tt.want {
				t.Errorf("Intent(%q) = %q (scores %v), want %q",
					tt.text, got.Intent, got.Scores, tt.want)
			}
			if got.Confidence <= 0 || got.Confidence > 1 {
				t.Errorf("confidence = %v, want in (0,1]", got.Confidence)
			}
		})
	}
}

func TestIntentQuestionConfidence(t *testing.T) {
	c := New()
	got := c.Intent("Apa itu kecerdasan buatan?")
	if got.Intent != "ask_question" {
		t.Fatalf("intent = %q", got.Intent)
	}
	if got.Confidence <= 0.5 {
		t.Errorf("confidence = %v, want > 0.5", got.Confidence)
	}
}

func TestIntentEmptyInput(t *testing.T) {
	c := New()
	got := c.Intent("   ")
	if got.Intent != "unknown" || got.Confidence != 0 {
		t.Errorf("empty input: %+v", got)
	}
}

func TestIntentScoresClamped(t *testing.T) {
	c := New()
	got := c.Intent("halo hai hello hi selamat pagi apa kabar")
	for intent, score := range got.Scores {
		if score < 0 || score > 1 {
			t.Errorf("score for %s = %v, want clamped to [0,1]", intent, score)
		}
	}
}

func TestEntities(t *testing.T) {
	c := New()
	tests := []struct {
		name     string
		text     string
		wantType string
		wantVal  string
	}{
		{"skill", "saya sedang belajar JavaScript dan React", "SKILL", "JavaScript"},
		{"topic", "apa itu machine learning", "TOPIC", "machine learning"},
		{"person", "tadi bertemu pak Budi", "PERSON", "Budi"},
		{"location", "saya tinggal di Jakarta", "LOCATION", "Jakarta"},
		{"date", "deadline 12/08/2025 ya", "DATE", "12/08/2025"},
		{"time", "rapat jam 10 pagi", "TIME", "jam 10"},
		{"organization", "lulusan Universitas Indonesia", "ORGANIZATION", "Universitas Indonesia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := c.Entities(tt.text)
			found := false
			for _, e := range entities {
				if e.Type == tt.wantType && e.Value == tt.wantVal {
					found = true
					if e.Confidence != entityConfidence {
						t.Errorf("confidence = %v, want %v", e.Confidence, entityConfidence)
					}
					if e.Context == "" {
						t.Error("entity should carry its type's default context")
					}
				}
			}
			if !found {
				t.Errorf("Entities(%q) = %+v, want %s %q", tt.text, entities, tt.wantType, tt.wantVal)
			}
		})
	}
}

func TestEntitiesEmptyInput(t *testing.T) {
	c := New()
	if got := c.Entities(""); got != nil {
		t.Errorf("Entities(\"\") = %v, want nil", got)
	}
}

func TestSentenceType(t *testing.T) {
	c := New()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"interrogative by punctuation", "Apa itu kecerdasan buatan?", "interrogative"},
		{"interrogative by question word", "bagaimana cara kerjanya", "interrogative"},
		{"imperative", "tolong buka halaman utama", "imperative"},
		{"exclamatory", "keren sekali!", "exclamatory"},
		{"declarative", "saya sedang belajar pemrograman", "declarative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.SentenceType(tt.text)
			if got.Type != tt.want {
				t.Errorf("SentenceType(%q) = %q (scores %v), want %q",
					tt.text, got.Type, got.Scores, tt.want)
			}
		})
	}
}
