package detect

import "testing"

func TestSentiment(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLabel string
	}{
		{"positive id", "website ini bagus dan sangat membantu", "positive"},
		{"negative id", "fitur ini buruk dan sulit dipakai", "negative"},
		{"positive en", "this is a great and helpful tool", "positive"},
		{"negative en", "the interface is bad and confusing", "negative"},
		{"neutral", "saya membuka halaman utama", "neutral"},
		{"empty", "", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentiment(tt.text)
			if got.Label != tt.wantLabel {
				t.Errorf("Sentiment(%q).Label = %q (scores %v), want %q",
					tt.text, got.Label, got.Scores, tt.wantLabel)
			}
			if tt.wantLabel == "neutral" && got.Confidence != 0 {
				t.Errorf("neutral confidence = %v, want 0", got.Confidence)
			}
			if tt.wantLabel != "neutral" && (got.Confidence <= 0 || got.Confidence > 1) {
				t.Errorf("confidence = %v, want in (0,1]", got.Confidence)
			}
		})
	}
}

func TestSentimentCountsMatches(t *testing.T) {
	got := Sentiment("bagus bagus buruk")
	if got.Scores["positive"] != 2 || got.Scores["negative"] != 1 {
		t.Errorf("scores = %v, want positive=2 negative=1", got.Scores)
	}
	if got.Label != "positive" {
		t.Errorf("label = %q, want positive", got.Label)
	}
	if got.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 (all words matched)", got.Confidence)
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"indonesian", "apa yang bisa saya lakukan dengan aplikasi ini", "id"},
		{"english", "what is the best way to do this", "en"},
		{"indonesian question", "bagaimana cara kerja fitur tersebut", "id"},
		{"english statement", "the results are not what you expected", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Language(tt.text)
			if got.Code != tt.want {
				t.Errorf("Language(%q) = %q (scores %v), want %q",
					tt.text, got.Code, got.Scores, tt.want)
			}
			if got.Confidence <= 0 || got.Confidence > 1 {
				t.Errorf("confidence = %v, want in (0,1]", got.Confidence)
			}
		})
	}
}

func TestLanguageShortInputWidenedBand(t *testing.T) {
	long := Language("apa yang kamu pikirkan tentang ini semua")
	short := Language("apa ini")
	if short.Code != "id" {
		t.Fatalf("short input code = %q", short.Code)
	}
	if short.Confidence >= long.Confidence {
		t.Errorf("short input confidence %v should be below long input %v",
			short.Confidence, long.Confidence)
	}
}

func TestLanguageEmpty(t *testing.T) {
	got := Language("")
	if got.Code != "id" || got.Confidence != 0 {
		t.Errorf("empty input: %+v", got)
	}
}
