package classify

import (
	"regexp"
	"strings"
)

var questionWords = []string{
	"apa", "apakah", "siapa", "kapan", "dimana", "di mana", "mengapa",
	"kenapa", "bagaimana", "berapa",
	"what", "who", "when", "where", "why", "how", "which",
}

func startsWithQuestionWord(lower string) bool {
	for _, q := range questionWords {
		if strings.HasPrefix(lower, q+" ") || lower == q {
			return true
		}
	}
	return false
}

var greetingWords = []string{
	"halo", "hai", "hello", "hi", "selamat pagi", "selamat siang",
	"selamat sore", "selamat malam", "good morning", "good evening",
}

func containsGreetingWord(lower string) bool {
	for _, g := range greetingWords {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}

// buildIntents returns the registered intents in declaration order,
// which is also the tie-break order.
func buildIntents() []intentDef {
	return []intentDef{
		{
			name:     "greeting",
			examples: []string{"halo", "hai", "apa kabar", "hello", "hi there", "selamat pagi"},
			triggers: []*regexp.Regexp{
				regexp.MustCompile(`^(halo|hai|hello|hi)\b`),
				regexp.MustCompile(`^selamat (pagi|siang|sore|malam)\b`),
			},
			rules: []contextRule{
				{match: containsGreetingWord, weight: 0.3},
			},
		},
		{
			name:     "ask_question",
			examples: []string{"apa itu", "apakah", "what is", "jelaskan apa", "maksudnya apa"},
			triggers: []*regexp.Regexp{
				regexp.MustCompile(`^(apa|apakah|siapa|kapan|mengapa|kenapa|bagaimana|berapa)\b`),
				regexp.MustCompile(`^(what|who|when|where|why|how|which)\b`),
			},
			rules: []contextRule{
				{match: func(lower string) bool { return strings.HasSuffix(lower, "?") }, weight: 0.2},
				{match: startsWithQuestionWord, weight: 0.25},
			},
		},
		{
			name:     "request_information",
			examples: []string{"ceritakan tentang", "jelaskan tentang", "tell me about", "info tentang", "informasi mengenai"},
			triggers: []*regexp.Regexp{
				regexp.MustCompile(`^(ceritakan|jelaskan|sebutkan|tunjukkan)\b`),
				regexp.MustCompile(`^(tell|show|describe|explain|list)\b`),
			},
			rules: []contextRule{
				{match: func(lower string) bool {
					return strings.Contains(lower, "tentang") || strings.Contains(lower, "about")
				}, weight: 0.2},
			},
		},
		{
			name:     "request_help",
			examples: []string{"tolong bantu", "bisa bantu", "minta tolong", "can you help", "need help", "butuh bantuan"},
			triggers: []*regexp.Regexp{
				regexp.MustCompile(`\b(tolong|bantu|bantuan)\b`),
				regexp.MustCompile(`\bhelp\b`),
			},
			rules: []contextRule{
				{match: func(lower string) bool {
					return strings.HasPrefix(lower, "tolong") || strings.HasPrefix(lower, "please")
				}, weight: 0.2},
			},
		},
		{
			name:     "gratitude",
			examples: []string{"terima kasih", "makasih", "thank you", "thanks", "trims"},
			triggers: []*regexp.Regexp{
				regexp.MustCompile(`\b(terima kasih|makasih|trims)\b`),
				regexp.MustCompile(`\bthank(s| you)?\b`),
			},
		},
		{
			name:     "farewell",
			examples: []string{"sampai jumpa", "selamat tinggal", "dadah", "goodbye", "see you", "bye"},
			triggers: []*regexp.Regexp{
				regexp.MustCompile(`\b(sampai jumpa|selamat tinggal|dadah)\b`),
				regexp.MustCompile(`\b(goodbye|bye)\b`),
			},
		},
	}
}

// buildEntities returns the per-type extraction patterns. One Entity is
// emitted per regex match with constant confidence.
func buildEntities() []entityDef {
	return []entityDef{
		{
			typ:     "PERSON",
			re:      regexp.MustCompile(`\b(?:pak|bu|bapak|ibu|mas|mbak|mr\.?|mrs\.?|ms\.?)\s+(\p{Lu}\p{Ll}+)`),
			context: "orang yang disebut",
			group:   1,
		},
		{
			typ:     "LOCATION",
			re:      regexp.MustCompile(`\b(?:di|ke|dari|at|in|from)\s+(\p{Lu}\p{Ll}+(?:\s+\p{Lu}\p{Ll}+)?)`),
			context: "tempat yang disebut",
			group:   1,
		},
		{
			typ:     "DATE",
			re:      regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{1,2}\s+(?:januari|februari|maret|april|mei|juni|juli|agustus|september|oktober|november|desember|january|february|march|june|july|august|october|december)\s+\d{4}\b`),
			context: "tanggal",
		},
		{
			typ:     "TIME",
			re:      regexp.MustCompile(`\b\d{1,2}[:.]\d{2}\b|\bjam\s+\d{1,2}\b`),
			context: "waktu",
		},
		{
			typ:     "ORGANIZATION",
			re:      regexp.MustCompile(`\b(?:PT|CV|Universitas|Institut|Politeknik)\s+\p{Lu}[\p{L} ]*`),
			context: "organisasi",
		},
		{
			typ:     "SKILL",
			re:      regexp.MustCompile(`(?i)\b(javascript|typescript|python|golang|java|react|vue|angular|node\.?js|laravel|docker|kubernetes|sql|html|css)\b`),
			context: "keahlian teknis",
		},
		{
			typ:     "PRODUCT",
			re:      regexp.MustCompile(`(?i)\b(website|aplikasi|mobile app|dashboard|api|chatbot|portfolio)\b`),
			context: "produk",
		},
		{
			typ:     "TOPIC",
			re:      regexp.MustCompile(`(?i)\b(kecerdasan buatan|artificial intelligence|machine learning|deep learning|data science|nlp|web development|computer vision)\b`),
			context: "topik pengetahuan",
		},
	}
}

var imperativeLeads = []string{
	"tolong", "mohon", "silakan", "coba", "buat", "buka", "tampilkan",
	"kirim", "cari", "jangan",
	"please", "open", "show", "make", "send", "find", "stop",
}

func buildSentenceTypes() []sentenceTypeDef {
	return []sentenceTypeDef{
		{
			name: "interrogative",
			score: func(text, lower string) float64 {
				score := 0.0
				if strings.HasSuffix(text, "?") {
					score += 0.9
				}
				if startsWithQuestionWord(lower) {
					score += 0.6
				}
				return score
			},
		},
		{
			name: "imperative",
			score: func(text, lower string) float64 {
				for _, lead := range imperativeLeads {
					if strings.HasPrefix(lower, lead+" ") || lower == lead {
						return 0.8
					}
				}
				return 0
			},
		},
		{
			name: "exclamatory",
			score: func(text, lower string) float64 {
				if strings.HasSuffix(text, "!") {
					return 0.85
				}
				return 0
			},
		},
		{
			name: "declarative",
			score: func(text, lower string) float64 {
				// Weak default so any positive signal above wins.
				return 0.5
			},
		},
	}
}
