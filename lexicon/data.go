package lexicon

// builtinEntries is the static dictionary, grouped by language code.
// Canonical forms and variants are stored pre-folded (lowercase, no
// diacritics). Declaration order is the variant-scan order.
var builtinEntries = map[string][]Entry{
	"id": {
		{
			Canonical: "belajar", Definition: "mempelajari sesuatu", Category: "aktivitas",
			PartOfSpeech: "verb", Lemma: "ajar",
			Variants: []string{"mempelajari", "pembelajaran"},
			Synonyms: []string{"mengkaji", "menelaah", "mendalami"},
		},
		{
			Canonical: "kerja", Definition: "melakukan pekerjaan", Category: "aktivitas",
			PartOfSpeech: "verb", Lemma: "kerja",
			Variants: []string{"bekerja", "pekerjaan", "mengerjakan"},
			Synonyms: []string{"tugas", "karier"},
		},
		{
			Canonical: "bantuan", Definition: "pertolongan", Category: "layanan",
			PartOfSpeech: "noun", Lemma: "bantu",
			Variants: []string{"membantu", "dibantu", "bantu"},
			Synonyms: []string{"pertolongan", "dukungan"},
		},
		{
			Canonical: "bagus", Definition: "berkualitas baik", Category: "penilaian",
			PartOfSpeech: "adjective",
			Variants:     []string{"bgus", "baguss"},
			Synonyms:     []string{"baik", "hebat", "keren"},
			Polarity:     1, Intensity: 0.8,
		},
		{
			Canonical: "baik", Definition: "tidak jahat; elok", Category: "penilaian",
			PartOfSpeech: "adjective",
			Synonyms:     []string{"bagus", "ramah"},
			Polarity:     1, Intensity: 0.6,
		},
		{
			Canonical: "buruk", Definition: "tidak baik", Category: "penilaian",
			PartOfSpeech: "adjective",
			Variants:     []string{"jelek", "parah"},
			Synonyms:     []string{"jelek"},
			Polarity:     -1, Intensity: 0.8,
		},
		{
			Canonical: "senang", Definition: "merasa gembira", Category: "emosi",
			PartOfSpeech: "adjective",
			Variants:     []string{"gembira", "bahagia"},
			Synonyms:     []string{"gembira", "bahagia", "suka"},
			Polarity:     1, Intensity: 0.9,
		},
		{
			Canonical: "sedih", Definition: "merasa susah hati", Category: "emosi",
			PartOfSpeech: "adjective",
			Variants:     []string{"bersedih"},
			Synonyms:     []string{"murung", "kecewa"},
			Polarity:     -1, Intensity: 0.9,
		},
		{
			Canonical: "sulit", Definition: "tidak mudah", Category: "penilaian",
			PartOfSpeech: "adjective",
			Variants:     []string{"susah", "sukar"},
			Synonyms:     []string{"susah", "rumit"},
			Polarity:     -1, Intensity: 0.5,
		},
		{
			Canonical: "mudah", Definition: "tidak sulit", Category: "penilaian",
			PartOfSpeech: "adjective",
			Variants:     []string{"gampang"},
			Synonyms:     []string{"gampang", "sederhana"},
			Polarity:     1, Intensity: 0.5,
		},
		{
			Canonical: "tanya", Definition: "meminta keterangan", Category: "komunikasi",
			PartOfSpeech: "verb", Lemma: "tanya",
			Variants: []string{"bertanya", "menanyakan", "pertanyaan"},
			Synonyms: []string{"bertanya"},
		},
		{
			Canonical: "jawab", Definition: "memberi tanggapan", Category: "komunikasi",
			PartOfSpeech: "verb", Lemma: "jawab",
			Variants: []string{"menjawab", "jawaban"},
			Synonyms: []string{"tanggapan", "balasan"},
		},
		{
			Canonical: "kecerdasan buatan", Definition: "simulasi kecerdasan manusia oleh mesin",
			Category: "teknologi", PartOfSpeech: "noun",
			Variants: []string{"ai", "artificial intelligence"},
			Synonyms: []string{"ai", "machine intelligence"},
		},
		{
			Canonical: "terima kasih", Definition: "ungkapan rasa syukur", Category: "komunikasi",
			Variants: []string{"makasih", "thanks", "trims"},
			Synonyms: []string{"makasih"},
			Polarity: 1, Intensity: 0.6, Register: "formal",
		},
		{
			Canonical: "halo", Definition: "sapaan pembuka", Category: "komunikasi",
			Variants: []string{"hai", "helo", "hallo"},
			Synonyms: []string{"hai", "selamat"},
			Register: "informal",
		},
		{
			Canonical: "proyek", Definition: "rencana pekerjaan", Category: "aktivitas",
			PartOfSpeech: "noun",
			Variants:     []string{"projek", "project"},
			Synonyms:     []string{"karya", "pekerjaan"},
		},
		{
			Canonical: "data", Definition: "kumpulan fakta", Category: "teknologi",
			PartOfSpeech: "noun",
			Synonyms:     []string{"informasi"},
		},
	},
	"en": {
		{
			Canonical: "learn", Definition: "acquire knowledge or skill", Category: "activity",
			PartOfSpeech: "verb", Lemma: "learn",
			Variants: []string{"learning", "learned", "learnt"},
			Synonyms: []string{"study", "master"},
		},
		{
			Canonical: "work", Definition: "activity involving effort", Category: "activity",
			PartOfSpeech: "verb", Lemma: "work",
			Variants: []string{"working", "worked", "works"},
			Synonyms: []string{"job", "task", "career"},
		},
		{
			Canonical: "help", Definition: "assistance", Category: "service",
			PartOfSpeech: "noun", Lemma: "help",
			Variants: []string{"helping", "helped", "helps"},
			Synonyms: []string{"assistance", "support", "aid"},
		},
		{
			Canonical: "good", Definition: "of high quality", Category: "judgement",
			PartOfSpeech: "adjective",
			Variants:     []string{"goood"},
			Synonyms:     []string{"great", "nice", "fine"},
			Polarity:     1, Intensity: 0.6,
		},
		{
			Canonical: "great", Definition: "excellent", Category: "judgement",
			PartOfSpeech: "adjective",
			Synonyms:     []string{"good", "excellent", "awesome"},
			Polarity:     1, Intensity: 0.8,
		},
		{
			Canonical: "bad", Definition: "of poor quality", Category: "judgement",
			PartOfSpeech: "adjective",
			Synonyms:     []string{"poor", "awful"},
			Polarity:     -1, Intensity: 0.7,
		},
		{
			Canonical: "happy", Definition: "feeling pleasure", Category: "emotion",
			PartOfSpeech: "adjective",
			Synonyms:     []string{"glad", "pleased"},
			Polarity:     1, Intensity: 0.9,
		},
		{
			Canonical: "sad", Definition: "feeling sorrow", Category: "emotion",
			PartOfSpeech: "adjective",
			Synonyms:     []string{"unhappy", "upset"},
			Polarity:     -1, Intensity: 0.9,
		},
		{
			Canonical: "difficult", Definition: "not easy", Category: "judgement",
			PartOfSpeech: "adjective",
			Variants:     []string{"hard"},
			Synonyms:     []string{"hard", "tough"},
			Polarity:     -1, Intensity: 0.5,
		},
		{
			Canonical: "question", Definition: "a request for information", Category: "communication",
			PartOfSpeech: "noun", Lemma: "question",
			Variants: []string{"questions", "ask", "asking"},
			Synonyms: []string{"query", "inquiry"},
		},
		{
			Canonical: "artificial intelligence", Definition: "machine simulation of human intelligence",
			Category: "technology", PartOfSpeech: "noun",
			Variants: []string{"ai"},
			Synonyms: []string{"ai", "machine intelligence"},
		},
		{
			Canonical: "thank you", Definition: "expression of gratitude", Category: "communication",
			Variants: []string{"thanks", "thx"},
			Synonyms: []string{"thanks"},
			Polarity: 1, Intensity: 0.6, Register: "formal",
		},
		{
			Canonical: "hello", Definition: "a greeting", Category: "communication",
			Variants: []string{"hi", "hey"},
			Synonyms: []string{"hi", "greetings"},
			Register: "informal",
		},
		{
			Canonical: "project", Definition: "a planned piece of work", Category: "activity",
			PartOfSpeech: "noun",
			Variants:     []string{"projects"},
			Synonyms:     []string{"work", "undertaking"},
		},
	},
}
