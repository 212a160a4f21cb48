package graph

// Default returns the built-in knowledge graph snapshot. The dataset is
// validated at construction; a panic here means the tables themselves
// are broken, which is a programming error, not a runtime condition.
func Default() *Graph {
	g, err := New(defaultNodes, defaultEdges)
	if err != nil {
		panic(err)
	}
	return g
}

var defaultNodes = []Node{
	{
		ID:         "ai",
		Name:       "Kecerdasan Buatan",
		Aliases:    []string{"ai", "artificial intelligence", "kecerdasan buatan"},
		Definition: "cabang ilmu komputer yang membuat mesin mampu meniru kecerdasan manusia.",
		Category:   "teknologi",
		Description: "Mencakup pembelajaran, penalaran, dan persepsi; diterapkan mulai dari " +
			"asisten virtual sampai kendaraan otonom.",
		Applications:  []string{"asisten virtual", "rekomendasi konten", "deteksi penipuan"},
		Prerequisites: []string{"matematika dasar", "pemrograman"},
	},
	{
		ID:         "machine_learning",
		Name:       "Machine Learning",
		Aliases:    []string{"ml", "pembelajaran mesin"},
		Definition: "pendekatan AI di mana model belajar pola dari data tanpa diprogram eksplisit.",
		Category:   "teknologi",
		Description: "Meliputi supervised, unsupervised, dan reinforcement learning dengan " +
			"algoritma seperti regresi, pohon keputusan, dan jaringan saraf.",
		Applications:  []string{"prediksi harga", "klasifikasi gambar"},
		Prerequisites: []string{"statistika", "python"},
	},
	{
		ID:         "nlp",
		Name:       "Natural Language Processing",
		Aliases:    []string{"nlp", "pemrosesan bahasa alami"},
		Definition: "bidang AI yang memproses dan memahami bahasa manusia.",
		Category:   "teknologi",
		Description: "Digunakan untuk chatbot, terjemahan mesin, analisis sentimen, dan " +
			"ekstraksi informasi dari teks.",
		Applications: []string{"chatbot", "terjemahan otomatis", "analisis sentimen"},
	},
	{
		ID:          "deep_learning",
		Name:        "Deep Learning",
		Aliases:     []string{"dl", "pembelajaran mendalam"},
		Definition:  "cabang machine learning berbasis jaringan saraf berlapis banyak.",
		Category:    "teknologi",
		Description: "Unggul pada data tak terstruktur seperti gambar, suara, dan teks.",
		Prerequisites: []string{"machine learning", "aljabar linear"},
	},
	{
		ID:          "computer_vision",
		Name:        "Computer Vision",
		Aliases:     []string{"cv", "visi komputer"},
		Definition:  "bidang AI yang membuat mesin memahami citra dan video.",
		Category:    "teknologi",
		Description: "Dipakai untuk pengenalan wajah, kendaraan otonom, dan inspeksi kualitas.",
	},
	{
		ID:          "data_science",
		Name:        "Data Science",
		Aliases:     []string{"sains data"},
		Definition:  "disiplin yang menggabungkan statistika, pemrograman, dan domain untuk menggali wawasan dari data.",
		Category:    "teknologi",
		Description: "Alur kerjanya meliputi pengumpulan, pembersihan, eksplorasi, dan pemodelan data.",
	},
	{
		ID:          "web_development",
		Name:        "Web Development",
		Aliases:     []string{"webdev", "pengembangan web"},
		Definition:  "pembuatan aplikasi dan situs yang berjalan di browser.",
		Category:    "teknologi",
		Description: "Terbagi menjadi front-end (antarmuka) dan back-end (server dan data).",
	},
	{
		ID:         "javascript",
		Name:       "JavaScript",
		Aliases:    []string{"js"},
		Definition: "bahasa pemrograman utama untuk web interaktif.",
		Category:   "keahlian",
	},
	{
		ID:         "react",
		Name:       "React",
		Aliases:    []string{"reactjs", "react.js"},
		Definition: "pustaka JavaScript untuk membangun antarmuka berbasis komponen.",
		Category:   "keahlian",
	},
	{
		ID:         "golang",
		Name:       "Go",
		Aliases:    []string{"golang"},
		Definition: "bahasa pemrograman untuk layanan backend yang sederhana dan cepat.",
		Category:   "keahlian",
	},
}

var defaultEdges = []Edge{
	{Source: "ai", Target: "machine_learning", Type: "subfield", Weight: 0.9, Description: "machine learning adalah subbidang AI"},
	{Source: "ai", Target: "nlp", Type: "subfield", Weight: 0.85, Description: "NLP adalah subbidang AI"},
	{Source: "ai", Target: "computer_vision", Type: "subfield", Weight: 0.8},
	{Source: "machine_learning", Target: "deep_learning", Type: "subfield", Weight: 0.9},
	{Source: "machine_learning", Target: "data_science", Type: "related", Weight: 0.75},
	{Source: "nlp", Target: "deep_learning", Type: "uses", Weight: 0.7},
	{Source: "web_development", Target: "javascript", Type: "uses", Weight: 0.9},
	{Source: "javascript", Target: "react", Type: "ecosystem", Weight: 0.85},
	{Source: "web_development", Target: "golang", Type: "uses", Weight: 0.6},
}
