package corpus

// builtinExamples is the static tagged sentence collection.
var builtinExamples = []Example{
	{ID: "greet-1", Text: "halo apa kabar", Language: "id", Type: "greeting", Context: "pembuka"},
	{ID: "greet-2", Text: "selamat pagi semua", Language: "id", Type: "greeting", Context: "pembuka"},
	{ID: "greet-3", Text: "hello how are you", Language: "en", Type: "greeting", Context: "opening"},
	{ID: "ask-1", Text: "apa itu kecerdasan buatan", Language: "id", Type: "question", Context: "pengetahuan", Domain: "teknologi"},
	{ID: "ask-2", Text: "bagaimana cara belajar javascript", Language: "id", Type: "question", Context: "pengetahuan", Domain: "teknologi"},
	{ID: "ask-3", Text: "what is machine learning", Language: "en", Type: "question", Context: "knowledge", Domain: "technology"},
	{ID: "ask-4", Text: "apa saja proyek yang pernah dikerjakan", Language: "id", Type: "question", Context: "portofolio"},
	{ID: "help-1", Text: "tolong bantu saya", Language: "id", Type: "request", Context: "bantuan"},
	{ID: "help-2", Text: "can you help me with this", Language: "en", Type: "request", Context: "assistance"},
	{ID: "info-1", Text: "ceritakan tentang pengalaman kerja kamu", Language: "id", Type: "request", Context: "portofolio"},
	{ID: "info-2", Text: "tell me about your certificates", Language: "en", Type: "request", Context: "portfolio"},
	{ID: "sent-pos-1", Text: "website ini bagus sekali", Language: "id", Type: "statement", Context: "umpan balik", Sentiment: "positive"},
	{ID: "sent-neg-1", Text: "fitur ini sulit digunakan", Language: "id", Type: "statement", Context: "umpan balik", Sentiment: "negative"},
	{ID: "thanks-1", Text: "terima kasih banyak atas bantuannya", Language: "id", Type: "gratitude", Context: "penutup", Sentiment: "positive"},
	{ID: "bye-1", Text: "sampai jumpa lagi", Language: "id", Type: "farewell", Context: "penutup"},
	{ID: "bye-2", Text: "goodbye see you later", Language: "en", Type: "farewell", Context: "closing"},
}
