package nalar

import (
	"strings"
	"testing"
)

func TestAnswerSnippetPicksRelevantSentence(t *testing.T) {
	content := "Golang adalah bahasa pemrograman. " +
		"Saya menggunakan golang untuk membangun layanan backend. " +
		"Cuaca hari ini cerah sekali."

	got := answerSnippet(content, "golang backend")
	if got == "" {
		t.Fatal("expected a snippet, got empty string")
	}
	if !strings.Contains(got, "backend") {
		t.Errorf("snippet %q missing the best-matching sentence", got)
	}
	if strings.Contains(got, "Cuaca") {
		t.Errorf("snippet %q includes an irrelevant sentence", got)
	}
}

func TestAnswerSnippetNoOverlap(t *testing.T) {
	if got := answerSnippet("Kalimat tanpa hubungan apa pun.", "mesin turing"); got != "" {
		t.Errorf("snippet = %q, want empty for zero overlap", got)
	}
}

func TestAnswerSnippetRespectsLength(t *testing.T) {
	long := strings.Repeat("golang dipakai di banyak layanan produksi skala besar. ", 20)
	got := answerSnippet(long, "golang layanan")
	if got == "" {
		t.Fatal("expected a snippet")
	}
	if len(got) > snippetMaxLen {
		t.Errorf("snippet length = %d, want <= %d", len(got), snippetMaxLen)
	}
}
