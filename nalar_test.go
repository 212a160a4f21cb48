package nalar

import (
	"strings"
	"testing"

	"github.com/rizkyfauzan/nalar/coref"
	"github.com/rizkyfauzan/nalar/kb"
)

func newTestEngine(t *testing.T, opts ...Option) Engine {
	t.Helper()
	e, err := New(DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestProcessRedactsPII(t *testing.T) {
	e := newTestEngine(t)
	res := e.Process("Halo, email saya test.user@example.com dan no 08123456789")

	types := make(map[string]bool)
	for _, d := range res.Detections {
		types[d.Type] = true
	}
	if !types["email"] || !types["phone"] {
		t.Errorf("detection types = %v, want email and phone", types)
	}
	if strings.Contains(res.Normalized, "test.user@example.com") {
		t.Error("normalized text still contains the email literal")
	}
	if strings.Contains(res.Normalized, "08123456789") {
		t.Error("normalized text still contains the phone literal")
	}
}

func TestProcessSpellCorrectionFromKB(t *testing.T) {
	doc := &kb.Document{
		Cards: []kb.Card{
			{Title: "belajar javascript"},
			{Title: "react components"},
		},
	}
	e := newTestEngine(t, WithDocument(doc))
	res := e.Process("belajar javasript")

	if !strings.Contains(res.Normalized, "javascript") {
		t.Errorf("normalized = %q, want javascript spelled correctly", res.Normalized)
	}
	if len(res.SpellCorrections) < 1 {
		t.Fatal("expected at least one spell correction")
	}
	if res.SpellCorrections[0].Corrected != "javascript" {
		t.Errorf("correction = %+v, want javascript", res.SpellCorrections[0])
	}
}

func TestProcessQuestionClassification(t *testing.T) {
	e := newTestEngine(t)
	res := e.Process("Apa itu kecerdasan buatan?")

	if res.SentenceType == nil || res.SentenceType.Type != "interrogative" {
		t.Errorf("sentence type = %+v, want interrogative", res.SentenceType)
	}
	if res.Intent == nil || res.Intent.Intent != "ask_question" {
		t.Fatalf("intent = %+v, want ask_question", res.Intent)
	}
	if res.Intent.Confidence <= 0.5 {
		t.Errorf("intent confidence = %v, want > 0.5", res.Intent.Confidence)
	}
	if res.ResponseApproach != "answer_question" {
		t.Errorf("approach = %q, want answer_question", res.ResponseApproach)
	}
	if !res.ReadyToRespond {
		t.Errorf("ready = false at confidence %v, want true", res.Confidence)
	}

	foundTopic := false
	for _, ent := range res.Entities {
		if ent.Type == "TOPIC" {
			foundTopic = true
		}
	}
	if !foundTopic {
		t.Errorf("entities %v missing TOPIC", res.Entities)
	}
}

func TestAnswerKnowledgeGraph(t *testing.T) {
	e := newTestEngine(t)
	ans := e.Answer("ai")

	if !ans.Success {
		t.Fatalf("Answer(ai) = %+v, want success", ans)
	}
	if !strings.Contains(ans.Answer, "cabang ilmu komputer") {
		t.Errorf("answer missing definition: %q", ans.Answer)
	}
	related := false
	for _, id := range ans.RelatedNodes {
		if id == "machine_learning" || id == "nlp" {
			related = true
		}
	}
	if !related {
		t.Errorf("related nodes %v missing machine_learning/nlp", ans.RelatedNodes)
	}
}

func TestQueryDepthGating(t *testing.T) {
	doc := &kb.Document{
		AI: map[string]string{
			"pengalaman kerja": "Lima tahun pengalaman kerja sebagai frontend developer",
		},
	}
	e := newTestEngine(t, WithDocument(doc))

	standard := e.Query("pengalamn kerja", WithDepth("standard"), WithCache(false))
	if len(standard) != 1 || standard[0].MatchType != "fuzzy" {
		t.Fatalf("standard depth = %+v, want one fuzzy match", standard)
	}

	quick := e.Query("pengalamn kerja", WithDepth("quick"), WithCache(false))
	if len(quick) != 0 {
		t.Errorf("quick depth = %+v, want no results", quick)
	}
}

func TestProcessCoreference(t *testing.T) {
	history := &coref.TurnHistory{}
	history.Append(coref.Turn{Content: "Kemarin saya bertemu Budi", Entities: []string{"Budi"}})

	e := newTestEngine(t)
	res := e.Process("dia suka golang", WithContext(history))

	if !strings.Contains(res.Normalized, "budi") {
		t.Errorf("normalized = %q, want pronoun resolved to budi", res.Normalized)
	}
	if res.CorefMapping["dia"] != "Budi" {
		t.Errorf("mapping = %v, want dia -> Budi", res.CorefMapping)
	}
}

func TestProcessComponentToggles(t *testing.T) {
	e := newTestEngine(t)
	res := e.Process("halo semua", WithoutNLU(), WithoutCorpus(), WithoutLexical())

	if res.Intent != nil || res.Lexical != nil || res.CorpusMatches != nil {
		t.Errorf("disabled components still populated: %+v", res)
	}
	if res.ResponseApproach != "general_response" {
		t.Errorf("approach = %q, want general_response", res.ResponseApproach)
	}
}

func TestProcessGreetingApproach(t *testing.T) {
	e := newTestEngine(t)
	res := e.Process("Halo, apa kabar?")

	if res.Intent == nil || res.Intent.Intent != "greeting" {
		t.Fatalf("intent = %+v, want greeting", res.Intent)
	}
	if res.ResponseApproach != "reciprocate_greeting" {
		t.Errorf("approach = %q, want reciprocate_greeting", res.ResponseApproach)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	e := newTestEngine(t)
	res := e.Process("")

	if res.ReadyToRespond {
		t.Error("empty input must not be ready to respond")
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", res.Confidence)
	}
	if res.ResponseApproach != "general_response" {
		t.Errorf("approach = %q, want general_response", res.ResponseApproach)
	}
}

func TestProcessRecommendations(t *testing.T) {
	e := newTestEngine(t)
	// Gibberish: no intent evidence, no corpus overlap, no entities.
	res := e.Process("zzqy fmpt krrw")

	want := map[string]bool{
		"clarify_intent":       true,
		"no_corpus_match":      true,
		"low_lexical_richness": true,
		"no_entities":          true,
	}
	got := make(map[string]bool)
	for _, r := range res.Recommendations {
		got[r] = true
	}
	for rec := range want {
		if !got[rec] {
			t.Errorf("recommendations %v missing %q", res.Recommendations, rec)
		}
	}
	if res.ReadyToRespond {
		t.Error("gibberish must not be ready to respond")
	}
}
