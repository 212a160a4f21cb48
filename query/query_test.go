package query

import (
	"testing"
	"time"

	"github.com/rizkyfauzan/nalar/kb"
	"github.com/rizkyfauzan/nalar/lexicon"
)

func testDoc() *kb.Document {
	return &kb.Document{
		AI: map[string]string{
			"pengalaman kerja": "Lima tahun pengalaman kerja sebagai frontend developer",
			"pendidikan":       "Sarjana ilmu komputer",
		},
		Cards: []kb.Card{
			{Title: "Proyek React", Description: "aplikasi web dengan react dan javascript"},
		},
	}
}

func TestQueryExactMatch(t *testing.T) {
	e := New(lexicon.NewStore())
	results := e.Query("pengalaman kerja frontend", testDoc(), Options{})

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1 (fuzzy duplicate must be merged away)", len(results))
	}
	got := results[0]
	if got.MatchType != "exact" {
		t.Errorf("match type = %s, want exact", got.MatchType)
	}
	if got.Score != 1.0 {
		t.Errorf("full-coverage exact score = %v, want 1.0", got.Score)
	}
	if got.Source != "ai" || got.Question != "pengalaman kerja" {
		t.Errorf("matched wrong entry: %+v", got)
	}
}

func TestQuerySynonymExpansion(t *testing.T) {
	doc := &kb.Document{
		AI: map[string]string{
			"metode": "Saya senang mendalami topik baru lewat praktik",
		},
	}
	e := New(lexicon.NewStore())
	results := e.Query("cara belajar efektif", doc, Options{})

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].MatchType != "synonym" {
		t.Errorf("match type = %s, want synonym", results[0].MatchType)
	}
	if results[0].Score != synonymScore {
		t.Errorf("synonym score = %v, want %v", results[0].Score, synonymScore)
	}
}

func TestQueryFuzzySkippedAtQuickDepth(t *testing.T) {
	e := New(lexicon.NewStore())
	doc := testDoc()

	// Typo only the fuzzy strategy can bridge.
	standard := e.Query("pengalamn kerja", doc, Options{Depth: DepthStandard})
	if len(standard) != 1 || standard[0].MatchType != "fuzzy" {
		t.Fatalf("standard depth = %+v, want one fuzzy match", standard)
	}

	quick := e.Query("pengalamn kerja", doc, Options{Depth: DepthQuick})
	if len(quick) != 0 {
		t.Errorf("quick depth = %+v, want no results", quick)
	}
}

func TestQueryRelatedOnlyAtComprehensiveDepth(t *testing.T) {
	doc := &kb.Document{
		Cards: []kb.Card{
			{Title: "Proyek React", Description: "aplikasi web dengan react dan javascript"},
		},
	}
	e := New(lexicon.NewStore())

	standard := e.Query("belajar web", doc, Options{Depth: DepthStandard})
	if len(standard) != 0 {
		t.Fatalf("standard depth = %+v, want no results", standard)
	}

	comprehensive := e.Query("belajar web", doc, Options{Depth: DepthComprehensive})
	if len(comprehensive) != 1 || comprehensive[0].MatchType != "related" {
		t.Fatalf("comprehensive depth = %+v, want one related match", comprehensive)
	}
	if comprehensive[0].Score != relatedScore {
		t.Errorf("related score = %v, want %v", comprehensive[0].Score, relatedScore)
	}
}

func TestQueryMaxResultsAndOrdering(t *testing.T) {
	doc := &kb.Document{
		AI: map[string]string{
			"a": "materi golang dasar untuk pemula",
			"b": "materi golang lanjutan untuk backend",
			"c": "materi golang concurrency dan channel",
			"d": "materi golang testing dan benchmark",
		},
	}
	e := New(lexicon.NewStore())
	results := e.Query("materi golang", doc, Options{MaxResults: 2})

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Error("results not sorted descending by score")
		}
	}
}

func TestQueryEmptyInputs(t *testing.T) {
	e := New(lexicon.NewStore())
	if got := e.Query("   ", testDoc(), Options{}); got != nil {
		t.Errorf("blank query = %+v, want nil", got)
	}
	if got := e.Query("pengalaman kerja", &kb.Document{}, Options{}); got != nil {
		t.Errorf("empty document = %+v, want nil", got)
	}
}

func TestQueryCacheHitAndExpiry(t *testing.T) {
	e := New(lexicon.NewStore())
	current := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e.Cache().SetClock(func() time.Time { return current }, time.Minute)

	doc := testDoc()
	opts := Options{UseCache: true}

	first := e.Query("pengalaman kerja frontend", doc, opts)
	if len(first) != 1 {
		t.Fatalf("first query = %d results, want 1", len(first))
	}

	// Same query against changed content must still serve the cached
	// answer within the TTL.
	doc.AI["pengalaman kerja"] = "Sepuluh tahun pengalaman kerja sebagai frontend lead"
	cached := e.Query("pengalaman kerja frontend", doc, opts)
	if len(cached) != 1 || cached[0].Answer != first[0].Answer {
		t.Errorf("within TTL got %+v, want cached %+v", cached, first)
	}

	current = current.Add(2 * time.Minute)
	fresh := e.Query("pengalaman kerja frontend", doc, opts)
	if len(fresh) != 1 || fresh[0].Answer == first[0].Answer {
		t.Errorf("after TTL got %+v, want recomputed result", fresh)
	}
}

func TestQueryCacheKeyIncludesDepth(t *testing.T) {
	e := New(lexicon.NewStore())
	doc := testDoc()

	standard := e.Query("pengalamn kerja", doc, Options{Depth: DepthStandard, UseCache: true})
	if len(standard) != 1 {
		t.Fatalf("standard depth = %d results, want 1", len(standard))
	}
	// Quick depth must not be served the standard-depth cache entry.
	quick := e.Query("pengalamn kerja", doc, Options{Depth: DepthQuick, UseCache: true})
	if len(quick) != 0 {
		t.Errorf("quick depth served %+v, want its own (empty) result", quick)
	}
	if e.Cache().Len() != 2 {
		t.Errorf("cache entries = %d, want 2", e.Cache().Len())
	}
}

func TestQueryCacheReturnsCopies(t *testing.T) {
	e := New(lexicon.NewStore())
	doc := testDoc()
	opts := Options{UseCache: true}

	first := e.Query("pengalaman kerja frontend", doc, opts)
	if len(first) != 1 {
		t.Fatalf("first query = %d results, want 1", len(first))
	}
	first[0].Answer = "mutated"

	again := e.Query("pengalaman kerja frontend", doc, opts)
	if again[0].Answer == "mutated" {
		t.Error("caller mutation leaked into the cache")
	}
}
