package coref

import "testing"

type panicProvider struct{}

func (panicProvider) RecentTurns(n int) []Turn { panic("store unavailable") }

func TestResolveUsesMostRecentEntity(t *testing.T) {
	h := &TurnHistory{}
	h.Append(Turn{Content: "kami membahas proyek lama", Entities: []string{"Budi"}})
	h.Append(Turn{Content: "lalu bicara dengan tim baru", Entities: []string{"Sari"}})

	r := NewResolver("id", 5)
	resolved, mapping := r.Resolve("apakah dia masih bekerja di sana", h)

	if resolved != "apakah Sari masih bekerja di sana" {
		t.Errorf("resolved = %q", resolved)
	}
	if mapping["dia"] != "Sari" {
		t.Errorf("mapping = %v, want dia -> Sari", mapping)
	}
}

func TestResolveCapitalizedWordHeuristic(t *testing.T) {
	h := &TurnHistory{}
	h.Append(Turn{Content: "saya bertemu Andi kemarin"})

	r := NewResolver("id", 5)
	resolved, _ := r.Resolve("dia sangat ramah", h)
	if resolved != "Andi sangat ramah" {
		t.Errorf("resolved = %q", resolved)
	}
}

func TestResolveReplacesEveryPronoun(t *testing.T) {
	h := &TurnHistory{}
	h.Append(Turn{Content: "x", Entities: []string{"Tono"}})

	r := NewResolver("id", 5)
	resolved, mapping := r.Resolve("dia bilang dia akan datang", h)
	if resolved != "Tono bilang Tono akan datang" {
		t.Errorf("resolved = %q", resolved)
	}
	if len(mapping) != 1 {
		t.Errorf("mapping = %v", mapping)
	}
}

func TestResolveNoAntecedentNoOp(t *testing.T) {
	h := &TurnHistory{}
	h.Append(Turn{Content: "tidak ada nama di sini"})

	r := NewResolver("id", 5)
	msg := "dia di mana sekarang"
	resolved, mapping := r.Resolve(msg, h)
	if resolved != msg || mapping != nil {
		t.Errorf("expected no-op, got %q %v", resolved, mapping)
	}
}

func TestResolveNoPronounNoOp(t *testing.T) {
	h := &TurnHistory{}
	h.Append(Turn{Content: "x", Entities: []string{"Tono"}})

	r := NewResolver("id", 5)
	msg := "kapan rapat berikutnya"
	resolved, mapping := r.Resolve(msg, h)
	if resolved != msg || mapping != nil {
		t.Errorf("expected no-op, got %q %v", resolved, mapping)
	}
}

func TestResolveProviderFailureSwallowed(t *testing.T) {
	r := NewResolver("id", 5)
	msg := "dia siapa"
	resolved, mapping := r.Resolve(msg, panicProvider{})
	if resolved != msg || mapping != nil {
		t.Errorf("provider panic must degrade to no-op, got %q %v", resolved, mapping)
	}
}

func TestResolveNilProvider(t *testing.T) {
	r := NewResolver("en", 5)
	msg := "where is it"
	resolved, mapping := r.Resolve(msg, nil)
	if resolved != msg || mapping != nil {
		t.Errorf("nil provider must be a no-op, got %q %v", resolved, mapping)
	}
}

func TestTurnHistoryOrdering(t *testing.T) {
	h := &TurnHistory{}
	h.Append(Turn{Content: "satu"})
	h.Append(Turn{Content: "dua"})
	h.Append(Turn{Content: "tiga"})

	got := h.RecentTurns(2)
	if len(got) != 2 || got[0].Content != "tiga" || got[1].Content != "dua" {
		t.Errorf("RecentTurns(2) = %+v, want most-recent-first", got)
	}
	if h.RecentTurns(0) != nil {
		t.Error("RecentTurns(0) should be nil")
	}
	if got := h.RecentTurns(10); len(got) != 3 {
		t.Errorf("RecentTurns(10) = %d turns, want 3", len(got))
	}
}
