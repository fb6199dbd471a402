package game

import "testing"

func TestSelectionSetUpsertReplacesCount(t *testing.T) {
	var s SelectionSet

	grain := Resource{Identifier: "grain", Count: 50, Name: "Grain"}
	s.Upsert(grain, 10)
	s.Upsert(grain, 25)

	if s.Len() != 1 {
		t.Fatalf("expected 1 entry after double upsert, got %d", s.Len())
	}
	got, ok := s.Get("grain")
	if !ok {
		t.Fatal("grain not in set")
	}
	if got.SelectedCount != 25 {
		t.Errorf("expected latest count 25, got %d", got.SelectedCount)
	}
}

func TestSelectionSetPreservesOrder(t *testing.T) {
	var s SelectionSet
	s.Upsert(Resource{Identifier: "grain"}, 1)
	s.Upsert(Resource{Identifier: "timber"}, 2)
	s.Upsert(Resource{Identifier: "grain"}, 3)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].Identifier != "grain" || items[1].Identifier != "timber" {
		t.Errorf("unexpected order: %s, %s", items[0].Identifier, items[1].Identifier)
	}
}

func TestSelectionSetRemove(t *testing.T) {
	var s SelectionSet
	s.Upsert(Resource{Identifier: "grain"}, 1)
	s.Upsert(Resource{Identifier: "timber"}, 2)

	s.Remove("grain")
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry after remove, got %d", s.Len())
	}
	if _, ok := s.Get("grain"); ok {
		t.Error("grain still present after remove")
	}

	// Removing something never selected is a no-op.
	s.Remove("stone")
	if s.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", s.Len())
	}
}

func TestSelectionSetLots(t *testing.T) {
	var s SelectionSet
	s.Upsert(Resource{Identifier: "grain", Name: "Grain", Count: 100}, 40)

	lots := s.Lots()
	if len(lots) != 1 {
		t.Fatalf("expected 1 lot, got %d", len(lots))
	}
	if lots[0].Identifier != "grain" || lots[0].Count != 40 || lots[0].Name != "Grain" {
		t.Errorf("unexpected lot: %+v", lots[0])
	}
}

func TestEnsureGold(t *testing.T) {
	rs := []Resource{{Identifier: "grain", Count: 5}}
	rs = EnsureGold(rs)
	if GoldCount(rs) != 0 {
		t.Errorf("expected zero gold, got %d", GoldCount(rs))
	}
	if len(rs) != 2 {
		t.Fatalf("expected gold line appended, got %d entries", len(rs))
	}

	rs2 := EnsureGold([]Resource{{Identifier: GoldID, Count: 30}})
	if len(rs2) != 1 || GoldCount(rs2) != 30 {
		t.Errorf("existing gold line must be kept: %+v", rs2)
	}
}
