package grouping

import (
	"testing"

	"rrportal/internal/domain/entities"
)

func TestKeyFor(t *testing.T) {
	t.Run("session id wins", func(t *testing.T) {
		q := entities.Quotation{SessionID: "sess-1", QuotationNo: "#RR100", CreatedOn: "2025-01-01"}
		if got := KeyFor(q); got != "sess-1" {
			t.Fatalf("key = %q, want sess-1", got)
		}
	})

	t.Run("quotation no when session empty", func(t *testing.T) {
		q := entities.Quotation{QuotationNo: "#RR100", CreatedOn: "2025-01-01"}
		if got := KeyFor(q); got != "#RR100" {
			t.Fatalf("key = %q, want #RR100", got)
		}
	})

	t.Run("created on as last resort", func(t *testing.T) {
		q := entities.Quotation{CreatedOn: "2025-01-01"}
		if got := KeyFor(q); got != "2025-01-01" {
			t.Fatalf("key = %q, want 2025-01-01", got)
		}
	})
}

func TestGroupBy(t *testing.T) {
	t.Run("preserves first-seen group order and item order", func(t *testing.T) {
		items := []entities.Quotation{
			{ID: "a", SessionID: "s1"},
			{ID: "b", SessionID: "s2"},
			{ID: "c", SessionID: "s1"},
			{ID: "d", SessionID: "s2"},
			{ID: "e", SessionID: "s1"},
		}
		groups := GroupBy(items)
		if len(groups) != 2 {
			t.Fatalf("len(groups) = %d, want 2", len(groups))
		}
		if groups[0].Key != "s1" || groups[1].Key != "s2" {
			t.Fatalf("group keys = %q/%q, want s1/s2", groups[0].Key, groups[1].Key)
		}
		wantFirst := []string{"a", "c", "e"}
		for i, id := range wantFirst {
			if groups[0].Items[i].ID != id {
				t.Fatalf("groups[0].Items[%d].ID = %q, want %q", i, groups[0].Items[i].ID, id)
			}
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		items := []entities.Quotation{
			{ID: "a", QuotationNo: "#RR1"},
			{ID: "b", CreatedOn: "2025-02-02"},
			{ID: "c", QuotationNo: "#RR1"},
			{ID: "d", SessionID: "s9"},
		}
		first := GroupBy(items)
		for i := 0; i < 10; i++ {
			again := GroupBy(items)
			if len(again) != len(first) {
				t.Fatalf("run %d: len = %d, want %d", i, len(again), len(first))
			}
			for j := range again {
				if again[j].Key != first[j].Key || len(again[j].Items) != len(first[j].Items) {
					t.Fatalf("run %d: group %d differs", i, j)
				}
			}
		}
	})

	t.Run("mixed key sources never merge", func(t *testing.T) {
		items := []entities.Quotation{
			{ID: "a", SessionID: "x"},
			{ID: "b", QuotationNo: "x"},
		}
		groups := GroupBy(items)
		if len(groups) != 1 {
			t.Fatalf("len(groups) = %d, want 1 (same resolved key)", len(groups))
		}
		if len(groups[0].Items) != 2 {
			t.Fatalf("items in group = %d, want 2", len(groups[0].Items))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if groups := GroupBy(nil); len(groups) != 0 {
			t.Fatalf("len(groups) = %d, want 0", len(groups))
		}
	})
}

func TestPaymentReference(t *testing.T) {
	t.Run("strips display prefix", func(t *testing.T) {
		g := Group{Items: []entities.Quotation{{QuotationNo: "#RR123456"}}}
		if got := g.PaymentReference(); got != "RR123456" {
			t.Fatalf("reference = %q, want RR123456", got)
		}
	})

	t.Run("idempotent on already-normalized numbers", func(t *testing.T) {
		g := Group{Items: []entities.Quotation{{QuotationNo: "RR123456"}}}
		once := g.PaymentReference()
		if once != "RR123456" {
			t.Fatalf("reference = %q, want RR123456", once)
		}
		if again := entities.NormalizeQuotationNo(once); again != once {
			t.Fatalf("normalize not idempotent: %q -> %q", once, again)
		}
	})

	t.Run("empty group", func(t *testing.T) {
		if got := (Group{}).PaymentReference(); got != "" {
			t.Fatalf("reference = %q, want empty", got)
		}
	})
}
