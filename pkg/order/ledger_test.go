package order

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
)

func seqIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}

func TestSubmitCreatesCustomer(t *testing.T) {
	l := Ledger(nil).Submit(seqIDs(), "Christy", "Nasi Goreng")

	if len(l) != 1 || l[0].Name != "Christy" {
		t.Fatalf("expected one customer Christy, got %+v", l)
	}
	if len(l[0].Items) != 1 {
		t.Fatalf("expected one item, got %d", len(l[0].Items))
	}
	it := l[0].Items[0]
	if it.ID != "id-1" || it.Name != "Nasi Goreng" || it.Quantity != 1 {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestSubmitMergesSameItem(t *testing.T) {
	ids := seqIDs()
	l := Ledger(nil).Submit(ids, "Christy", "Nasi Goreng")
	l = l.Submit(ids, "Christy", "Nasi Goreng")

	if len(l[0].Items) != 1 {
		t.Fatalf("expected merge into one item, got %d", len(l[0].Items))
	}
	if q := l[0].Items[0].Quantity; q != 2 {
		t.Fatalf("expected quantity 2, got %d", q)
	}
}

func TestSubmitAppendsInOrder(t *testing.T) {
	ids := seqIDs()
	l := Ledger(nil).
		Submit(ids, "Christy", "Nasi Goreng").
		Submit(ids, "Kenya", "Es Teh").
		Submit(ids, "Christy", "Bakmi Kuah")

	if len(l) != 2 || l[0].Name != "Christy" || l[1].Name != "Kenya" {
		t.Fatalf("unexpected customers: %+v", l)
	}
	if got := l[0].Items[1]; got.Name != "Bakmi Kuah" || got.ID != "id-3" {
		t.Fatalf("unexpected appended item: %+v", got)
	}
}

func TestSubmitTreatsEmptyStringsAsNames(t *testing.T) {
	ids := seqIDs()
	l := Ledger(nil).Submit(ids, "", "").Submit(ids, "", "")

	if len(l) != 1 || l[0].Name != "" || l[0].Items[0].Quantity != 2 {
		t.Fatalf("unexpected ledger: %+v", l)
	}
}

func TestSubmitDoesNotMutateInput(t *testing.T) {
	ids := seqIDs()
	before := Ledger(nil).Submit(ids, "Christy", "Nasi Goreng")
	_ = before.Submit(ids, "Christy", "Nasi Goreng")
	_ = before.Submit(ids, "Christy", "Es Teh")

	if len(before[0].Items) != 1 || before[0].Items[0].Quantity != 1 {
		t.Fatalf("input ledger was mutated: %+v", before)
	}
}

func TestSubmitDefaultIDs(t *testing.T) {
	l := Ledger(nil).Submit(nil, "a", "x").Submit(nil, "a", "y")
	if l[0].Items[0].ID == "" || l[0].Items[0].ID == l[0].Items[1].ID {
		t.Fatalf("expected distinct generated ids, got %+v", l[0].Items)
	}
}

func TestQuantityChanges(t *testing.T) {
	ids := seqIDs()
	base := Ledger(nil).Submit(ids, "Christy", "Nasi Goreng")

	tests := []struct {
		name    string
		apply   func(Ledger) (Ledger, error)
		want    int
		wantErr error
	}{
		{
			name:  "increase",
			apply: func(l Ledger) (Ledger, error) { return l.IncreaseQuantity("id-1") },
			want:  2,
		},
		{
			name: "decrease above floor",
			apply: func(l Ledger) (Ledger, error) {
				l, _ = l.IncreaseQuantity("id-1")
				l, _ = l.IncreaseQuantity("id-1")
				return l.DecreaseQuantity("id-1")
			},
			want: 2,
		},
		{
			name:  "decrease at floor",
			apply: func(l Ledger) (Ledger, error) { return l.DecreaseQuantity("id-1") },
			want:  1,
		},
		{
			name:    "increase unknown id",
			apply:   func(l Ledger) (Ledger, error) { return l.IncreaseQuantity("nope") },
			want:    1,
			wantErr: ErrNotFound,
		},
		{
			name:    "decrease unknown id",
			apply:   func(l Ledger) (Ledger, error) { return l.DecreaseQuantity("nope") },
			want:    1,
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(base)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			it, ok := got.Find("id-1")
			if !ok {
				t.Fatal("item disappeared")
			}
			if it.Quantity != tt.want {
				t.Fatalf("expected quantity %d, got %d", tt.want, it.Quantity)
			}
			if base[0].Items[0].Quantity != 1 {
				t.Fatal("base ledger was mutated")
			}
		})
	}
}

func TestRemoveItemCascades(t *testing.T) {
	ids := seqIDs()
	l := Ledger(nil).
		Submit(ids, "Christy", "Nasi Goreng").
		Submit(ids, "Kenya", "Nasi Goreng").
		Submit(ids, "Kenya", "Es Teh")

	l, err := l.RemoveItem("id-1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(l) != 1 || l[0].Name != "Kenya" {
		t.Fatalf("expected Christy to be dropped, got %+v", l)
	}

	l, err = l.RemoveItem("id-2")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(l) != 1 || len(l[0].Items) != 1 || l[0].Items[0].Name != "Es Teh" {
		t.Fatalf("unexpected ledger: %+v", l)
	}

	if _, err := l.RemoveItem("id-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on stale id, got %v", err)
	}
}

func TestRemoveAllByName(t *testing.T) {
	ids := seqIDs()
	l := Ledger(nil).
		Submit(ids, "Christy", "Nasi Goreng").
		Submit(ids, "Christy", "Ayam Bakar").
		Submit(ids, "Kenya", "Nasi Goreng")

	got, err := l.RemoveAllByName("Nasi Goreng")
	if err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Christy" || len(got[0].Items) != 1 {
		t.Fatalf("unexpected ledger: %+v", got)
	}
	if len(l) != 2 {
		t.Fatal("input ledger was mutated")
	}

	same, err := got.RemoveAllByName("nasi goreng")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected exact-match miss, got %v", err)
	}
	if len(same) != 1 {
		t.Fatalf("expected unchanged ledger, got %+v", same)
	}
}

// Random operation sequences must keep every customer non-empty, customer
// names unique and quantities positive.
func TestLedgerInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	customers := []string{"Christy", "Kenya", "Budi"}
	items := []string{"Nasi Goreng", "Es Teh", "Bakmi Kuah", "Sate"}
	ids := seqIDs()

	var l Ledger
	var seen []string
	for step := 0; step < 2000; step++ {
		var id string
		if len(seen) > 0 {
			id = seen[rng.Intn(len(seen))]
		}
		switch rng.Intn(5) {
		case 0:
			l = l.Submit(ids, customers[rng.Intn(len(customers))], items[rng.Intn(len(items))])
			for _, c := range l {
				for _, it := range c.Items {
					seen = append(seen, it.ID)
				}
			}
		case 1:
			l, _ = l.IncreaseQuantity(id)
		case 2:
			l, _ = l.DecreaseQuantity(id)
		case 3:
			l, _ = l.RemoveItem(id)
		case 4:
			l, _ = l.RemoveAllByName(items[rng.Intn(len(items))])
		}

		names := map[string]bool{}
		for _, c := range l {
			if len(c.Items) == 0 {
				t.Fatalf("step %d: empty order for %q", step, c.Name)
			}
			if names[c.Name] {
				t.Fatalf("step %d: duplicate customer %q", step, c.Name)
			}
			names[c.Name] = true
			itemNames := map[string]bool{}
			for _, it := range c.Items {
				if it.Quantity < 1 {
					t.Fatalf("step %d: non-positive quantity %+v", step, it)
				}
				if itemNames[it.Name] {
					t.Fatalf("step %d: duplicate item %q for %q", step, it.Name, c.Name)
				}
				itemNames[it.Name] = true
			}
		}
	}
}
