package order

import "github.com/google/uuid"

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	for i, c := range l {
		out[i] = CustomerOrder{Name: c.Name, Items: append([]LineItem(nil), c.Items...)}
	}
	return out
}

// Find returns the line item with the given id.
func (l Ledger) Find(id string) (LineItem, bool) {
	ci, ii := l.locate(id)
	if ci < 0 {
		return LineItem{}, false
	}
	return l[ci].Items[ii], true
}

// Submit records one more unit of item for customer. An existing line item
// with the same name is incremented, otherwise a new one is appended with an
// id from newID. A nil newID falls back to random UUIDs.
func (l Ledger) Submit(newID IDFunc, customer, item string) Ledger {
	if newID == nil {
		newID = uuid.NewString
	}
	out := l.Clone()
	for ci := range out {
		if out[ci].Name != customer {
			continue
		}
		for ii := range out[ci].Items {
			if out[ci].Items[ii].Name == item {
				out[ci].Items[ii].Quantity++
				return out
			}
		}
		out[ci].Items = append(out[ci].Items, LineItem{ID: newID(), Name: item, Quantity: 1})
		return out
	}
	return append(out, CustomerOrder{
		Name:  customer,
		Items: []LineItem{{ID: newID(), Name: item, Quantity: 1}},
	})
}

// IncreaseQuantity adds one unit to the line item with the given id.
func (l Ledger) IncreaseQuantity(id string) (Ledger, error) {
	ci, ii := l.locate(id)
	if ci < 0 {
		return l, ErrNotFound
	}
	out := l.Clone()
	out[ci].Items[ii].Quantity++
	return out, nil
}

// DecreaseQuantity removes one unit from the line item with the given id.
// The quantity never drops below one; removal goes through RemoveItem.
func (l Ledger) DecreaseQuantity(id string) (Ledger, error) {
	ci, ii := l.locate(id)
	if ci < 0 {
		return l, ErrNotFound
	}
	out := l.Clone()
	if out[ci].Items[ii].Quantity > 1 {
		out[ci].Items[ii].Quantity--
	}
	return out, nil
}

// RemoveItem deletes the line item with the given id and drops its customer
// when no items are left.
func (l Ledger) RemoveItem(id string) (Ledger, error) {
	ci, _ := l.locate(id)
	if ci < 0 {
		return l, ErrNotFound
	}
	return l.filter(func(it LineItem) bool { return it.ID != id }), nil
}

// RemoveAllByName deletes every line item called name across all customers
// and prunes the customers left empty.
func (l Ledger) RemoveAllByName(name string) (Ledger, error) {
	found := false
	for _, c := range l {
		for _, it := range c.Items {
			if it.Name == name {
				found = true
			}
		}
	}
	if !found {
		return l, ErrNotFound
	}
	return l.filter(func(it LineItem) bool { return it.Name != name }), nil
}

func (l Ledger) locate(id string) (int, int) {
	for ci, c := range l {
		for ii, it := range c.Items {
			if it.ID == id {
				return ci, ii
			}
		}
	}
	return -1, -1
}

// filter keeps the items for which keep is true and drops emptied customers.
func (l Ledger) filter(keep func(LineItem) bool) Ledger {
	out := make(Ledger, 0, len(l))
	for _, c := range l {
		items := make([]LineItem, 0, len(c.Items))
		for _, it := range c.Items {
			if keep(it) {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, CustomerOrder{Name: c.Name, Items: items})
	}
	return out
}
