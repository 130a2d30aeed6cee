package board

import "orderboard/pkg/order"

// DemoLedger returns the sample orders new sessions start with when seeding
// is enabled.
func DemoLedger(newID order.IDFunc) order.Ledger {
	return order.Ledger{
		{Name: "Christy", Items: []order.LineItem{
			{ID: newID(), Name: "Nasi Goreng", Quantity: 1},
			{ID: newID(), Name: "Ayam Bakar Negeri Dada", Quantity: 5},
		}},
		{Name: "Kenya", Items: []order.LineItem{
			{ID: newID(), Name: "Nasi Goreng", Quantity: 2},
		}},
	}
}
