// Package aggregate derives read-only views from an order ledger: total
// quantity per item, the distinct customer and item names, and the
// suggestion filter used for autocomplete.
package aggregate

import (
	"strings"
	"unicode/utf8"

	"orderboard/pkg/order"
)

// MinQueryLength is the shortest query that produces suggestions.
const MinQueryLength = 3

// Total is the summed quantity of one item name across all customers.
type Total struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Recompute sums line item quantities by item name, in order of first
// appearance walking customers and then their items.
func Recompute(l order.Ledger) []Total {
	totals := []Total{}
	index := map[string]int{}
	for _, c := range l {
		for _, it := range c.Items {
			if i, ok := index[it.Name]; ok {
				totals[i].Quantity += it.Quantity
				continue
			}
			index[it.Name] = len(totals)
			totals = append(totals, Total{Name: it.Name, Quantity: it.Quantity})
		}
	}
	return totals
}

// UniqueNames returns the distinct customer names in ledger order.
func UniqueNames(l order.Ledger) []string {
	names := []string{}
	seen := map[string]bool{}
	for _, c := range l {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	return names
}

// UniqueItemNames returns the distinct item names in order of first appearance.
func UniqueItemNames(l order.Ledger) []string {
	names := []string{}
	seen := map[string]bool{}
	for _, c := range l {
		for _, it := range c.Items {
			if !seen[it.Name] {
				seen[it.Name] = true
				names = append(names, it.Name)
			}
		}
	}
	return names
}

// FilterByPrefix returns the candidates containing query, ignoring case.
// Despite the name it is a substring match. Queries shorter than
// MinQueryLength characters return no suggestions.
func FilterByPrefix(candidates []string, query string) []string {
	out := []string{}
	if utf8.RuneCountInString(query) < MinQueryLength {
		return out
	}
	q := strings.ToLower(query)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	return out
}
