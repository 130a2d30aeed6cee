// Package order holds the in-memory order ledger: customers, their line
// items, and the mutations a page view can apply to them.
package order

import (
	"context"
	"errors"
)

// LineItem is a single named entry in a customer's order.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CustomerOrder holds one customer's line items in insertion order.
type CustomerOrder struct {
	Name  string     `json:"name"`
	Items []LineItem `json:"items"`
}

// Ledger is the ordered list of customer orders for one session.
// Customer names are unique and no order is ever left without items.
type Ledger []CustomerOrder

// IDFunc supplies identifiers that are unique for the lifetime of the process.
type IDFunc func() string

// Repository stores one ledger per session.
type Repository interface {
	Get(ctx context.Context, session string) (Ledger, error)
	Put(ctx context.Context, session string, l Ledger) error
	Delete(ctx context.Context, session string) error
}

// ErrNotFound indicates the requested line item does not exist.
var ErrNotFound = errors.New("line item not found")

// ErrSessionNotFound indicates no ledger is stored for the session.
var ErrSessionNotFound = errors.New("session not found")
