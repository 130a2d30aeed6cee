package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"orderboard/pkg/order"
	"orderboard/pkg/otel"
)

// submitRequest is the body of an order submission.
type submitRequest struct {
	Customer string `json:"customer"`
	Item     string `json:"item"`
}

// openSession starts a page-view session.
// @Summary Open session
// @Description Starts a session with an empty (or demo) ledger and sets the session cookie
// @Produce json
// @Success 201 {object} board.View
// @Router /sessions [post]
func (h *handlers) openSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "openSession")
	defer span.End()

	id, view, err := h.svc.Open(ctx)
	if err != nil {
		h.respond(ctx, w, "open session", 0, nil, err)
		return
	}
	h.setSessionCookie(w, id)
	h.respond(ctx, w, "open session", http.StatusCreated, view, nil)
}

// closeSession discards the session and clears the cookie.
// @Summary Close session
// @Success 204
// @Router /sessions [delete]
func (h *handlers) closeSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "closeSession")
	defer span.End()

	c, err := r.Cookie(SessionCookie)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.svc.Close(ctx, c.Value); err != nil && !errors.Is(err, order.ErrSessionNotFound) {
		h.respond(ctx, w, "close session", 0, nil, err)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	w.WriteHeader(http.StatusNoContent)
}

// getLedger returns the current ledger and totals.
// @Summary Get ledger
// @Produce json
// @Success 200 {object} board.View
// @Security SessionCookie
// @Router /ledger [get]
func (h *handlers) getLedger(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getLedger")
	defer span.End()

	view, err := h.svc.View(ctx, sessionFrom(ctx))
	h.respond(ctx, w, "get ledger", http.StatusOK, view, err)
}

// submitOrder adds one unit of an item to a customer's order.
// @Summary Submit order
// @Accept json
// @Produce json
// @Param order body submitRequest true "Customer and item"
// @Success 200 {object} board.View
// @Security SessionCookie
// @Router /ledger/orders [post]
func (h *handlers) submitOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "submitOrder")
	defer span.End()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.svc.Submit(ctx, sessionFrom(ctx), req.Customer, req.Item)
	h.respond(ctx, w, "submit order", http.StatusOK, view, err)
}

// increaseQuantity adds one unit to a line item.
// @Summary Increase quantity
// @Produce json
// @Param id path string true "Line item ID"
// @Success 200 {object} board.View
// @Security SessionCookie
// @Router /ledger/items/{id}/increase [post]
func (h *handlers) increaseQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "increaseQuantity")
	defer span.End()

	view, err := h.svc.IncreaseQuantity(ctx, sessionFrom(ctx), mux.Vars(r)["id"])
	h.respond(ctx, w, "increase quantity", http.StatusOK, view, err)
}

// decreaseQuantity removes one unit from a line item, stopping at one.
// @Summary Decrease quantity
// @Produce json
// @Param id path string true "Line item ID"
// @Success 200 {object} board.View
// @Security SessionCookie
// @Router /ledger/items/{id}/decrease [post]
func (h *handlers) decreaseQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "decreaseQuantity")
	defer span.End()

	view, err := h.svc.DecreaseQuantity(ctx, sessionFrom(ctx), mux.Vars(r)["id"])
	h.respond(ctx, w, "decrease quantity", http.StatusOK, view, err)
}

// removeItem deletes a line item.
// @Summary Remove item
// @Produce json
// @Param id path string true "Line item ID"
// @Success 200 {object} board.View
// @Security SessionCookie
// @Router /ledger/items/{id} [delete]
func (h *handlers) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "removeItem")
	defer span.End()

	view, err := h.svc.RemoveItem(ctx, sessionFrom(ctx), mux.Vars(r)["id"])
	h.respond(ctx, w, "remove item", http.StatusOK, view, err)
}

// removeAllByName deletes an item from every customer. The name may be
// empty or contain slashes, so it travels in the query string.
// @Summary Remove item everywhere
// @Produce json
// @Param name query string true "Item name"
// @Success 200 {object} board.View
// @Failure 400 {string} string
// @Security SessionCookie
// @Router /ledger/totals [delete]
func (h *handlers) removeAllByName(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "removeAllByName")
	defer span.End()

	q := r.URL.Query()
	if !q.Has("name") {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}
	view, err := h.svc.RemoveAllByName(ctx, sessionFrom(ctx), q.Get("name"))
	h.respond(ctx, w, "remove all by name", http.StatusOK, view, err)
}

// suggestCustomers lists known customer names containing q.
// @Summary Suggest customers
// @Produce json
// @Param q query string true "Query, at least three characters"
// @Success 200 {array} string
// @Security SessionCookie
// @Router /ledger/suggestions/customers [get]
func (h *handlers) suggestCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "suggestCustomers")
	defer span.End()

	names, err := h.svc.SuggestCustomers(ctx, sessionFrom(ctx), r.URL.Query().Get("q"))
	h.respond(ctx, w, "suggest customers", http.StatusOK, names, err)
}

// suggestItems lists known item names containing q.
// @Summary Suggest items
// @Produce json
// @Param q query string true "Query, at least three characters"
// @Success 200 {array} string
// @Security SessionCookie
// @Router /ledger/suggestions/items [get]
func (h *handlers) suggestItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "suggestItems")
	defer span.End()

	names, err := h.svc.SuggestItems(ctx, sessionFrom(ctx), r.URL.Query().Get("q"))
	h.respond(ctx, w, "suggest items", http.StatusOK, names, err)
}
