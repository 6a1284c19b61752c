package http

import (
	"html/template"
	"log/slog"
	"net/http"

	"milklog/internal/core"
	"milklog/internal/session"
)

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request, store *session.Store) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	if store.CustomerCount() == 0 {
		// The entry surface is hidden in this state; a direct POST gets
		// the same warning the page shows.
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="warning">Please add customers first.</div>`))
		return
	}

	customer := sanitizeInput(r.Form.Get("customer"))
	rate, ok := store.Rate(customer)
	if !ok {
		// Unreachable through the closed select; direct POSTs still land here.
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Unknown customer</div>`))
		return
	}

	quantity, err := core.ParseQuantity(r.Form.Get("quantity"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid quantity</div>`))
		return
	}

	date, err := parseEntryDate(r.Form.Get("date"), s.clock.Now())
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid date</div>`))
		return
	}

	rec, err := core.NewDeliveryRecord(date, customer, quantity, rate)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid data: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}
	store.AppendRecord(rec)

	slog.InfoContext(r.Context(), "Delivery record added",
		"customer", rec.Customer,
		"date", rec.Date.String(),
		"quantity", rec.Quantity.String(),
		"rate", rec.Rate.String(),
		"amount", rec.Amount.String(),
		"component", "entry",
		"operation", "append")

	w.Header().Set("HX-Trigger", `{"entry:created": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Added record for ` + template.HTMLEscapeString(rec.Customer) +
		` on ` + template.HTMLEscapeString(rec.Date.String()) + `</div>`))
}
