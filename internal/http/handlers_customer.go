package http

import (
	"html/template"
	"log/slog"
	"net/http"

	"milklog/internal/core"
	"milklog/internal/session"
)

func (s *Server) handleUpsertCustomer(w http.ResponseWriter, r *http.Request, store *session.Store) {
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

	name := sanitizeInput(r.Form.Get("name"))
	rateStr := sanitizeInput(r.Form.Get("rate"))

	if name == "" {
		// The one recoverable user error: warn, change nothing.
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="warning">Please enter a customer name.</div>`))
		return
	}

	rate, err := core.ParseRate(rateStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid rate</div>`))
		return
	}

	customer, err := store.UpsertCustomer(name, rate)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid data: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Customer saved",
		"customer", customer.Name,
		"rate", customer.Rate.String(),
		"component", "customer",
		"operation", "upsert")

	w.Header().Set("HX-Trigger", `{"customer:saved": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Saved ` + template.HTMLEscapeString(customer.Name) +
		` at ` + template.HTMLEscapeString(core.FormatAmount(customer.Rate)) + `/Litre.</div>`))
}

// customerRow is the template view of one rate table entry.
type customerRow struct {
	Name string
	Rate string
}

func (s *Server) handleCustomersPartial(w http.ResponseWriter, r *http.Request, store *session.Store) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var rows []customerRow
	for name, rate := range store.Customers() {
		rows = append(rows, customerRow{Name: name, Rate: core.FormatAmount(rate) + "/L"})
	}

	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	data := struct {
		Customers []customerRow
	}{Customers: rows}
	if err := s.templates.ExecuteTemplate(w, "customers.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "customers.html")
		_, _ = w.Write([]byte(`<div class="error">Error rendering customers</div>`))
	}
}
