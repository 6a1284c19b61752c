package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"milklog/internal/core"
	"milklog/internal/export"
	"milklog/internal/report"
	"milklog/internal/session"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, store *session.Store) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Today string
	}{Today: core.DateOf(s.clock.Now()).String()}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleEntryFormPartial(w http.ResponseWriter, r *http.Request, store *session.Store) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	var names []string
	for name := range store.Customers() {
		names = append(names, name)
	}
	data := struct {
		HasCustomers bool
		Customers    []string
		Today        string
	}{
		HasCustomers: len(names) > 0,
		Customers:    names,
		Today:        core.DateOf(s.clock.Now()).String(),
	}
	if err := s.templates.ExecuteTemplate(w, "entry_form.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "entry_form.html")
		_, _ = w.Write([]byte(`<div class="error">Error rendering entry form</div>`))
	}
}

// recordRow is the template view of one log entry.
type recordRow struct {
	Date     string
	Customer string
	Quantity string
	Rate     string
	Amount   string
}

func (s *Server) handleRecordsPartial(w http.ResponseWriter, r *http.Request, store *session.Store) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	records := store.Records()
	rows := make([]recordRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, recordRow{
			Date:     rec.Date.String(),
			Customer: rec.Customer,
			Quantity: core.FormatQuantity(rec.Quantity),
			Rate:     core.FormatAmount(rec.Rate),
			Amount:   core.FormatAmount(rec.Amount),
		})
	}
	data := struct {
		Records []recordRow
	}{Records: rows}
	if err := s.templates.ExecuteTemplate(w, "records.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "records.html")
		_, _ = w.Write([]byte(`<div class="error">Error rendering records</div>`))
	}
}

// summaryRow is the template view of one aggregated customer total.
type summaryRow struct {
	Customer string
	Quantity string
	Amount   string
}

func (s *Server) handleSummaryPartial(w http.ResponseWriter, r *http.Request, store *session.Store) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	// One month read drives both the filter and the heading.
	month := report.CurrentMonth(s.clock)
	records := store.Records()

	data := struct {
		Month      string
		HasRecords bool
		Empty      bool
		Rows       []summaryRow
	}{
		Month:      month.String(),
		HasRecords: len(records) > 0,
	}

	if len(records) > 0 {
		summary := report.Summarize(records, month)
		data.Empty = summary.Empty()
		for _, row := range summary.Rows {
			data.Rows = append(data.Rows, summaryRow{
				Customer: row.Customer,
				Quantity: core.FormatQuantity(row.Quantity),
				Amount:   core.FormatAmount(row.Amount),
			})
		}
	}

	if err := s.templates.ExecuteTemplate(w, "monthly_summary.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "monthly_summary.html", "month", month.String())
		_, _ = w.Write([]byte(`<div class="error">Error rendering summary</div>`))
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, store *session.Store) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	records := store.Records()
	if len(records) == 0 {
		// Nothing to export is a normal state, not an error.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<div class="info">No records yet! Add daily entries to download a report.</div>`))
		return
	}

	// Read the month once so the filter and the filename cannot disagree
	// near a month boundary.
	month := report.CurrentMonth(s.clock)
	summary := report.Summarize(records, month)

	data, err := export.Workbook(records, summary)
	if err != nil {
		slog.ErrorContext(r.Context(), "Workbook build failed",
			"error", err,
			"month", month.String(),
			"records", len(records),
			"component", "export",
			"operation", "export")
		http.Error(w, "error building report", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "Report exported",
		"month", month.String(),
		"records", len(records),
		"summary_rows", len(summary.Rows),
		"component", "export",
		"operation", "export")

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(month)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
