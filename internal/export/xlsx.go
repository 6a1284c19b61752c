// Package export serializes the record log and the monthly summary into a
// two-sheet spreadsheet workbook. The artifact is built fresh on every
// request and never cached.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"milklog/internal/core"
)

const (
	// SheetRecords holds the full unfiltered record log.
	SheetRecords = "All Records"
	// SheetSummary holds the current-month per-customer aggregation.
	SheetSummary = "Monthly Summary"

	// ContentType identifies the artifact as a legacy spreadsheet download.
	ContentType = "application/vnd.ms-excel"
)

// Filename embeds the report month into the download name.
func Filename(month core.Month) string {
	return fmt.Sprintf("milk_report_%s.xlsx", month)
}

// Workbook builds the xlsx bytes: sheet one is every record in insertion
// order, sheet two is the given summary. Callers must derive both from the
// same month read so the sheets cannot disagree near a month boundary.
func Workbook(records []core.DeliveryRecord, summary core.MonthlySummary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetRecords); err != nil {
		return nil, fmt.Errorf("rename records sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	header := []interface{}{"Date", "Customer", "Quantity (Litre)", "Rate", "Amount"}
	if err := f.SetSheetRow(SheetRecords, "A1", &header); err != nil {
		return nil, fmt.Errorf("write records header: %w", err)
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("records cell name: %w", err)
		}
		row := []interface{}{
			rec.Date.String(),
			rec.Customer,
			rec.Quantity.InexactFloat64(),
			rec.Rate.InexactFloat64(),
			rec.Amount.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetRecords, cell, &row); err != nil {
			return nil, fmt.Errorf("write record row %d: %w", i+1, err)
		}
	}

	sumHeader := []interface{}{"Customer", "Quantity (Litre)", "Amount"}
	if err := f.SetSheetRow(SheetSummary, "A1", &sumHeader); err != nil {
		return nil, fmt.Errorf("write summary header: %w", err)
	}
	for i, row := range summary.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("summary cell name: %w", err)
		}
		values := []interface{}{
			row.Customer,
			row.Quantity.InexactFloat64(),
			row.Amount.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetSummary, cell, &values); err != nil {
			return nil, fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
