package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// BudgetPDFData is everything the printable budget summary needs.
type BudgetPDFData struct {
	SubmittedBy      string
	Division         string
	Purpose          string
	DepartureCity    string
	DepartureCountry string
	City             string
	Country          string
	FareClass        string
	TargetDate       string
	TravelDays       int
	NumberOfPeople   int
	Airfare          float64
	AirfareSource    string
	HotelPerDay      float64
	DmaPerDay        float64
	TotalCost        float64
	Contingency      float64
	OverallBudget    float64
}

// GenerateBudgetPDF renders a one-page budget summary and returns raw bytes;
// nothing touches the filesystem.
func GenerateBudgetPDF(data BudgetPDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "CTL Travel Budget", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Travel Budget Request Summary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	disclaimer := "Airfare figures are estimates, not fares. Verify prices with a travel agent before committing funds."
	if data.AirfareSource == string(SourceFallback) {
		disclaimer = "ESTIMATED FIGURES - airfare sources were unavailable and a default rate was applied. Verify before committing funds."
	}
	pdf.MultiCell(164, 4, disclaimer, "", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(110, 7, value, "", 1, "L", false, 0, "")
	}

	money := func(v float64) string { return fmt.Sprintf("$%.2f", v) }

	// ── Trip Details ─────────────────────────────────────────
	sectionHeader("Trip Details")
	row("Submitted By", data.SubmittedBy)
	row("Division", data.Division)
	if data.Purpose != "" {
		row("Purpose", data.Purpose)
	}
	row("Departure", fmt.Sprintf("%s, %s", data.DepartureCity, data.DepartureCountry))
	row("Destination", fmt.Sprintf("%s, %s", data.City, data.Country))
	row("Fare Class", data.FareClass)
	row("Target Date", data.TargetDate)
	row("Mission Days", fmt.Sprintf("%d", data.TravelDays))
	row("Travelers", fmt.Sprintf("%d", data.NumberOfPeople))
	pdf.Ln(4)

	// ── Budget Breakdown ─────────────────────────────────────
	sectionHeader("Budget Breakdown")
	row("Airfare (per person)", money(data.Airfare))
	row("Hotel (per day)", money(data.HotelPerDay))
	row("DMA (per day)", money(data.DmaPerDay))
	row("Total Cost", money(data.TotalCost))
	row("Contingency (5%)", money(data.Contingency))
	pdf.Ln(4)

	// ── Overall ──────────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(170, 12, fmt.Sprintf("  OVERALL BUDGET: %s", money(data.OverallBudget)), "", 1, "L", true, 0, "")

	pdf.SetTextColor(120, 120, 120)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Ln(6)
	pdf.CellFormat(170, 5, "Generated "+time.Now().UTC().Format("2006-01-02 15:04 UTC"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
