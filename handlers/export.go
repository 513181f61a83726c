package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/africanqueen007/ctl-travel-budget-app/database"

	"github.com/gin-gonic/gin"
)

var csvHeader = []string{
	"Submitted By", "Division", "Purpose", "Departure", "Destination",
	"Fare Class", "Traveler Count", "Target Date", "Mission Days",
	"Airfare", "Hotel/Day", "DMA/Day", "Total Cost", "Contingency",
	"Overall Budget",
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// quoteField wraps a string value in double quotes, doubling any embedded
// quote. Every string column is quoted unconditionally; numeric columns are
// never quoted. encoding/csv quotes only when a field needs it, which would
// change the exported row shape.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvRow(r *database.TravelRequest) []string {
	return []string{
		quoteField(r.SubmittedBy),
		quoteField(r.Division),
		quoteField(r.Purpose),
		quoteField(fmt.Sprintf("%s, %s", r.DepartureCity, r.DepartureCountry)),
		quoteField(fmt.Sprintf("%s, %s", r.City, r.Country)),
		quoteField(r.FareClass),
		strconv.Itoa(r.NumberOfPeople),
		quoteField(r.TargetDate),
		strconv.Itoa(r.TravelDays),
		money(r.Airfare),
		money(r.HotelPerDay),
		money(r.DmaPerDay),
		money(r.TotalCost),
		money(r.Contingency),
		money(r.OverallBudget),
	}
}

// csvDocument renders the header plus one row per record. The header cells
// carry no commas and stay unquoted.
func csvDocument(requests []*database.TravelRequest) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteByte('\n')
	for _, r := range requests {
		b.WriteString(strings.Join(csvRow(r), ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// ExportCSVHandler streams the caller's saved requests as CSV, one row per
// record, optionally filtered by division.
func ExportCSVHandler(c *gin.Context) {
	division := c.Query("division")
	requests, err := database.ListRequests(userID(c), division)
	if err != nil {
		log.Printf("❌ Failed to list requests for export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved requests"})
		return
	}

	filename := "travel_budget_report.csv"
	if division != "" {
		filename = fmt.Sprintf("travel_budget_report_%s.csv", division)
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvDocument(requests)))
}
