package handlers

import (
	"strings"
	"testing"

	"github.com/africanqueen007/ctl-travel-budget-app/database"
)

func exportRecord() *database.TravelRequest {
	return &database.TravelRequest{
		SubmittedBy:      "A. Cruz",
		Division:         "CTLA",
		Purpose:          "Regional workshop",
		DepartureCountry: "Philippines",
		DepartureCity:    "Manila",
		Country:          "Japan",
		City:             "Tokyo",
		FareClass:        "Business",
		TargetDate:       "2026-10-05",
		TravelDays:       3,
		NumberOfPeople:   2,
		Airfare:          1500,
		HotelPerDay:      380,
		DmaPerDay:        200,
		TotalCost:        6480,
		Contingency:      324,
		OverallBudget:    6804,
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1500, "1500.00"},
		{117.3, "117.30"},
		{6804, "6804.00"},
		{2150.756, "2150.76"},
	}
	for _, tc := range tests {
		if got := money(tc.in); got != tc.want {
			t.Errorf("money(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCSVRow_StringColumnsAlwaysQuoted(t *testing.T) {
	row := csvRow(exportRecord())
	if len(row) != len(csvHeader) {
		t.Fatalf("row has %d columns, header has %d", len(row), len(csvHeader))
	}

	want := []string{
		`"A. Cruz"`,
		`"CTLA"`,
		`"Regional workshop"`,
		`"Manila, Philippines"`,
		`"Tokyo, Japan"`,
		`"Business"`,
		"2",
		`"2026-10-05"`,
		"3",
		"1500.00",
		"380.00",
		"200.00",
		"6480.00",
		"324.00",
		"6804.00",
	}
	for i, cell := range row {
		if cell != want[i] {
			t.Errorf("column %d (%s) = %s, want %s", i, csvHeader[i], cell, want[i])
		}
	}
}

func TestCSVRow_EmbeddedQuoteDoubled(t *testing.T) {
	r := exportRecord()
	r.Purpose = `Workshop on "budgeting"`
	row := csvRow(r)
	if row[2] != `"Workshop on ""budgeting"""` {
		t.Errorf("purpose column = %s", row[2])
	}
}

func TestCSVDocument_RowPerRecord(t *testing.T) {
	doc := csvDocument([]*database.TravelRequest{exportRecord(), exportRecord()})

	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != strings.Join(csvHeader, ",") {
		t.Errorf("header line = %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"A. Cruz","CTLA",`) {
		t.Errorf("row line = %s", lines[1])
	}
}

func TestCSVDocument_EmptyListIsHeaderOnly(t *testing.T) {
	doc := csvDocument(nil)
	if doc != strings.Join(csvHeader, ",")+"\n" {
		t.Errorf("empty export = %q", doc)
	}
}
