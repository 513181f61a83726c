package handlers

import (
	"log"
	"net/http"

	"github.com/africanqueen007/ctl-travel-budget-app/database"
	"github.com/africanqueen007/ctl-travel-budget-app/services"

	"github.com/gin-gonic/gin"
)

// RequestPDFHandler renders a saved request as a downloadable budget summary.
func RequestPDFHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing request ID"})
		return
	}

	request, err := database.GetRequest(id, userID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	pdfBytes, err := services.GenerateBudgetPDF(services.BudgetPDFData{
		SubmittedBy:      request.SubmittedBy,
		Division:         request.Division,
		Purpose:          request.Purpose,
		DepartureCity:    request.DepartureCity,
		DepartureCountry: request.DepartureCountry,
		City:             request.City,
		Country:          request.Country,
		FareClass:        request.FareClass,
		TargetDate:       request.TargetDate,
		TravelDays:       request.TravelDays,
		NumberOfPeople:   request.NumberOfPeople,
		Airfare:          request.Airfare,
		AirfareSource:    request.AirfareSource,
		HotelPerDay:      request.HotelPerDay,
		DmaPerDay:        request.DmaPerDay,
		TotalCost:        request.TotalCost,
		Contingency:      request.Contingency,
		OverallBudget:    request.OverallBudget,
	})
	if err != nil {
		log.Printf("❌ PDF generation failed for request %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=travel-budget-request.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
