package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/africanqueen007/ctl-travel-budget-app/database"
	"github.com/africanqueen007/ctl-travel-budget-app/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// buildRecords turns a calculated breakdown into the records to persist: one
// for a single destination, two siblings for a multi-city trip with airfare
// apportioned 1/3 to the first destination and 2/3 to the second. The split
// is a fixed allocation policy, not derived from per-leg prices.
func buildRecords(req services.TripRequest, b *services.BudgetBreakdown, groupID, uid string) []*database.TravelRequest {
	base := database.TravelRequest{
		GroupID:          groupID,
		UserID:           uid,
		SubmittedBy:      req.SubmittedBy,
		Division:         req.Division,
		Purpose:          req.Purpose,
		TargetAudience:   req.TargetAudience,
		DepartureCountry: req.DepartureCountry,
		DepartureCity:    req.DepartureCity,
		FareClass:        string(req.FareClass),
	}

	if req.SecondDestination == nil {
		r := base
		r.ID = uuid.New().String()
		r.Country = req.DestinationCountry
		r.City = req.DestinationCity
		r.TargetDate = req.TargetDate
		r.TravelDays = req.TravelDays
		r.NumberOfPeople = req.Travelers
		r.Airfare = b.AirfareTotal
		r.AirfareSource = string(b.Legs[0].Source)
		r.AirfareSourceURL = b.Legs[0].SourceURL
		r.HotelPerDay = b.Stays[0].HotelPerDayUSD
		r.DmaPerDay = b.Stays[0].AllowancePerDay
		r.TotalCost = b.TotalCost
		r.Contingency = b.Contingency
		r.OverallBudget = b.OverallBudget
		return []*database.TravelRequest{&r}
	}

	shares := []float64{b.AirfareTotal / 3, b.AirfareTotal * 2 / 3}
	dates := []string{req.TargetDate, b.Legs[1].Date}

	records := make([]*database.TravelRequest, 0, 2)
	for i, stay := range b.Stays {
		r := base
		r.ID = uuid.New().String()
		r.Country = stay.Country
		r.City = stay.City
		r.TargetDate = dates[i]
		r.TravelDays = stay.StayDays
		r.NumberOfPeople = req.Travelers
		r.Airfare = shares[i]
		r.AirfareSource = string(b.Legs[i].Source)
		r.AirfareSourceURL = b.Legs[i].SourceURL
		r.HotelPerDay = stay.HotelPerDayUSD
		r.DmaPerDay = stay.AllowancePerDay

		perPerson := shares[i] + stay.HotelCost + stay.AllowanceCost
		r.TotalCost = perPerson * float64(req.Travelers)
		r.Contingency = r.TotalCost * services.ContingencyRate
		r.OverallBudget = r.TotalCost + r.Contingency
		records = append(records, &r)
	}
	return records
}

// SaveRequestHandler calculates a budget and persists the resulting records.
// There is no transaction across siblings; a partial multi-city save is
// reported and the calculation stays in the response for retry.
func SaveRequestHandler(c *gin.Context) {
	req, ok := bindTripRequest(c)
	if !ok {
		return
	}

	rates, degraded := services.CurrentRates()
	calc := services.NewBudgetCalculator(services.GetAirfareResolver())
	breakdown, err := calc.Calculate(c.Request.Context(), req, rates, degraded)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation failed"})
		return
	}

	records := buildRecords(req, breakdown, uuid.New().String(), userID(c))
	saved := 0
	for _, r := range records {
		if err := database.SaveRequest(r); err != nil {
			log.Printf("❌ Failed to save request %s: %v", r.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to save request",
				"saved":     saved,
				"breakdown": breakdown,
			})
			return
		}
		saved++
	}

	c.JSON(http.StatusOK, gin.H{"requests": records, "breakdown": breakdown})
}

// ListRequestsHandler lists the caller's saved requests, optionally filtered
// by division.
func ListRequestsHandler(c *gin.Context) {
	requests, err := database.ListRequests(userID(c), c.Query("division"))
	if err != nil {
		log.Printf("❌ Failed to list requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// UpdateRequestHandler re-prices a single saved record with new parameters.
// Multi-city edits go through delete-and-resave; each sibling is its own
// single-destination record at this point.
func UpdateRequestHandler(c *gin.Context) {
	id := c.Param("id")
	uid := userID(c)

	existing, err := database.GetRequest(id, uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	req, ok := bindTripRequest(c)
	if !ok {
		return
	}
	if req.SecondDestination != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A saved record covers one destination; save a new request for multi-city trips"})
		return
	}

	rates, degraded := services.CurrentRates()
	calc := services.NewBudgetCalculator(services.GetAirfareResolver())
	breakdown, err := calc.Calculate(c.Request.Context(), req, rates, degraded)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation failed"})
		return
	}

	records := buildRecords(req, breakdown, existing.GroupID, uid)
	record := records[0]
	record.ID = existing.ID

	if err := database.UpdateRequest(record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		log.Printf("❌ Failed to update request %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request", "breakdown": breakdown})
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": record, "breakdown": breakdown})
}

func DeleteRequestHandler(c *gin.Context) {
	id := c.Param("id")
	if err := database.DeleteRequest(id, userID(c)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		log.Printf("❌ Failed to delete request %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
