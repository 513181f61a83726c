package handlers

import (
	"errors"
	"net/http"

	"github.com/africanqueen007/ctl-travel-budget-app/database"
	"github.com/africanqueen007/ctl-travel-budget-app/services"

	"github.com/gin-gonic/gin"
)

// userID scopes saved records to the caller. Authentication itself is handled
// upstream; an absent header maps to the anonymous user.
func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "anonymous"
}

func bindTripRequest(c *gin.Context) (services.TripRequest, bool) {
	var req services.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return req, false
	}
	if req.FareClass == "" {
		req.FareClass = services.FareBusiness
	}
	if req.Travelers == 0 {
		req.Travelers = 1
	}
	return req, true
}

// CalculateHandler prices a trip without persisting anything.
func CalculateHandler(c *gin.Context) {
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

	c.JSON(http.StatusOK, breakdown)
}

// RatesHandler reports the active exchange-rate set.
func RatesHandler(c *gin.Context) {
	rates, degraded := services.CurrentRates()
	c.JSON(http.StatusOK, gin.H{"rates": rates, "degraded": degraded})
}

// RefreshRatesHandler re-fetches the rate set; on failure the full fallback
// set is installed and flagged so the UI can notify the user.
func RefreshRatesHandler(c *gin.Context) {
	rates, degraded := services.RefreshRates(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"rates": rates, "degraded": degraded})
}

// CountriesHandler lists the countries known to the reference tables.
func CountriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": services.ListCountries()})
}

// CitiesHandler lists the known cities of a country, empty when unlisted.
func CitiesHandler(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing country parameter"})
		return
	}
	cities := services.ListCities(country)
	if cities == nil {
		cities = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"country": country, "cities": cities})
}

func HealthHandler(c *gin.Context) {
	db := database.DB
	dbStatus := "ok"
	if db == nil {
		dbStatus = "not initialized"
	} else if err := db.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "CTL Travel Budget API",
		"database": dbStatus,
	})
}
