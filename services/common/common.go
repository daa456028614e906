package common

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"

	"parlayPilot/models"
)

// LogWarning records a non-fatal problem both to the process log and to the
// error_logs table so operators can review it after the fact.
func LogWarning(db *gorm.DB, source string, err error) {
	log.Printf("[%s] %v", source, err)

	if db == nil {
		return
	}
	errLog := models.ErrorLog{
		Source:  source,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}

func FormatOdds(odds float64) string {
	response := ""

	if odds == float64(int(odds)) {
		response = strconv.Itoa(int(odds))
	} else {
		response = fmt.Sprintf("%.1f", odds)
	}

	if odds > 0 {
		return fmt.Sprintf("+%s", response)
	}
	return response
}

// AmericanToDecimal converts American odds to a decimal multiplier
// (stake included: +150 -> 2.5, -110 -> ~1.909).
func AmericanToDecimal(odds int) float64 {
	if odds > 0 {
		return (float64(odds) / 100.0) + 1.0
	}
	return (100.0 / float64(-odds)) + 1.0
}

// CalculateParlayOddsMultiplier calculates the combined odds multiplier for a
// parlay from the American odds of its winning legs. Pushed legs are excluded
// by the caller, so an empty list means "all legs pushed" and the stake rides
// at 1.0x.
func CalculateParlayOddsMultiplier(oddsList []int) float64 {
	multiplier := 1.0
	for _, odds := range oddsList {
		multiplier *= AmericanToDecimal(odds)
	}
	return multiplier
}

// CalculateParlayPayout calculates the payout for a parlay given the stake and
// odds multiplier.
func CalculateParlayPayout(amount int, oddsMultiplier float64) float64 {
	return float64(amount) * oddsMultiplier
}

var feedClient = &http.Client{
	Timeout: 15 * time.Second,
}

// ESPNWrapper performs a bounded GET against the ESPN public API. The caller
// owns the response body.
func ESPNWrapper(requestUrl string) (*http.Response, error) {
	req, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := feedClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("espn returned status %d for %s", resp.StatusCode, requestUrl)
	}
	return resp, nil
}
