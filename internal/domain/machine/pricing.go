package machine

import "math"

// Depreciation model parameters.
const (
	tradeInNewRatio      = 0.85
	tradeInFirstYear     = 0.75
	tradeInYearlyRetain  = 0.85
	tradeInFloorRatio    = 0.10
	refurbNewDiscount    = 0.10
	refurbBaseDiscount   = 0.20
	refurbYearlyDiscount = 0.05
	refurbMaxAge         = 4
)

// Age returns the whole years between releaseYear and currentYear.  A
// release year in the future counts as age 0.
func Age(releaseYear, currentYear int) int {
	if age := currentYear - releaseYear; age > 0 {
		return age
	}
	return 0
}

// EstimateTradeInValue estimates what a machine bought for price in
// releaseYear fetches as a trade-in in currentYear.
//
//	age 0:  85% of price
//	age ≥1: price × 0.75 × 0.85^(age-1), never below 10% of price
//
// The result is rounded to whole currency units; a negative price yields 0.
func EstimateTradeInValue(price float64, releaseYear, currentYear int) float64 {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	age := Age(releaseYear, currentYear)
	var v float64
	if age == 0 {
		v = price * tradeInNewRatio
	} else {
		v = price * tradeInFirstYear * math.Pow(tradeInYearlyRetain, float64(age-1))
	}
	if floor := price * tradeInFloorRatio; v < floor {
		v = floor
	}
	return math.Round(v)
}

// EstimateRefurbishedPrice estimates the refurbished price in currentYear.
// The discount is 10% at age 0, else 20% + 5% × min(age, 4).
func EstimateRefurbishedPrice(price float64, releaseYear, currentYear int) float64 {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	age := Age(releaseYear, currentYear)
	discount := refurbNewDiscount
	if age > 0 {
		discount = refurbBaseDiscount + refurbYearlyDiscount*float64(min(age, refurbMaxAge))
	}
	return math.Round(price * (1 - discount))
}

// Estimates bundles both estimators for one machine.
type Estimates struct {
	Age         int     `json:"age"`
	TradeIn     float64 `json:"tradeIn"`
	Refurbished float64 `json:"refurbished"`
}

// Estimate runs both estimators against m's base price.
func Estimate(m Machine, currentYear int) Estimates {
	return Estimates{
		Age:         Age(m.Year, currentYear),
		TradeIn:     EstimateTradeInValue(m.Price, m.Year, currentYear),
		Refurbished: EstimateRefurbishedPrice(m.Price, m.Year, currentYear),
	}
}

//Personal.AI order the ending
