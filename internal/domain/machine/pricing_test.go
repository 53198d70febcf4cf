package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const thisYear = 2025

func TestEstimateTradeInValue(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		year  int
		want  float64
	}{
		{"new", 1000, thisYear, 850},
		{"one year", 1000, thisYear - 1, 750},
		{"four years", 1000, thisYear - 4, 461},
		{"three years", 1000, thisYear - 3, 542},
		{"floored", 1000, thisYear - 20, 100},
		{"future release", 1000, thisYear + 2, 850},
		{"zero price", 0, thisYear, 0},
		{"negative price", -500, thisYear, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTradeInValue(tt.price, tt.year, thisYear))
		})
	}
}

func TestEstimateTradeInValue_NeverBelowFloor(t *testing.T) {
	for age := 0; age <= 30; age++ {
		v := EstimateTradeInValue(2499, thisYear-age, thisYear)
		assert.GreaterOrEqual(t, v, 250.0, "age %d", age)
	}
}

func TestEstimateRefurbishedPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		year  int
		want  float64
	}{
		{"new", 1000, thisYear, 900},
		{"one year", 1000, thisYear - 1, 750},
		{"two years", 1000, thisYear - 2, 700},
		{"four years", 1000, thisYear - 4, 600},
		{"capped at four", 1000, thisYear - 9, 600},
		{"future release", 1000, thisYear + 1, 900},
		{"negative price", -1, thisYear, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateRefurbishedPrice(tt.price, tt.year, thisYear))
		})
	}
}

func TestAge(t *testing.T) {
	assert.Equal(t, 0, Age(2025, 2025))
	assert.Equal(t, 3, Age(2022, 2025))
	assert.Equal(t, 0, Age(2027, 2025))
}

func TestEstimate(t *testing.T) {
	m := Machine{Price: 1000, Year: thisYear - 1}
	assert.Equal(t, Estimates{Age: 1, TradeIn: 750, Refurbished: 750}, Estimate(m, thisYear))
}
