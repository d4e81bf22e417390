package services

import (
	"math"

	"microcredit/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AggregateCompanyStats computes the dashboard aggregates over a full
// collection snapshot. Missing or non-numeric fields count as zero; an empty
// snapshot yields all zeroes.
func AggregateCompanyStats(docs []bson.M) models.CompanyStats {
	stats := models.CompanyStats{TotalCompanies: len(docs)}
	if len(docs) == 0 {
		return stats
	}

	var portfolio, par30 float64
	countries := make(map[string]struct{})
	for _, d := range docs {
		portfolio += asFloat(d["portfolio_usd"])
		par30 += asFloat(d["par30"])
		stats.ActiveBorrowers += int(asFloat(d["active_borrowers"]))
		if c, ok := d["country"].(string); ok && c != "" {
			countries[c] = struct{}{}
		}
	}

	stats.TotalPortfolioUSD = round2(portfolio)
	stats.AvgPAR30 = round2(par30 / float64(stats.TotalCompanies))
	stats.CountriesCount = len(countries)
	return stats
}

// asFloat coerces the numeric types the driver may decode into.
func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
