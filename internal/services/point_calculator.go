package services

import (
	"time"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/shopspring/decimal"
)

// CalculatePoints computes the points a product earns on the given
// date under the category's active earning rule.
//
// Missing data never produces an error, only zero points: no category,
// no active rule, a rule without a multiplier, or a product without a
// price all yield 0. Otherwise the result is
// floor(price * pointsPerDollar), computed with exact decimal
// arithmetic and truncated toward zero (15.99 at 1 point per dollar is
// 15 points, not 16).
func CalculatePoints(product *models.Product, category *models.Category, date time.Time) int {
	if product == nil || category == nil {
		return 0
	}
	rule := category.ActiveRule(date)
	if rule == nil || rule.PointsPerDollar == nil || *rule.PointsPerDollar == 0 {
		return 0
	}
	if product.Price == nil {
		return 0
	}
	price, err := decimal.NewFromString(product.Price.String())
	if err != nil {
		return 0
	}
	points := price.Mul(decimal.NewFromInt(int64(*rule.PointsPerDollar))).IntPart()
	if points < 0 {
		return 0
	}
	return int(points)
}
