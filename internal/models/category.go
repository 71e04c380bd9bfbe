package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products and carries the point earning rules that
// apply to them. Rules are embedded in insertion order; that order is
// authoritative when validity windows overlap.
type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Rules []PointEarningRule `bson:"rules" json:"rules"`
}

// PointEarningRule converts spend in a category into points during its
// validity window. A nil bound means the window is open on that side; a
// nil or zero PointsPerDollar means a matched rule yields no points.
type PointEarningRule struct {
	ID              primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
	PointsPerDollar *int               `bson:"pointsPerDollar,omitempty" json:"pointsPerDollar,omitempty"`
	StartDate       *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// ActiveRule returns the rule applicable on the given date, or nil if no
// rule's window contains it. Rules are scanned in stored order and the
// first match wins, so the earliest-inserted rule takes precedence over
// later rules with overlapping windows. Comparison is at day
// granularity: a rule ending on a date is still active for the whole of
// that day.
func (c *Category) ActiveRule(date time.Time) *PointEarningRule {
	day := DateOnly(date)
	for i := range c.Rules {
		rule := &c.Rules[i]
		if rule.StartDate != nil && day.Before(DateOnly(*rule.StartDate)) {
			continue
		}
		if rule.EndDate != nil && day.After(DateOnly(*rule.EndDate)) {
			continue
		}
		return rule
	}
	return nil
}

// DateOnly truncates a time to midnight UTC, keeping only the calendar
// date. Rule windows and transaction dates compare at this granularity.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
