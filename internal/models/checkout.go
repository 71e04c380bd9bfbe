package models

// CheckoutRequest is the body of POST /checkout. Product ids are
// processed in the order given; duplicates earn points each time.
type CheckoutRequest struct {
	ProductIDs []string `json:"productIds" binding:"required"`
}

// CheckoutResult aggregates the outcome of a settlement: total points
// earned plus the per-product classification buckets, each preserving
// the original input order.
type CheckoutResult struct {
	TotalPointsEarned        int      `json:"totalPointsEarned"`
	InvalidProducts          []string `json:"invalidProducts"`
	ProductsMissingCategory  []string `json:"productsMissingCategory"`
	PointEarningRulesMissing []string `json:"pointEarningRulesMissing"`
}
