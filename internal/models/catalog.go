package models

// Provisioning request bodies for the admin surface. Dates are
// "YYYY-MM-DD"; an empty date leaves the rule unbounded on that side.

// CreateCustomerRequest defines the body for POST /customers
type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	OpeningPoints int    `json:"openingPoints"`
}

// CreateCategoryRequest defines the body for POST /categories
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProductRequest defines the body for POST /products
type CreateProductRequest struct {
	Name       string `json:"name" binding:"required"`
	Price      string `json:"price"`
	CategoryID string `json:"categoryId"`
	ImageURL   string `json:"imageUrl"`
}

// AddRuleRequest defines the body for POST /categories/:id/rules
type AddRuleRequest struct {
	PointsPerDollar *int   `json:"pointsPerDollar"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
}
