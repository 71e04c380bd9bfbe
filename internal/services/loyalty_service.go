package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure LoyaltyServiceImpl implements LoyaltyService
var _ LoyaltyService = (*LoyaltyServiceImpl)(nil)

type LoyaltyServiceImpl struct {
	customerRepo    repositories.CustomerRepository
	accountRepo     repositories.LoyaltyAccountRepository
	productRepo     repositories.ProductRepository
	categoryRepo    repositories.CategoryRepository
	transactionRepo repositories.PointTransactionRepository
}

func NewLoyaltyService(
	customerRepo repositories.CustomerRepository,
	accountRepo repositories.LoyaltyAccountRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	transactionRepo repositories.PointTransactionRepository,
) *LoyaltyServiceImpl {
	return &LoyaltyServiceImpl{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Checkout settles a basket against the customer's loyalty account.
//
// Products are processed independently in input order; one bad id never
// aborts the batch. A product that cannot earn lands in exactly one of
// the result buckets: unknown or malformed id, unresolvable category,
// or no applicable rule (which also covers a matched rule that yields
// zero points). Repository failures other than not-found abort the
// whole settlement.
//
// The balance is applied in a single atomic increment after all
// products are processed. Transactions already written are not rolled
// back if that final write fails.
func (s *LoyaltyServiceImpl) Checkout(ctx context.Context, customerID primitive.ObjectID, productIDs []string, txDate time.Time) (*models.CheckoutResult, error) {
	slog.Info("Processing checkout", "customerId", customerID.Hex(), "productCount", len(productIDs))

	// 1. The customer and their account must both exist before any
	// product is looked at.
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			slog.Warn("Checkout for unknown customer", "customerId", customerID.Hex())
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve customer: %w", err)
	}

	account, err := s.accountRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			slog.Warn("Checkout for customer without loyalty account", "customerId", customerID.Hex())
			return nil, ErrLoyaltyAccountNotFound
		}
		return nil, fmt.Errorf("failed to retrieve loyalty account: %w", err)
	}

	result := &models.CheckoutResult{
		InvalidProducts:          []string{},
		ProductsMissingCategory:  []string{},
		PointEarningRulesMissing: []string{},
	}

	// 2. Classify and settle each product.
	for _, rawID := range productIDs {
		productID, err := primitive.ObjectIDFromHex(rawID)
		if err != nil {
			result.InvalidProducts = append(result.InvalidProducts, rawID)
			continue
		}

		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				result.InvalidProducts = append(result.InvalidProducts, rawID)
				continue
			}
			return nil, fmt.Errorf("failed to retrieve product %s: %w", rawID, err)
		}

		// The raw category id on the product is authoritative; the
		// category is always re-fetched rather than trusted from any
		// embedded copy.
		category, err := s.resolveCategory(ctx, product)
		if err != nil {
			return nil, err
		}
		if category == nil {
			result.ProductsMissingCategory = append(result.ProductsMissingCategory, rawID)
			continue
		}

		points := CalculatePoints(product, category, txDate)
		if points == 0 {
			// No rule active on txDate, or the matched rule yields
			// nothing. Both cases classify the same way.
			result.PointEarningRulesMissing = append(result.PointEarningRulesMissing, rawID)
			continue
		}

		transaction := &models.PointTransaction{
			AccountID:       account.ID,
			ProductID:       product.ID,
			PointsEarned:    points,
			TransactionDate: models.DateOnly(txDate),
		}
		if err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return nil, fmt.Errorf("failed to record point transaction for product %s: %w", rawID, err)
		}
		result.TotalPointsEarned += points
	}

	// 3. Apply the accumulated total in one call, whatever it is.
	if err := s.accountRepo.IncrementPoints(ctx, account.ID, result.TotalPointsEarned); err != nil {
		return nil, fmt.Errorf("failed to update loyalty account balance: %w", err)
	}

	slog.Info("Checkout settled",
		"customerId", customerID.Hex(),
		"accountId", account.ID.Hex(),
		"pointsEarned", result.TotalPointsEarned,
		"invalid", len(result.InvalidProducts),
		"missingCategory", len(result.ProductsMissingCategory),
		"noRule", len(result.PointEarningRulesMissing))

	return result, nil
}

// resolveCategory fetches the product's category by its raw reference.
// It returns (nil, nil) when the product has no category or the
// reference points at nothing, and an error only for repository
// failures.
func (s *LoyaltyServiceImpl) resolveCategory(ctx context.Context, product *models.Product) (*models.Category, error) {
	if product.CategoryID.IsZero() {
		return nil, nil
	}
	category, err := s.categoryRepo.FindByID(ctx, product.CategoryID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve category %s: %w", product.CategoryID.Hex(), err)
	}
	return category, nil
}
