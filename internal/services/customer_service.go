package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure CustomerServiceImpl implements CustomerService
var _ CustomerService = (*CustomerServiceImpl)(nil)

type CustomerServiceImpl struct {
	customerRepo    repositories.CustomerRepository
	accountRepo     repositories.LoyaltyAccountRepository
	transactionRepo repositories.PointTransactionRepository
}

func NewCustomerService(
	customerRepo repositories.CustomerRepository,
	accountRepo repositories.LoyaltyAccountRepository,
	transactionRepo repositories.PointTransactionRepository,
) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// GetCustomerByID retrieves a customer
func (s *CustomerServiceImpl) GetCustomerByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve customer: %w", err)
	}
	return customer, nil
}

// GetAccountByCustomerID retrieves the loyalty account owned by a customer
func (s *CustomerServiceImpl) GetAccountByCustomerID(ctx context.Context, customerID primitive.ObjectID) (*models.LoyaltyAccount, error) {
	account, err := s.accountRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLoyaltyAccountNotFound
		}
		return nil, fmt.Errorf("failed to retrieve loyalty account: %w", err)
	}
	return account, nil
}

// GetTransactionsByCustomerID retrieves a customer's point transaction
// history, oldest first
func (s *CustomerServiceImpl) GetTransactionsByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.PointTransaction, error) {
	account, err := s.GetAccountByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.FindByAccountID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return transactions, nil
}

// CreateCustomer provisions a customer together with their loyalty
// account. Every customer gets exactly one account. The two writes are
// not transactional: if the account insert fails the customer record
// remains and checkout reports the missing account until provisioning
// is retried.
func (s *CustomerServiceImpl) CreateCustomer(ctx context.Context, customer *models.Customer, openingPoints int) (*models.Customer, error) {
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	account := &models.LoyaltyAccount{
		CustomerID: customer.ID,
		Points:     openingPoints,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create loyalty account: %w", err)
	}

	slog.Info("Customer provisioned", "customerId", customer.ID.Hex(), "accountId", account.ID.Hex())
	return customer, nil
}
