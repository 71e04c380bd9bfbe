package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickmart/loyalty-backend/internal/config"
	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	"github.com/quickmart/loyalty-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

type AuthServiceImpl struct {
	customerRepo  repositories.CustomerRepository
	adminUserRepo repositories.AdminUserRepository
	cfg           *config.Config
}

func NewAuthService(customerRepo repositories.CustomerRepository, adminUserRepo repositories.AdminUserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		customerRepo:  customerRepo,
		adminUserRepo: adminUserRepo,
		cfg:           cfg,
	}
}

// CustomerLogin issues a token for a storefront customer. Customers
// identify by loyalty card id only; there is no password on this flow.
func (s *AuthServiceImpl) CustomerLogin(ctx context.Context, customerID primitive.ObjectID) (string, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			slog.Warn("Login attempt for unknown customer", "customerId", customerID.Hex())
			return "", ErrCustomerNotFound
		}
		return "", fmt.Errorf("failed to retrieve customer: %w", err)
	}

	return utils.GenerateJWT(customer.ID.Hex(), "customer", s.cfg)
}

// AdminRegister creates a back-office account with a bcrypt-hashed password
func (s *AuthServiceImpl) AdminRegister(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error) {
	_, err := s.adminUserRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing admin user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	adminUser := &models.AdminUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := s.adminUserRepo.Create(ctx, adminUser); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("Admin user registered", "email", adminUser.Email)
	return adminUser, nil
}

// AdminLogin verifies credentials and issues a token with the admin role
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, req *models.LoginRequest) (string, error) {
	adminUser, err := s.adminUserRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to retrieve admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminUser.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(adminUser.ID.Hex(), adminUser.Role, s.cfg)
}
