package services

import (
	"context"
	"errors"
	"testing"

	"github.com/quickmart/loyalty-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCustomerFixture() (*CustomerServiceImpl, *mockCustomerRepo, *mockAccountRepo, *mockTransactionRepo) {
	customers := &mockCustomerRepo{customers: map[primitive.ObjectID]*models.Customer{}}
	accounts := &mockAccountRepo{accounts: map[primitive.ObjectID]*models.LoyaltyAccount{}}
	transactions := &mockTransactionRepo{}
	return NewCustomerService(customers, accounts, transactions), customers, accounts, transactions
}

func TestCreateCustomer_ProvisionsAccount(t *testing.T) {
	service, _, accounts, _ := newCustomerFixture()

	customer, err := service.CreateCustomer(context.Background(),
		&models.Customer{Name: "John Doe", Email: "john.doe@example.com"}, 100)
	require.NoError(t, err)
	assert.False(t, customer.ID.IsZero())

	account, err := service.GetAccountByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, account.Points)
	assert.Len(t, accounts.accounts, 1)
}

func TestCreateCustomer_AccountInsertFailureLeavesCustomer(t *testing.T) {
	service, customers, accounts, _ := newCustomerFixture()
	accounts.createErr = errors.New("write concern error")

	_, err := service.CreateCustomer(context.Background(),
		&models.Customer{Name: "Jane Smith", Email: "jane.smith@example.com"}, 200)
	require.Error(t, err)

	// The two writes are not transactional: the customer record survives
	// the failed account insert and lookups report the missing account.
	require.Len(t, customers.customers, 1)
	for id := range customers.customers {
		_, err := service.GetAccountByCustomerID(context.Background(), id)
		assert.ErrorIs(t, err, ErrLoyaltyAccountNotFound)
	}
}

func TestGetCustomerByID_NotFound(t *testing.T) {
	service, _, _, _ := newCustomerFixture()

	_, err := service.GetCustomerByID(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetTransactionsByCustomerID(t *testing.T) {
	service, _, accounts, transactions := newCustomerFixture()

	customer, err := service.CreateCustomer(context.Background(),
		&models.Customer{Name: "John Doe", Email: "john.doe@example.com"}, 0)
	require.NoError(t, err)
	account := accounts.accounts[customer.ID]

	require.NoError(t, transactions.Create(context.Background(), &models.PointTransaction{
		AccountID:    account.ID,
		PointsEarned: 15,
	}))

	history, err := service.GetTransactionsByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 15, history[0].PointsEarned)
}
