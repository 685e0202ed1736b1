package services

import (
	"context"
	"time"

	"rentora/internal/models"
	"rentora/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository mocks the PropertyRepository interface for testing
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) SoftDelete(ctx context.Context, id, landlordID uuid.UUID) error {
	args := m.Called(ctx, id, landlordID)
	return args.Error(0)
}

func (m *MockPropertyRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Property, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListActive(ctx context.Context, limit, offset int) ([]*models.Property, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) CountByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	args := m.Called(ctx, landlordID)
	return args.Int(0), args.Error(1)
}

func (m *MockPropertyRepository) RecentByLandlord(ctx context.Context, landlordID uuid.UUID, limit int) ([]*models.Property, error) {
	args := m.Called(ctx, landlordID, limit)
	return args.Get(0).([]*models.Property), args.Error(1)
}

// MockLeaseRepository mocks the LeaseRepository interface for testing
type MockLeaseRepository struct {
	mock.Mock
}

func (m *MockLeaseRepository) Create(ctx context.Context, lease *models.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lease), args.Error(1)
}

func (m *MockLeaseRepository) Update(ctx context.Context, lease *models.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LeaseStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeaseRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.LeaseSummary, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.LeaseSummary), args.Error(1)
}

func (m *MockLeaseRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.LeaseSummary, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.LeaseSummary), args.Error(1)
}

func (m *MockLeaseRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	args := m.Called(ctx, tenantID)
	return args.Int(0), args.Error(1)
}

func (m *MockLeaseRepository) CountByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	args := m.Called(ctx, landlordID)
	return args.Int(0), args.Error(1)
}

func (m *MockLeaseRepository) ActiveByLandlord(ctx context.Context, landlordID uuid.UUID, now time.Time) ([]*models.LeaseSummary, error) {
	args := m.Called(ctx, landlordID, now)
	return args.Get(0).([]*models.LeaseSummary), args.Error(1)
}

func (m *MockLeaseRepository) ActiveByTenant(ctx context.Context, tenantID uuid.UUID, now time.Time) (*models.LeaseSummary, error) {
	args := m.Called(ctx, tenantID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaseSummary), args.Error(1)
}

func (m *MockLeaseRepository) EndingBetween(ctx context.Context, from, to time.Time) ([]*models.LeaseSummary, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]*models.LeaseSummary), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) SetSubaccountCode(ctx context.Context, id uuid.UUID, code string) error {
	args := m.Called(ctx, id, code)
	return args.Error(0)
}

// MockInvitationRepository mocks the InvitationRepository interface for testing
type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *MockInvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Invitation, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*models.Invitation, error) {
	args := m.Called(ctx, email, limit, offset)
	return args.Get(0).([]*models.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) CountPendingByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	args := m.Called(ctx, landlordID)
	return args.Int(0), args.Error(1)
}

func (m *MockInvitationRepository) CountPendingByEmail(ctx context.Context, email string) (int, error) {
	args := m.Called(ctx, email)
	return args.Int(0), args.Error(1)
}

func (m *MockInvitationRepository) ResolveIfPending(ctx context.Context, q repositories.Querier, id uuid.UUID, status models.InvitationStatus) (bool, error) {
	args := m.Called(ctx, q, id, status)
	return args.Bool(0), args.Error(1)
}

// MockPaymentRepository mocks the PaymentRepository interface for testing
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreateIdempotent(ctx context.Context, q repositories.Querier, payment *models.Payment) (bool, error) {
	args := m.Called(ctx, q, payment)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) RecentByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]*models.Payment, error) {
	args := m.Called(ctx, tenantID, limit)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) LastCompletedAt(ctx context.Context, leaseID uuid.UUID) (*time.Time, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockPaymentRepository) SumCompletedByLandlord(ctx context.Context, landlordID uuid.UUID) (float64, error) {
	args := m.Called(ctx, landlordID)
	return args.Get(0).(float64), args.Error(1)
}

// MockNotificationService mocks the NotificationService interface for testing
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}

func (m *MockNotificationService) SendSMS(ctx context.Context, recipient, message string) error {
	args := m.Called(ctx, recipient, message)
	return args.Error(0)
}

// MockPaystackService mocks the PaystackService interface for testing
type MockPaystackService struct {
	mock.Mock
}

func (m *MockPaystackService) CreateSubaccount(ctx context.Context, req *CreateSubaccountRequest) (*SubaccountData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SubaccountData), args.Error(1)
}

func (m *MockPaystackService) InitializeTransaction(ctx context.Context, email string, amountKobo int64, subaccountCode string) (*InitializeData, error) {
	args := m.Called(ctx, email, amountKobo, subaccountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*InitializeData), args.Error(1)
}

func (m *MockPaystackService) VerifyTransaction(ctx context.Context, reference string) (*VerifyData, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VerifyData), args.Error(1)
}
