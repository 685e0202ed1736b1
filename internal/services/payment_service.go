package services

import (
	"context"
	"errors"
	"math"

	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RecordPaymentInput struct {
	LeaseID uuid.UUID `json:"lease_id"`
	Amount  float64   `json:"amount"`
}

type InitializePaymentResult struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
	AmountKobo       int64  `json:"amount"`
}

type PaymentServiceInterface interface {
	RecordPayment(ctx context.Context, tenantID uuid.UUID, input *RecordPaymentInput) (*models.Payment, error)
	ListPayments(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.Payment, error)
	CreateSubaccount(ctx context.Context, landlordID uuid.UUID, input *CreateSubaccountRequest) (*SubaccountData, error)
	InitializePayment(ctx context.Context, caller common.Caller, leaseID uuid.UUID) (*InitializePaymentResult, error)
	VerifyPayment(ctx context.Context, tenantID uuid.UUID, reference string) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo  repositories.PaymentRepository
	leaseRepo    repositories.LeaseRepository
	userRepo     repositories.UserRepository
	propertyRepo repositories.PropertyRepository
	gateway      PaystackService
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, leaseRepo repositories.LeaseRepository,
	userRepo repositories.UserRepository, propertyRepo repositories.PropertyRepository, gateway PaystackService) PaymentServiceInterface {
	return &paymentService{
		paymentRepo:  paymentRepo,
		leaseRepo:    leaseRepo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		gateway:      gateway,
	}
}

// heldLease loads a lease and checks that the tenant holds it.
func (s *paymentService) heldLease(ctx context.Context, tenantID, leaseID uuid.UUID) (*models.Lease, error) {
	lease, err := s.leaseRepo.GetByID(ctx, leaseID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("lease")
	}
	if err != nil {
		return nil, err
	}
	if lease.TenantID != tenantID {
		return nil, common.Forbidden("lease not held by caller")
	}
	return lease, nil
}

// RecordPayment persists a completed payment with a generated transaction id.
// This is the non-gateway path.
func (s *paymentService) RecordPayment(ctx context.Context, tenantID uuid.UUID, input *RecordPaymentInput) (*models.Payment, error) {
	if input.LeaseID == uuid.Nil {
		return nil, common.Validationf("lease_id is required")
	}
	if err := common.ValidatePositiveFloat(input.Amount, "amount", 100000000); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}
	if _, err := s.heldLease(ctx, tenantID, input.LeaseID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:            uuid.New(),
		LeaseID:       input.LeaseID,
		TenantID:      tenantID,
		Amount:        input.Amount,
		Status:        models.PaymentCompleted,
		TransactionID: uuid.NewString(),
	}

	inserted, err := s.paymentRepo.CreateIdempotent(ctx, nil, payment)
	if err != nil {
		return nil, err
	}
	if !inserted {
		// A generated UUID colliding means a retry of the same request.
		return nil, common.Conflict("payment already recorded")
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.Payment, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	if caller.Role == models.RoleLandlord {
		return s.paymentRepo.ListByLandlord(ctx, caller.ID, limit, offset)
	}
	return s.paymentRepo.ListByTenant(ctx, caller.ID, limit, offset)
}

// CreateSubaccount registers a settlement subaccount with the gateway and
// stores the returned code on the landlord.
func (s *paymentService) CreateSubaccount(ctx context.Context, landlordID uuid.UUID, input *CreateSubaccountRequest) (*SubaccountData, error) {
	if err := common.ValidateRequiredString(input.BusinessName, "business_name"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}
	if err := common.ValidateRequiredString(input.BankCode, "settlement_bank"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}
	if err := common.ValidateRequiredString(input.AccountNumber, "account_number"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}

	data, err := s.gateway.CreateSubaccount(ctx, input)
	if err != nil {
		return nil, common.Upstreamf(err, "failed to create gateway subaccount")
	}
	if err := s.userRepo.SetSubaccountCode(ctx, landlordID, data.SubaccountCode); err != nil {
		return nil, err
	}
	return data, nil
}

// InitializePayment starts a gateway transaction for the lease's rent. The
// amount converts to the minor currency unit; the caller is redirected to the
// returned authorization URL.
func (s *paymentService) InitializePayment(ctx context.Context, caller common.Caller, leaseID uuid.UUID) (*InitializePaymentResult, error) {
	lease, err := s.heldLease(ctx, caller.ID, leaseID)
	if err != nil {
		return nil, err
	}

	subaccountCode := ""
	if property, err := s.propertyRepo.GetByID(ctx, lease.PropertyID); err == nil {
		if landlord, err := s.userRepo.GetByID(ctx, property.LandlordID); err == nil && landlord.SubaccountCode != nil {
			subaccountCode = *landlord.SubaccountCode
		}
	}

	amountKobo := int64(math.Round(lease.RentAmount * 100))
	data, err := s.gateway.InitializeTransaction(ctx, caller.Email, amountKobo, subaccountCode)
	if err != nil {
		return nil, common.Upstreamf(err, "failed to initialize gateway transaction")
	}

	return &InitializePaymentResult{
		AuthorizationURL: data.AuthorizationURL,
		Reference:        data.Reference,
		AmountKobo:       amountKobo,
	}, nil
}

// VerifyPayment reconciles a gateway reference. A successful remote status
// persists a completed Payment keyed by the reference; the conditional insert
// de-duplicates on transaction_id, so verifying the same reference twice (or
// two concurrent verifies) yields exactly one row. A gateway failure aborts
// the insert: lifecycle state here does depend on the upstream result.
func (s *paymentService) VerifyPayment(ctx context.Context, tenantID uuid.UUID, reference string) (*models.Payment, error) {
	if err := common.ValidateRequiredString(reference, "reference"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}

	data, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, common.Upstreamf(err, "failed to verify gateway transaction")
	}
	if data.Status != "success" {
		return nil, common.Validationf("transaction %s is not successful (status %s)", reference, data.Status)
	}

	lease, err := s.leaseRepo.ActiveByTenant(ctx, tenantID, timeNow())
	if errors.Is(err, repositories.ErrNoRows) {
		return nil, common.Validationf("no active lease to credit the payment against")
	}
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:            uuid.New(),
		LeaseID:       lease.ID,
		TenantID:      tenantID,
		Amount:        float64(data.Amount) / 100,
		Status:        models.PaymentCompleted,
		TransactionID: data.Reference,
	}

	inserted, err := s.paymentRepo.CreateIdempotent(ctx, nil, payment)
	if err != nil {
		return nil, err
	}
	if !inserted {
		// Already credited: return the existing row, keeping verification
		// idempotent from the caller's point of view.
		return s.paymentRepo.GetByTransactionID(ctx, data.Reference)
	}
	return payment, nil
}
