package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/service"
	"github.com/MKhiriev/court-fund/internal/utils"
	"github.com/MKhiriev/court-fund/models"
)

// ─────────────────────────────────────────────
// Service mocks. Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockFundService struct {
	createFundFn     func(ctx context.Context, adminID int64, req models.CreateFundRequest) (models.Fund, error)
	getFundByAdminFn func(ctx context.Context, adminID int64) (models.Fund, error)
	getFundFn        func(ctx context.Context, fundID int64) (models.Fund, error)
	listFundsFn      func(ctx context.Context) ([]models.Fund, error)
	depositFn        func(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error)
	withdrawFn       func(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error)
}

func (m *mockFundService) CreateFund(ctx context.Context, adminID int64, req models.CreateFundRequest) (models.Fund, error) {
	return m.createFundFn(ctx, adminID, req)
}

func (m *mockFundService) GetFundByAdmin(ctx context.Context, adminID int64) (models.Fund, error) {
	return m.getFundByAdminFn(ctx, adminID)
}

func (m *mockFundService) GetFund(ctx context.Context, fundID int64) (models.Fund, error) {
	return m.getFundFn(ctx, fundID)
}

func (m *mockFundService) ListFunds(ctx context.Context) ([]models.Fund, error) {
	return m.listFundsFn(ctx)
}

func (m *mockFundService) Deposit(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error) {
	return m.depositFn(ctx, adminID, req)
}

func (m *mockFundService) Withdraw(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error) {
	return m.withdrawFn(ctx, adminID, req)
}

type mockServiceFeeService struct {
	createFn       func(ctx context.Context, req models.CreateServiceFeeRequest) (models.ServiceFee, error)
	getFn          func(ctx context.Context, feeID int64) (models.ServiceFee, error)
	listFn         func(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error)
	updateStatusFn func(ctx context.Context, req models.UpdateFeeStatusRequest) (models.ServiceFee, error)
	deleteFn       func(ctx context.Context, feeID int64) error
}

func (m *mockServiceFeeService) CreateServiceFee(ctx context.Context, req models.CreateServiceFeeRequest) (models.ServiceFee, error) {
	return m.createFn(ctx, req)
}

func (m *mockServiceFeeService) GetServiceFee(ctx context.Context, feeID int64) (models.ServiceFee, error) {
	return m.getFn(ctx, feeID)
}

func (m *mockServiceFeeService) ListServiceFees(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error) {
	return m.listFn(ctx, filter)
}

func (m *mockServiceFeeService) UpdateServiceFeeStatus(ctx context.Context, req models.UpdateFeeStatusRequest) (models.ServiceFee, error) {
	return m.updateStatusFn(ctx, req)
}

func (m *mockServiceFeeService) DeleteServiceFee(ctx context.Context, feeID int64) error {
	return m.deleteFn(ctx, feeID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services. Nil services stay
// nil, so a test fails loudly if it reaches a service it did not set up.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// withIdentity attaches identity the way the auth middleware does.
func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	return r.WithContext(utils.WithIdentity(r.Context(), identity))
}

var adminIdentity = models.Identity{UserID: 3, Role: models.RoleAdmin}
