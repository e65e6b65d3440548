package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/court-fund/internal/config"
	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/utils"
	"github.com/MKhiriev/court-fund/models"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	loginPath       = "/api/user/login"
	myFundPath      = "/api/admin/funds/me"
	depositPath     = "/api/admin/funds/me/deposit"
	withdrawPath    = "/api/admin/funds/me/withdraw"
	serviceFeesPath = "/api/admin/service-fees"
	feeStatusPath   = "/api/admin/service-fees/{feeID}/status"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. A token from the config is installed right away.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login and reads the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post(loginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", user.Login).Msg("logged in")
	return token, nil
}

// MyFund implements [ServerAdapter] via GET /api/admin/funds/me.
func (h *httpServerAdapter) MyFund(ctx context.Context) (models.Fund, error) {
	var fund models.Fund

	req, err := h.authedRequest(ctx)
	if err != nil {
		return fund, err
	}

	resp, err := req.SetResult(&fund).Get(myFundPath)
	if err != nil {
		return fund, fmt.Errorf("my fund request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Fund{}, err
	}

	return fund, nil
}

// Deposit implements [ServerAdapter] via POST /api/admin/funds/me/deposit.
func (h *httpServerAdapter) Deposit(ctx context.Context, amount decimal.Decimal) (models.Fund, error) {
	return h.changeBalance(ctx, depositPath, amount)
}

// Withdraw implements [ServerAdapter] via POST /api/admin/funds/me/withdraw.
func (h *httpServerAdapter) Withdraw(ctx context.Context, amount decimal.Decimal) (models.Fund, error) {
	return h.changeBalance(ctx, withdrawPath, amount)
}

func (h *httpServerAdapter) changeBalance(ctx context.Context, path string, amount decimal.Decimal) (models.Fund, error) {
	var fund models.Fund

	req, err := h.authedRequest(ctx)
	if err != nil {
		return fund, err
	}

	resp, err := req.
		SetBody(models.BalanceChangeRequest{Amount: amount}).
		SetResult(&fund).
		Post(path)
	if err != nil {
		return fund, fmt.Errorf("balance change request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Fund{}, err
	}

	return fund, nil
}

// ListFees implements [ServerAdapter] via GET /api/admin/service-fees.
// Zero-valued filter fields are not sent.
func (h *httpServerAdapter) ListFees(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error) {
	var result models.ServiceFeesResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParamsFromValues(filterQuery(filter)).
		SetResult(&result).
		Get(serviceFeesPath)
	if err != nil {
		return nil, fmt.Errorf("list fees request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.ServiceFees, nil
}

func filterQuery(filter models.ServiceFeeFilter) url.Values {
	q := url.Values{}
	if filter.CourtID > 0 {
		q.Set("court_id", strconv.FormatInt(filter.CourtID, 10))
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Month != "" {
		q.Set("month", filter.Month)
	}
	if filter.DueBefore != nil {
		q.Set("due_before", filter.DueBefore.UTC().Format(time.RFC3339))
	}
	return q
}

// CreateFee implements [ServerAdapter] via POST /api/admin/service-fees.
func (h *httpServerAdapter) CreateFee(ctx context.Context, feeReq models.CreateServiceFeeRequest) (models.ServiceFee, error) {
	var fee models.ServiceFee

	req, err := h.authedRequest(ctx)
	if err != nil {
		return fee, err
	}

	resp, err := req.
		SetBody(feeReq).
		SetResult(&fee).
		Post(serviceFeesPath)
	if err != nil {
		return fee, fmt.Errorf("create fee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceFee{}, err
	}

	return fee, nil
}

// UpdateFeeStatus implements [ServerAdapter] via
// PATCH /api/admin/service-fees/{feeID}/status.
func (h *httpServerAdapter) UpdateFeeStatus(ctx context.Context, statusReq models.UpdateFeeStatusRequest) (models.ServiceFee, error) {
	var fee models.ServiceFee

	req, err := h.authedRequest(ctx)
	if err != nil {
		return fee, err
	}

	resp, err := req.
		SetPathParam("feeID", strconv.FormatInt(statusReq.ID, 10)).
		SetBody(statusReq).
		SetResult(&fee).
		Patch(feeStatusPath)
	if err != nil {
		return fee, fmt.Errorf("update fee status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceFee{}, err
	}

	return fee, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}
