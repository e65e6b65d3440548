// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the admin client uses to talk
// to the court-fund server.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrForbidden] for
// 403, [ErrUnprocessable] for 422). The server's {"message": "..."} body is
// kept as the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/court-fund/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the court-fund admin API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with login and password. On success it stores the
	// returned bearer token via SetToken and returns it.
	Login(ctx context.Context, user models.User) (string, error)

	// MyFund returns the fund owned by the authenticated admin.
	MyFund(ctx context.Context) (models.Fund, error)

	// Deposit adds amount to the caller's fund and returns the new state.
	Deposit(ctx context.Context, amount decimal.Decimal) (models.Fund, error)

	// Withdraw subtracts amount from the caller's fund. The server answers
	// 422 when the balance would drop below zero.
	Withdraw(ctx context.Context, amount decimal.Decimal) (models.Fund, error)

	// ListFees returns the service fees matching filter.
	ListFees(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error)

	// CreateFee creates a service fee.
	CreateFee(ctx context.Context, req models.CreateServiceFeeRequest) (models.ServiceFee, error)

	// UpdateFeeStatus changes the status of the fee req.ID.
	UpdateFeeStatus(ctx context.Context, req models.UpdateFeeStatusRequest) (models.ServiceFee, error)
}
