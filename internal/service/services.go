package service

import (
	"github.com/MKhiriev/court-fund/internal/config"
	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/store"
)

type Services struct {
	AuthService       AuthService
	FundService       FundService
	ServiceFeeService ServiceFeeService
	AppInfoService    AppInfoService
}

// NewServices builds the service layer on top of repos. Fund and service fee
// services are wrapped with their validation decorators.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(repos.UserRepository, cfg, logger),
		FundService: NewFundValidationService().
			Wrap(NewFundService(repos.FundRepository, repos.UserRepository, logger)),
		ServiceFeeService: NewServiceFeeValidationService().
			Wrap(NewServiceFeeService(repos.ServiceFeeRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
