package main

import (
	"os"

	"github.com/MKhiriev/court-fund/internal/client"
	"github.com/MKhiriev/court-fund/internal/config"
	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("court-fund-client", os.Stderr, false)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Adapter.Verbose {
		log = logger.NewClientLogger("court-fund-client", os.Stderr, true)
	}

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
