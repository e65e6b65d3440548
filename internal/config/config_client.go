package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the server HTTP API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token sent with authenticated requests.
	Token string
	// Verbose enables debug logging in the client.
	Verbose bool
}

// ClientConfig is the admin client configuration assembled from the same
// sources as [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Args holds the command and its arguments left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates the client-specific config view.
//
// It runs the same env/flags/JSON pipeline as [GetStructuredConfig] but only
// maps and validates the adapter settings.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	builder := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := builder.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	cfg.withDefaults()

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
			Verbose:        cfg.Adapter.Verbose,
		},
		Args: builder.args,
	}

	return clientCfg, clientCfg.validate()
}
