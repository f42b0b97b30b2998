package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

// DefaultAdapterAddress is the server base URL used by the client when none
// is configured.
const DefaultAdapterAddress = "http://localhost:8080"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the signup server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientRegistration is the registration payload collected from flags.
type ClientRegistration struct {
	Name     string
	Email    string
	Password string
	// Phones are "number:cityCode:countryCode" triples.
	Phones StringList
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Registration contains the user to register.
	Registration ClientRegistration
}

// GetClientConfig builds and validates the client configuration from the
// .env file, environment variables and command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	return buildClientConfig(os.Args[1:])
}

func buildClientConfig(args []string) (*ClientConfig, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(ClientConfig)
	for _, c := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, c, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	return cfg, cfg.validate()
}

// parseClientFlags parses the client flags from args.
//
// Flags:
//
//	-a server base URL
//	-timeout request timeout
//	-name, -email, -password user data
//	-phone repeatable "number:cityCode:countryCode"
func parseClientFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Registration.Name, "name", "", "User name")
	fs.StringVar(&cfg.Registration.Email, "email", "", "User email")
	fs.StringVar(&cfg.Registration.Password, "password", "", "User password")
	fs.Var(&cfg.Registration.Phones, "phone", "Phone as number:cityCode:countryCode (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
