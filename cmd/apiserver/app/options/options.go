// Package options contains flags and options for initializing the apiserver.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/kart-io/skillswap/internal/apiserver"
	logopts "github.com/kart-io/skillswap/pkg/options/logger"
)

// Supported store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// ServerOptions contains the configuration options for the server.
type ServerOptions struct {
	// Addr is the address the HTTP server listens on.
	Addr string `json:"addr" mapstructure:"addr"`

	// Driver selects the backing store: memory or sqlite.
	Driver string `json:"driver" mapstructure:"driver"`

	// DSN is the SQLite data source name. Ignored for the memory driver.
	DSN string `json:"dsn" mapstructure:"dsn"`

	// Seed loads the demo dataset into the store on startup.
	Seed bool `json:"seed" mapstructure:"seed"`

	// JWTSecret signs access tokens.
	JWTSecret string `json:"jwt-secret" mapstructure:"jwt-secret"`

	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration `json:"token-ttl" mapstructure:"token-ttl"`

	// ShutdownTimeout is the timeout for graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`

	// LogOptions contains logger configuration.
	LogOptions *logopts.Options `json:"log" mapstructure:"log"`
}

// NewServerOptions creates a ServerOptions instance with default values.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		Addr:            ":8080",
		Driver:          DriverMemory,
		DSN:             "skillswap.db",
		Seed:            true,
		JWTSecret:       "",
		TokenTTL:        24 * time.Hour,
		ShutdownTimeout: 30 * time.Second,
		LogOptions:      logopts.NewOptions(),
	}
}

// AddFlags adds server flags to the flagset.
func (o *ServerOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Addr, "addr", o.Addr, "Address for the HTTP server to listen on")
	fs.StringVar(&o.Driver, "driver", o.Driver, "Backing store driver (memory|sqlite)")
	fs.StringVar(&o.DSN, "dsn", o.DSN, "SQLite data source name")
	fs.BoolVar(&o.Seed, "seed", o.Seed, "Load the demo dataset on startup")
	fs.StringVar(&o.JWTSecret, "jwt-secret", o.JWTSecret, "Secret used to sign access tokens")
	fs.DurationVar(&o.TokenTTL, "token-ttl", o.TokenTTL, "Access token lifetime")
	fs.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", o.ShutdownTimeout, "Graceful shutdown timeout")

	o.LogOptions.AddFlags(fs)
}

// Complete completes all the required options.
func (o *ServerOptions) Complete() error {
	return nil
}

// Validate checks whether the options in ServerOptions are valid.
func (o *ServerOptions) Validate() error {
	if o.Driver != DriverMemory && o.Driver != DriverSQLite {
		return fmt.Errorf("unknown store driver %q", o.Driver)
	}
	if o.Driver == DriverSQLite && o.DSN == "" {
		return fmt.Errorf("dsn is required for the sqlite driver")
	}
	if o.JWTSecret == "" {
		return fmt.Errorf("jwt-secret is required")
	}
	if o.TokenTTL <= 0 {
		return fmt.Errorf("token-ttl must be positive")
	}
	return o.LogOptions.Validate()
}

// Config builds an apiserver.Config based on ServerOptions.
func (o *ServerOptions) Config() (*apiserver.Config, error) {
	return &apiserver.Config{
		Addr:            o.Addr,
		Driver:          o.Driver,
		DSN:             o.DSN,
		Seed:            o.Seed,
		JWTSecret:       o.JWTSecret,
		TokenTTL:        o.TokenTTL,
		ShutdownTimeout: o.ShutdownTimeout,
	}, nil
}
