// Package app provides the SkillSwap API server application.
package app

import (
	"github.com/kart-io/skillswap/cmd/apiserver/app/options"
	"github.com/kart-io/skillswap/internal/apiserver"
	"github.com/kart-io/skillswap/pkg/app"
)

const (
	appName        = "skillswap-apiserver"
	appDescription = `SkillSwap API Server

The REST backend for the SkillSwap peer-to-peer skill exchange.

This server provides:
  - Authentication (sign-up, sign-in, password reset)
  - The member directory
  - Swap request lifecycle and feedback
  - Inbox notifications`
)

// NewApp creates a new application instance.
func NewApp() *app.App {
	opts := options.NewServerOptions()

	return app.NewApp(
		app.WithName(appName),
		app.WithShortDescription("SkillSwap API server"),
		app.WithDescription(appDescription),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return run(opts)
		}),
	)
}

func run(opts *options.ServerOptions) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	opts.LogOptions.AddInitialField("service.name", appName)
	opts.LogOptions.AddInitialField("service.version", app.GetVersion())
	if err := opts.LogOptions.Init(); err != nil {
		return err
	}

	return apiserver.Run(cfg)
}
