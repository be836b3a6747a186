// Package main is the entry point for the SkillSwap API server.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/kart-io/skillswap/cmd/apiserver/app"
)

func main() {
	app.NewApp().Run()
}
