package main

import (
	"go.uber.org/fx"

	"LearnVerse/internal/bootstrap"
	"LearnVerse/internal/logging"
	"LearnVerse/pkg/routes"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		routes.EchoModules,
		fx.WithLogger(logging.FxLogger),
	)

	app.Run()
}
