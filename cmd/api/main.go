// @title CreatorPass API
// @version 1.0
// @description Content listing and subscription ledger with creator payout routing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log/slog"
	"os"

	"creatorpass/internal/app/bootstrap"
)

func main() {
	api, err := bootstrap.BuildAPI()
	if err != nil {
		slog.Error("api bootstrap failed", "error", err.Error())
		os.Exit(1)
	}
	defer api.Close()

	if err := api.Server.Start(); err != nil {
		api.Logger.Error("http server stopped", "error", err.Error())
		os.Exit(1)
	}
}
