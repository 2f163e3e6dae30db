package main

import (
	"fmt"
	"os"

	"github.com/diillson/agent-pricing-factory/internal/adapter/driven/config"
	"github.com/diillson/agent-pricing-factory/internal/adapter/driven/export"
	"github.com/diillson/agent-pricing-factory/internal/adapter/driven/store"
	"github.com/diillson/agent-pricing-factory/internal/adapter/driving/cli"
	"github.com/diillson/agent-pricing-factory/internal/application/usecase"
	"github.com/diillson/agent-pricing-factory/pkg/console"
	"github.com/diillson/agent-pricing-factory/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	parameterStore := store.NewParameterStore()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	pricingUseCase := usecase.NewPricingUseCase(
		parameterStore,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetPricingUseCase(pricingUseCase)
	app.SetConsole(consoleImpl)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
