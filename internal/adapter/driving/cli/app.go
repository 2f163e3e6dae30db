package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diillson/agent-pricing-factory/internal/adapter/driven/config"
	"github.com/diillson/agent-pricing-factory/internal/adapter/driving/api"
	"github.com/diillson/agent-pricing-factory/internal/application/usecase"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
	"github.com/diillson/agent-pricing-factory/pkg/version"
)

const defaultAddr = ":8080"

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	pricingUseCase *usecase.PricingUseCase
	console        types.ConsoleInterface
	version        string

	envFile string
	args    *types.CLIArgs
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		envFile: ".env",
	}

	rootCmd := &cobra.Command{
		Use:               "agent-pricing",
		Short:             "Agent Pricing Factory CLI",
		Long:              "Cost, pricing and margin calculator for AI agent teams.\nRunning without a subcommand executes the simulation.",
		Version:           version.FormatVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: app.prepare,
		RunE:              app.runSimulate,
	}
	rootCmd.SetVersionTemplate(`{{printf "Agent Pricing Factory version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("profile", "P", "", "Cost profile JSON file applied over the defaults")
	flags.StringArrayP("set", "s", nil, "Override a parameter, e.g. --set sim_count_standard=5 (repeatable)")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, xlsx, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.Bool("no-banner", false, "Do not print the welcome banner")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "tiers",
			Short: "Show the agent tier quick reference",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				app.pricingUseCase.RunTiers()
				return nil
			},
		},
		&cobra.Command{
			Use:   "tco",
			Short: "Compute the total cost of ownership per tier",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := app.pricingUseCase.RunTCO()
				return err
			},
		},
		&cobra.Command{
			Use:   "simulate",
			Short: "Simulate a mixed agent/human team and price it",
			Args:  cobra.NoArgs,
			RunE:  app.runSimulate,
		},
		&cobra.Command{
			Use:   "efficiency",
			Short: "Compare manual, semi-automated and agentic operating modes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := app.pricingUseCase.RunEfficiency()
				return err
			},
		},
		&cobra.Command{
			Use:   "models",
			Short: "Run the commercial models (FTE replacement, uplift, hybrid)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := app.pricingUseCase.RunModels()
				return err
			},
		},
		app.newDefaultsCmd(),
		app.newProfileCmd(),
		app.newServeCmd(),
	)

	app.rootCmd = rootCmd
	return app
}

func (app *CLIApp) newDefaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "List parameter keys with their default and current values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.pricingUseCase.RunDefaults(app.args.Namespace)
			return nil
		},
	}
	cmd.Flags().String("namespace", "", "Restrict to a key prefix (tco_, sim_, ae_, m1_, m2_, m4_)")
	return cmd
}

func (app *CLIApp) newProfileCmd() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Export or import parameter profiles",
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current values of a namespace to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.pricingUseCase.ExportProfile(app.args)
			return err
		},
	}
	exportCmd.Flags().String("namespace", "", "Key prefix to export (default: tco_)")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Apply a JSON profile, validate it and print the merged namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.pricingUseCase.ImportProfile(args[0], app.args.Namespace)
			return err
		},
	}
	importCmd.Flags().String("namespace", "", "Key prefix to import (default: tco_)")

	profileCmd.AddCommand(exportCmd, importCmd)
	return profileCmd
}

func (app *CLIApp) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculations as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := app.args.Addr
			if addr == "" {
				addr = defaultAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Cada requisição parte de uma cópia do store já configurado.
			server := api.NewServer(app.pricingUseCase.Store().Clone, app.console)
			return server.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default: "+defaultAddr+")")
	return cmd
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs lê as flags do comando em execução para um CLIArgs.
func (app *CLIApp) parseArgs(cmd *cobra.Command) *types.CLIArgs {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	profile, _ := flags.GetString("profile")
	set, _ := flags.GetStringArray("set")
	reportName, _ := flags.GetString("report-name")
	dir, _ := flags.GetString("dir")
	noBanner, _ := flags.GetBool("no-banner")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Profile:    profile,
		Set:        set,
		ReportName: reportName,
		Dir:        dir,
		NoBanner:   noBanner,
	}

	// Sem a flag explícita o config pode definir os tipos de relatório.
	if flags.Changed("report-type") {
		args.ReportType, _ = flags.GetStringSlice("report-type")
	}
	if flags.Lookup("namespace") != nil {
		args.Namespace, _ = flags.GetString("namespace")
	}
	if flags.Lookup("addr") != nil {
		args.Addr, _ = flags.GetString("addr")
	}
	return args
}

// prepare roda antes de todo subcomando: ambiente, banner e store.
func (app *CLIApp) prepare(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(app.envFile); err != nil {
		return err
	}

	args := app.parseArgs(cmd)
	config.EnvDefaults(args)

	if !args.NoBanner {
		displayWelcomeBanner(cmd.OutOrStdout())
		go version.CheckLatestVersion(app.version)
	}

	if err := app.pricingUseCase.PrepareStore(args); err != nil {
		return err
	}

	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}
	dir, err := resolveDir(args.Dir)
	if err != nil {
		return err
	}
	args.Dir = dir

	app.args = args
	return nil
}

func (app *CLIApp) runSimulate(cmd *cobra.Command, _ []string) error {
	_, err := app.pricingUseCase.RunSimulation(app.args)
	return err
}

// resolveDir retorna o diretório absoluto, usando o diretório atual quando vazio.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

// SetPricingUseCase sets the pricing use case for the CLI app.
func (app *CLIApp) SetPricingUseCase(useCase *usecase.PricingUseCase) {
	app.pricingUseCase = useCase
}

// SetConsole sets the console used by the API server logs.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}
