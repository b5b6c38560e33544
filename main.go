package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"canteen-widget/config"
	"canteen-widget/di"
	"canteen-widget/render"
	"canteen-widget/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	env         string
	configsPath string
	verbose     bool

	// Command flags
	renderJSON bool
	plotOutput string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "canteen-widget",
	Short: "Daily menu of the Mainz university canteens",
	Long: `canteen-widget fetches the daily plan of the Mainz university canteens, filters it
by the selected widget config and renders it as widget.

The optional [config] argument of the commands is the index of a widget config. Invalid
indices select the first config.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// renderCmd renders one widget to stdout
var renderCmd = &cobra.Command{
	Use:   "render [config]",
	Short: "Render the widget of a config",
	Long: `Renders the menu of today, or of tomorrow after the switch hour of the config.
Failures to load data render the error widget; the command still succeeds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

// serveCmd serves widgets over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve widgets over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

// plotCmd plots the meal prices of the day
var plotCmd = &cobra.Command{
	Use:   "plot [config]",
	Short: "Plot the meal prices of the day as HTML bar chart",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlot,
}

// fetchCmd prints a summary of the raw plan
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the plan and print its days and canteens",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the plan snapshot",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored plan snapshot",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

var cacheImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Store a plan snapshot file, the bundled one by default",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCacheImport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", di.ENV_PROD, "Environment, anything but prod serves the bundled plan")
	rootCmd.PersistentFlags().StringVar(&configsPath, "configs", "", "YAML file with widget configs (default: built-in configs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "Print the widget as JSON")
	plotCmd.Flags().StringVarP(&plotOutput, "out", "o", "meal_prices.html", "HTML output file")

	cacheCmd.AddCommand(cacheClearCmd, cacheImportCmd)
	rootCmd.AddCommand(renderCmd, serveCmd, plotCmd, fetchCmd, cacheCmd)
}

func newContainer() *di.Container {
	return di.NewContainer(env, configsPath, config.LoadSettings(), logger)
}

func configParam(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runRender(cmd *cobra.Command, args []string) error {
	container := newContainer()
	defer container.Close()

	cfg, index, err := config.ResolveWidgetConfig(container.WidgetConfigs, configParam(args))
	if err != nil {
		return err
	}
	logger.Debug("[Main] Rendering widget", zap.Int("config", index))

	widget := container.WidgetService.BuildWidget(cmd.Context(), cfg)

	out := cmd.OutOrStdout()
	if renderJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(widget)
	}
	return render.WriteText(out, widget)
}

func runServe(cmd *cobra.Command, args []string) error {
	container := newContainer()
	defer container.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	refresherDone := container.PlanRefresherService.StartPeriodicJob(ctx,
		config.PLAN_REFRESHER_INTERVAL_MINUTES*time.Minute)

	err := container.WidgetHttpServer.Run(ctx, container.Settings.HTTPAddress)
	stop()
	<-refresherDone
	return err
}

func runPlot(cmd *cobra.Command, args []string) error {
	container := newContainer()
	defer container.Close()

	cfg, _, err := config.ResolveWidgetConfig(container.WidgetConfigs, configParam(args))
	if err != nil {
		return err
	}

	plan, err := container.WidgetService.GetDailyPlan(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if err := util.PlotMealPricesToFile(plotOutput, plan.Day, plan.Date, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote meal prices of %s to %s\n", plan.Date, plotOutput)
	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	container := newContainer()
	defer container.Close()

	response, err := container.MensaAPI.GetPlan(cmd.Context())
	if err != nil {
		return err
	}
	util.PrintPlanResponsePartially(cmd.OutOrStdout(), response)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	container := newContainer()
	defer container.Close()

	if err := container.PlanSnapshotDao.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Plan snapshot deleted")
	return nil
}

func runCacheImport(cmd *cobra.Command, args []string) error {
	container := newContainer()
	defer container.Close()

	path := config.GetResourcePath(config.PLAN_SNAPSHOT_RESOURCE)
	if len(args) == 1 {
		path = args[0]
	}

	snapshot, err := util.ReadPlanSnapshotFromJSON(path)
	if err != nil {
		return err
	}
	if !snapshot.Valid() {
		return fmt.Errorf("plan snapshot %q has no date or plan", path)
	}
	if err := container.PlanSnapshotDao.Save(snapshot.Date, snapshot.Plan); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored plan snapshot of %s\n", snapshot.Date)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
