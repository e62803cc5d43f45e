package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/sdelab/internal/config"
	"github.com/san-kum/sdelab/internal/convergence"
	"github.com/san-kum/sdelab/internal/report"
	"github.com/san-kum/sdelab/internal/sde"
	"github.com/san-kum/sdelab/internal/storage"
	"github.com/san-kum/sdelab/internal/tui"
)

var (
	dataDir    string
	dts        string
	dtMin      float64
	dtMax      float64
	dtCount    int
	paths      int
	drift      float64
	diffusion  float64
	scheme     string
	seed       int64
	outputs    int
	configFile string
	preset     string
	svgOut     string
	noSave     bool
)

// main registers the sdelab subcommands and executes the root command. The
// process exits with status 1 when a command fails.
func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	rootCmd := &cobra.Command{
		Use:   "sdelab",
		Short: "strong convergence validation for SDE integrators",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sdelab", "data directory")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "run a step-size sweep against the exact GBM solution",
		RunE:  runValidate,
	}
	addSweepFlags(validateCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a sweep with a live progress view",
		RunE:  runLive,
	}
	addSweepFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweep runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "re-render a stored run's convergence plot",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sweep presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(validateCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dts, "dts", "", "explicit step sizes, comma separated")
	cmd.Flags().Float64Var(&dtMin, "dt-min", config.DefaultDtMin, "smallest step size")
	cmd.Flags().Float64Var(&dtMax, "dt-max", config.DefaultDtMax, "largest step size")
	cmd.Flags().IntVar(&dtCount, "dt-count", config.DefaultDtCount, "number of step sizes")
	cmd.Flags().IntVar(&paths, "paths", config.DefaultPaths, "ensemble size per step size")
	cmd.Flags().Float64Var(&drift, "drift", config.DefaultDrift, "drift coefficient a")
	cmd.Flags().Float64Var(&diffusion, "diffusion", config.DefaultDiffusion, "diffusion coefficient b")
	cmd.Flags().StringVar(&scheme, "scheme", config.DefaultScheme, "sde interpretation (ito|stratonovich)")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().IntVar(&outputs, "outputs", 2, "error sequences to report (0-2)")
	cmd.Flags().StringVar(&configFile, "config", "", "sweep config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&svgOut, "svg", "", "write the convergence plot to an svg file")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
}

// sweepParams assembles convergence parameters from preset, config file and
// flag overrides, in that precedence order.
func sweepParams(cmd *cobra.Command) (convergence.Params, error) {
	var p convergence.Params

	cfg := config.DefaultConfig()
	fromFile := false

	if preset != "" {
		pc := config.GetPreset(preset)
		if pc == nil {
			return p, fmt.Errorf("unknown preset %q", preset)
		}
		cfg = pc
		fromFile = true
	}
	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return p, err
		}
		cfg = fc
		fromFile = true
		slog.Info("loaded sweep config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("dt-min") {
		cfg.DtMin = dtMin
	}
	if flags.Changed("dt-max") {
		cfg.DtMax = dtMax
	}
	if flags.Changed("dt-count") {
		cfg.DtCount = dtCount
	}
	if flags.Changed("paths") {
		cfg.Paths = paths
	}
	if flags.Changed("scheme") {
		cfg.Scheme = scheme
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if flags.Changed("dts") {
		parsed, err := parseStepSizes(dts)
		if err != nil {
			return p, err
		}
		p.StepSizes = parsed
	} else {
		p.StepSizes = cfg.StepSizes()
	}

	p.Paths = cfg.Paths
	p.Outputs = outputs

	// Coefficients pass through only when actually supplied, so the
	// harness can enforce the both-or-neither contract.
	if flags.Changed("drift") {
		p.Drift = &drift
	} else if fromFile {
		p.Drift = &cfg.Drift
	}
	if flags.Changed("diffusion") {
		p.Diffusion = &diffusion
	} else if fromFile {
		p.Diffusion = &cfg.Diffusion
	}

	opts := sde.DefaultOptions().
		WithType(sde.Type(cfg.Scheme)).
		WithSeed(cfg.Seed)
	p.Options = &opts

	return p, nil
}

func parseStepSizes(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		h, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad step size %q: %w", part, err)
		}
		out = append(out, h)
	}
	return out, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := sweepParams(cmd)
	if err != nil {
		return err
	}

	res, err := convergence.Run(p)
	if err != nil {
		return err
	}

	finishSweep(res, p.Outputs)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	p, err := sweepParams(cmd)
	if err != nil {
		return err
	}

	msgs := make(chan tea.Msg)
	go func() {
		res, err := convergence.RunWithObserver(p, func(pr convergence.Progress) {
			msgs <- tui.ProgressMsg(pr)
		})
		msgs <- tui.DoneMsg{Result: res, Err: err}
	}()

	model := tui.NewModel(p.Options.Type, p.Paths, len(p.StepSizes), msgs)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	res, runErr := final.(tui.Model).Result()
	if runErr != nil {
		return runErr
	}
	if res == nil {
		// Viewer quit before the sweep finished.
		return nil
	}

	finishSweep(res, p.Outputs)
	return nil
}

// finishSweep prints the report, renders the plot, and persists the run.
func finishSweep(res *convergence.Result, requested int) {
	if requested > 0 {
		report.Summary(os.Stdout, res)
		if err := report.Table(os.Stdout, res); err != nil {
			slog.Warn("table rendering failed", "err", err)
		}
	}
	report.Timing(os.Stdout, res)
	fmt.Println()
	fmt.Println(report.Convergence(res))

	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(report.ConvergenceSVG(res, 800, 600)), 0644); err != nil {
			slog.Warn("svg export failed", "path", svgOut, "err", err)
		} else {
			slog.Info("svg written", "path", svgOut)
		}
	}

	if noSave {
		return
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		slog.Warn("data directory unavailable", "dir", dataDir, "err", err)
		return
	}
	id, err := st.Save(res)
	if err != nil {
		slog.Warn("run not saved", "err", err)
		return
	}
	slog.Info("run saved", "id", id)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCHEME\tPATHS\tORDER\tTIME\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.3f\t%.3fs\t%s\n",
			r.ID, r.Scheme, r.Paths, r.EmpiricalOrder, r.TotalSeconds,
			r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	report.Summary(os.Stdout, res)
	if err := report.Table(os.Stdout, res); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(report.Convergence(res))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
