package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/kerbaras/appassets/pkg/app/components"
	"github.com/kerbaras/appassets/pkg/config"
	"github.com/kerbaras/appassets/pkg/render"
	"github.com/kerbaras/appassets/pkg/services"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	configPath  string
	preset      string
	concurrency int
	watch       bool
	summary     bool
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert source artwork into raster assets",
	Long: `Convert every job of a preset or manifest, one after another.

A failing job is reported and the batch moves on. The command exits with
status 1 when any job failed.

Examples:
  appassets convert
  appassets convert --preset pwa
  appassets convert --config assets.toml --summary
  appassets convert --watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listPresets, _ := cmd.Flags().GetBool("list-presets")
		if listPresets {
			printPresetList(cmd.OutOrStdout())
			return nil
		}

		var opts convertOptions
		opts.configPath, _ = cmd.Flags().GetString("config")
		opts.preset, _ = cmd.Flags().GetString("preset")
		opts.concurrency, _ = cmd.Flags().GetInt("concurrency")
		opts.watch, _ = cmd.Flags().GetBool("watch")
		opts.summary, _ = cmd.Flags().GetBool("summary")

		if opts.configPath != "" && cmd.Flags().Changed("preset") {
			return fmt.Errorf("--config and --preset cannot be combined")
		}
		if opts.concurrency < 0 {
			return fmt.Errorf("--concurrency must be zero or positive")
		}

		return runConvert(cmd, opts)
	},
}

func init() {
	convertCmd.Flags().StringP("config", "c", "", "Manifest file (.toml, .yaml or .yml)")
	convertCmd.Flags().StringP("preset", "p", config.DefaultPreset, "Built-in job set")
	convertCmd.Flags().IntP("concurrency", "j", 0, "Jobs to run at once (0 uses the manifest value, sequential by default)")
	convertCmd.Flags().BoolP("watch", "w", false, "Keep running and re-convert sources when they change")
	convertCmd.Flags().Bool("summary", false, "Print a table of results after the batch")
	convertCmd.Flags().Bool("list-presets", false, "List built-in presets")
}

func runConvert(cmd *cobra.Command, opts convertOptions) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	manifest, err := loadManifest(opts)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	return convert(ctx, cmd.OutOrStdout(), logger, manifest, opts)
}

// loadManifest picks the manifest file when given, else the named preset
func loadManifest(opts convertOptions) (*config.Manifest, error) {
	if opts.configPath != "" {
		return config.Load(opts.configPath)
	}

	name := opts.preset
	if name == "" {
		name = config.DefaultPreset
	}
	preset, ok := config.GetPreset(name)
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s. Use --list-presets to see available options", name)
	}
	return config.FromPreset(preset), nil
}

// convert runs the manifest's jobs, printing one line per job and a final
// completion line to out.
func convert(ctx context.Context, out io.Writer, logger *slog.Logger, manifest *config.Manifest, opts convertOptions) error {
	concurrency := opts.concurrency
	if concurrency == 0 {
		concurrency = manifest.Concurrency
	}

	processor := render.NewImageProcessor(manifest.RenderSettings())
	converter := services.NewConverter(processor,
		services.WithConcurrency(concurrency),
		services.WithLogger(logger),
		services.WithProgress(func(progress services.ConversionProgress) {
			if line := components.Notice(progress); line != "" {
				fmt.Fprintln(out, line)
			}
		}),
	)

	jobs := manifest.ConversionJobs()

	if opts.watch {
		fmt.Fprintln(out, "👀 Watching sources, press Ctrl+C to stop")
		return services.NewWatcher(converter, jobs).Run(ctx)
	}

	report := converter.Run(ctx, jobs)

	if opts.summary {
		fmt.Fprintln(out, components.Summary(report))
	}

	if failed := len(report.Failed()); failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(report.Results))
	}
	return nil
}

func printPresetList(out io.Writer) {
	fmt.Fprintln(out, "📦 Built-in presets:")
	for _, preset := range config.ListPresets() {
		fmt.Fprintf(out, "  %-10s - %s\n", preset.Name, preset.Description)
		for _, job := range preset.Jobs {
			fmt.Fprintf(out, "      %s\n", job)
		}
	}
}
