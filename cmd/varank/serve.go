package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clinseq/varank/internal/classify"
	"github.com/clinseq/varank/internal/pipeline"
	"github.com/clinseq/varank/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr        string
		topN        int
		refdataPath string
		samplePath  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the VCF processing HTTP server",
		Long: `Start an HTTP server that accepts VCF uploads on POST /process-vcf and
returns ranked classification results.`,
		Example: `  varank serve
  varank serve --addr :9000 --sample testdata/sample_variants.vcf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			store, err := openStore(refdataPath, logger)
			if err != nil {
				return err
			}

			server.Version = version
			srv := server.New(server.Config{
				Addr:       addr,
				TopN:       topN,
				Classify:   classifyConfigFromViper(),
				SamplePath: samplePath,
				Debug:      verbose,
			}, store, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().IntVarP(&topN, "top", "n", pipeline.DefaultTopN, "Number of top variants to report")
	cmd.Flags().StringVar(&refdataPath, "refdata", "", "DuckDB reference database (default: built-in tables)")
	cmd.Flags().StringVar(&samplePath, "sample", "", "Sample VCF served by POST /process-vcf-sample")

	viper.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	viper.BindPFlag("serve.sample", cmd.Flags().Lookup("sample"))

	return cmd
}

// classifyConfigFromViper resolves thresholds from config, falling back to
// the defaults.
func classifyConfigFromViper() classify.Config {
	cfg := classify.DefaultConfig()
	if v := viper.GetFloat64("thresholds.pathogenic"); v > 0 {
		cfg.PathogenicFreq = v
	}
	if v := viper.GetFloat64("thresholds.benign"); v > 0 {
		cfg.BenignFreq = v
	}
	if v := viper.GetFloat64("thresholds.moderate"); v > 0 {
		cfg.ModerateFreq = v
	}
	return cfg
}
