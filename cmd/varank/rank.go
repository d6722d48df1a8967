package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/clinseq/varank/internal/annotation"
	"github.com/clinseq/varank/internal/classify"
	"github.com/clinseq/varank/internal/output"
	"github.com/clinseq/varank/internal/pipeline"
	"github.com/clinseq/varank/internal/vcf"
)

func newRankCmd() *cobra.Command {
	var (
		topN           int
		outputFormat   string
		outputFile     string
		refdataPath    string
		pathogenicFreq float64
		benignFreq     float64
		moderateFreq   float64
		workers        int
	)

	cmd := &cobra.Command{
		Use:   "rank <input-file>",
		Short: "Classify and rank variants in a VCF file",
		Long: `Parse a VCF file, classify each variant and report the top-ranked
variants by significance score. Use '-' to read from stdin.`,
		Example: `  varank rank input.vcf
  varank rank -f tab -n 20 input.vcf
  varank rank --refdata clinvar.duckdb input.vcf
  cat input.vcf | varank rank -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			store, err := openStore(refdataPath, logger)
			if err != nil {
				return err
			}

			parser, err := vcf.NewParser(args[0])
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			defer parser.Close()

			cfg := classify.Config{
				PathogenicFreq: pathogenicFreq,
				BenignFreq:     benignFreq,
				ModerateFreq:   moderateFreq,
			}

			p := pipeline.New(store, cfg)
			p.SetTopN(topN)
			p.SetWorkers(workers)
			p.SetLogger(logger)

			result, err := p.Run(parser)
			if err != nil {
				return err
			}

			for _, d := range parser.Diagnostics() {
				logger.Warn("skipped malformed line",
					zap.Int("line", d.Line),
					zap.String("reason", d.Reason))
			}

			out := os.Stdout
			if outputFile != "" {
				out, err = os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer out.Close()
			}

			switch outputFormat {
			case "json":
				return output.WriteJSON(out, output.NewResponse(result, parser.Diagnostics()))
			case "tab":
				tw := output.NewTabWriter(out)
				if err := tw.WriteHeader(); err != nil {
					return err
				}
				for _, sv := range result.TopVariants {
					if err := tw.Write(sv); err != nil {
						return err
					}
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown output format %q", outputFormat)
			}
		},
	}

	defaults := classify.DefaultConfig()
	cmd.Flags().IntVarP(&topN, "top", "n", pipeline.DefaultTopN, "Number of top variants to report")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json, tab")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&refdataPath, "refdata", "", "DuckDB reference database (default: built-in tables)")
	cmd.Flags().Float64Var(&pathogenicFreq, "pathogenic-freq", defaults.PathogenicFreq, "Rare-variant frequency threshold")
	cmd.Flags().Float64Var(&benignFreq, "benign-freq", defaults.BenignFreq, "Common-variant frequency threshold")
	cmd.Flags().Float64Var(&moderateFreq, "moderate-freq", defaults.ModerateFreq, "Moderate-frequency threshold for low-impact variants")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size (0 = number of CPUs)")

	viper.BindPFlag("rank.top", cmd.Flags().Lookup("top"))
	viper.BindPFlag("rank.refdata", cmd.Flags().Lookup("refdata"))
	viper.BindPFlag("thresholds.pathogenic", cmd.Flags().Lookup("pathogenic-freq"))
	viper.BindPFlag("thresholds.benign", cmd.Flags().Lookup("benign-freq"))
	viper.BindPFlag("thresholds.moderate", cmd.Flags().Lookup("moderate-freq"))

	return cmd
}

// openStore loads the reference store, either built-in or from a DuckDB
// database file.
func openStore(refdataPath string, logger *zap.Logger) (*annotation.Store, error) {
	if refdataPath == "" {
		refdataPath = viper.GetString("rank.refdata")
	}
	if refdataPath == "" {
		return annotation.NewStore(), nil
	}

	store, err := annotation.LoadDuckDB(refdataPath)
	if err != nil {
		return nil, fmt.Errorf("loading reference data: %w", err)
	}
	logger.Info("loaded reference data",
		zap.String("path", refdataPath),
		zap.Int("variants", store.KnownVariants()))
	return store, nil
}
