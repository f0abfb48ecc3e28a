// internal/cli/command.go
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kofamscan/internal/cliutil"
	"kofamscan/internal/config"
	"kofamscan/internal/version"
	"kofamscan/internal/writers"
)

// Name is the command name used in usage and version output.
const Name = "kofam-report"

// RunFunc receives the resolved configuration.
type RunFunc func(cmd *cobra.Command, cfg config.Config) error

// UsageError marks errors caused by the command line or configuration.
type UsageError struct{ Err error }

func (e UsageError) Error() string { return e.Err.Error() }
func (e UsageError) Unwrap() error { return e.Err }

// NewRootCommand builds the command. Flags are bound into v, so flag values
// override KOFAM_* environment and config file values.
func NewRootCommand(v *viper.Viper, run RunFunc) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   Name + " [flags] [tblout ...]",
		Short: "Render KOfam hmmsearch hits as a KEGG Ortholog assignment report",
		Long: Name + ` joins hmmsearch --tblout tables with a KOfam ko_list and
prints one row per gene → KO hit. Hits at or above the KO's calibrated
threshold are marked with '*'.`,
		Example:       "  " + Name + " -k ko_list --queries proteins.faa --report-unannotated tblout/*.tbl",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return UsageError{err}
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return UsageError{err}
			}
			tbl, err := cliutil.ExpandPositionals(append(cfg.Tblout, args...))
			if err != nil {
				return UsageError{err}
			}
			cfg.Tblout = tbl
			if err := config.Validate(&cfg, writers.Known); err != nil {
				return UsageError{err}
			}
			return run(cmd, cfg)
		},
	}
	cmd.SetVersionTemplate(Name + " version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return UsageError{err} })

	fs := cmd.Flags()
	fs.SortFlags = false

	// Input
	fs.StringP("ko-list", "k", "", "KOfam ko_list file [*]")
	fs.StringSlice("tblout", nil, "hmmsearch --tblout file(s) (repeatable, '-' = stdin; positionals also accepted) [*]")
	fs.String("queries", "", "query FASTA fixing report order and unannotated genes (default: order of first hit)")

	// Filtering
	fs.Float64P("max-evalue", "E", 0, "drop hits with a larger E-value (0 = keep all) [0]")

	// Output
	fs.StringP("format", "f", writers.FormatDetail, "output: "+strings.Join(writers.Formats(), " | "))
	fs.Bool("report-unannotated", false, "list genes without hits as '-' rows [false]")
	fs.Bool("threshold-column", false, "show each KO's threshold (thrshld column) [false]")
	fs.Bool("keep-long-names", false, "widen the gene column instead of truncating names [false]")
	fs.Int("no-hit-exit-code", 0, "exit code when no hits were loaded [0]")

	// Performance
	fs.IntP("workers", "t", 0, "render gene blocks on N workers (0/1 = sequential) [0]")

	// Misc
	fs.StringVar(&cfgFile, "config", "", "YAML config file (default: ./kofam.yaml when present)")
	fs.BoolP("quiet", "q", false, "suppress warnings [false]")
	fs.Bool("verbose", false, "log load summaries [false]")

	return cmd
}
