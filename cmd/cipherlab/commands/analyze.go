package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cipherlab/internal/analysis"
	"cipherlab/internal/ctxlog"
)

// report is the per-input result of analyze, shaped for all three output
// formats.
type report struct {
	Source             string             `json:"source" yaml:"source"`
	Letters            int                `json:"letters" yaml:"letters"`
	IndexOfCoincidence float64            `json:"index_of_coincidence" yaml:"index_of_coincidence"`
	Frequencies        map[string]float64 `json:"frequencies" yaml:"frequencies"`
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file ...]",
		Short: "Letter-frequency statistics of text or files",
		RunE:  runAnalyze,
	}
	cmd.Flags().StringP("text", "t", "", "text to analyze instead of files")
	cmd.Flags().String("format", "table", "output format (table, json, yaml)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	reports, err := collectReports(cmd, args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "table":
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printReport(cmd, r, len(reports) > 1)
		}
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		out, err := yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q. available: table, json, yaml", format)
	}
}

// collectReports analyzes every named file concurrently, or falls back to
// --text / stdin when no files are given. Results keep argument order.
func collectReports(cmd *cobra.Command, args []string) ([]report, error) {
	if len(args) == 0 {
		text, err := inputText(cmd)
		if err != nil {
			return nil, err
		}
		return []report{analyzeText("(stdin)", text)}, nil
	}

	reports := make([]report, len(args))
	var g errgroup.Group
	for i, name := range args {
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("read %q: %w", name, err)
			}
			reports[i] = analyzeText(name, string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ctxlog.Get(cmd.Context()).Debug("analyzed inputs", "count", len(reports))
	return reports, nil
}

func analyzeText(source, text string) report {
	freqs := analysis.Frequencies(text)
	out := make(map[string]float64, len(freqs))
	for r, f := range freqs {
		out[string(r)] = f
	}
	return report{
		Source:             source,
		Letters:            analysis.Letters(text),
		IndexOfCoincidence: analysis.IndexOfCoincidence(text),
		Frequencies:        out,
	}
}

func printReport(cmd *cobra.Command, r report, header bool) {
	w := cmd.OutOrStdout()
	if header {
		fmt.Fprintf(w, "%s:\n", r.Source)
	}
	fmt.Fprintf(w, "letters: %d\n", r.Letters)
	fmt.Fprintf(w, "index of coincidence: %.4f\n", r.IndexOfCoincidence)

	letters := make([]string, 0, len(r.Frequencies))
	for l := range r.Frequencies {
		letters = append(letters, l)
	}
	sort.Strings(letters)
	for _, l := range letters {
		fmt.Fprintf(w, "  %s  %.4f\n", l, r.Frequencies[l])
	}
}
