package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/srcapi/filter"
)

// Filter flags shared by the list commands
var (
	whereExpr string
	preset    string
)

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression applied to the results")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// applyFilter narrows items with --where or --preset, if either is set
func applyFilter[T filter.Subject](ctx context.Context, items []T) ([]T, error) {
	program, err := filters.Resolve(whereExpr, strings.ToLower(preset))
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	if program == nil {
		return items, nil
	}

	logger.Debug().
		Str("filter", program.Expression()).
		Int("candidates", len(items)).
		Msg("Applying filter")

	return filter.Select(ctx, evaluator, program, items)
}

// writeResult prints v as JSON with --json, otherwise the console rendering
func writeResult(cmd *cobra.Command, v any, console string) error {
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), console)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
