package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mhr3/cstring/cstr"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	needle string
	char   bool
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search --needle NEEDLE [--char] HAYSTACK",
		Short: "Print every step of a pattern search",
		Long: `Searches HAYSTACK for NEEDLE and prints each Match and Reject step in
order, followed by Done.

Examples:
  cstrcheck search --needle aaa cbaaaaab
  cstrcheck search --char --needle a banana`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.needle, "needle", "n", "", "Pattern to search for")
	cmd.Flags().BoolVarP(&opts.char, "char", "c", false, "Search for a single byte")
	cmd.MarkFlagRequired("needle")
	return cmd
}

func runSearch(w io.Writer, haystack string, opts searchOptions) error {
	hs, err := cstr.NewSubStr([]byte(haystack))
	if err != nil {
		return fmt.Errorf("haystack: %w", err)
	}

	var p cstr.Pattern
	if opts.char {
		if len(opts.needle) != 1 || opts.needle[0] == 0 {
			return errors.New("--char needs a needle of exactly one non-nul byte")
		}
		p = cstr.Char(opts.needle[0])
	} else {
		needle, err := cstr.NewSubStr([]byte(opts.needle))
		if err != nil {
			return fmt.Errorf("needle: %w", err)
		}
		p = needle
	}

	var matches int
	for _, st := range cstr.Collect(p.Searcher(hs)) {
		if st.Kind == cstr.Match {
			matches++
		}
		if _, err := fmt.Fprintln(w, st); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, cstr.Step{Kind: cstr.Done}); err != nil {
		return err
	}
	slog.Debug("search done", "haystack_len", hs.Len(), "matches", matches)
	return nil
}
