package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/mhr3/cstring/cstr"
	"github.com/spf13/cobra"
)

// maxLine bounds a single input line for fold.
const maxLine = 16 << 20

type foldOptions struct {
	upper bool
	lower bool
}

func newFoldCmd() *cobra.Command {
	var opts foldOptions

	cmd := &cobra.Command{
		Use:   "fold (--upper | --lower)",
		Short: "Convert the case of every line read from stdin",
		Long: `Reads stdin line by line, copies each line into a C string, converts
its ASCII letters and writes it to stdout. Lines holding a nul byte
cannot be C strings; they are logged and skipped.

Examples:
  printf 'Alex!\n' | cstrcheck fold --upper
  cstrcheck fold --lower < headers.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFold(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.upper, "upper", false, "Convert to upper case")
	cmd.Flags().BoolVar(&opts.lower, "lower", false, "Convert to lower case")
	cmd.MarkFlagsMutuallyExclusive("upper", "lower")
	cmd.MarkFlagsOneRequired("upper", "lower")
	return cmd
}

func runFold(r io.Reader, w io.Writer, opts foldOptions) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	out := bufio.NewWriter(w)

	s := cstr.New()
	defer s.Free()

	var lines, skipped int
	for sc.Scan() {
		lines++
		s.Clear()
		if _, err := s.Write(sc.Bytes()); err != nil {
			skipped++
			slog.Warn("skipping line", "line", lines, "err", err)
			continue
		}
		if opts.upper {
			s.Upper()
		} else {
			s.Lower()
		}
		out.Write(s.Bytes())
		out.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	slog.Debug("fold done", "lines", lines, "skipped", skipped, "capacity", s.Cap())
	return nil
}
