package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tsawler/dstv"
)

func newInspectCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print the header and record counts of a DSTV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.converter(cmd, args[0])
			if err != nil {
				return err
			}
			s, warnings, err := conv.Summary()
			a.log.LogWarnings(warnings)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			printSummary(w, s, warnings)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

func printSummary(w io.Writer, s *dstv.Summary, warnings []dstv.Warning) {
	h := s.Header
	fmt.Fprintf(w, "Piece:     %s (order %s, drawing %s, phase %s)\n", h.PieceID, h.OrderID, h.DrawingID, h.PhaseID)
	fmt.Fprintf(w, "Steel:     %s\n", h.SteelGrade)
	fmt.Fprintf(w, "Profile:   %s (%s)\n", h.Profile, h.CodeProfile)
	fmt.Fprintf(w, "Quantity:  %d\n", h.Quantity)
	fmt.Fprintf(w, "Length:    %g\n", h.Length)
	fmt.Fprintf(w, "Encoding:  %s\n", s.Encoding)
	fmt.Fprintf(w, "Format:    %s\n", s.Format)
	fmt.Fprintf(w, "Canvas:    %g x %g\n", s.Width, s.Height)
	fmt.Fprintf(w, "Faces:     %v (%d items)\n", s.Faces, s.Items)

	kinds := make([]string, 0, len(s.Records))
	for k := range s.Records {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	fmt.Fprintln(w, "Records:")
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-12s %d\n", k, s.Records[k])
	}

	if len(warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		fmt.Fprintln(w, dstv.FormatWarnings(warnings))
	}
}
