package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"university-assistant/internal/intake/heuristic"
)

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <text>",
		Short: "Show what the keyword rules extract from a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printRoute(cmd.OutOrStdout(), strings.Join(args, " "))
			return nil
		},
	}
}

func printRoute(out io.Writer, text string) {
	name, ok := heuristic.ExtractName(text)
	if !ok {
		name = "-"
	}
	year := "-"
	if y, ok := heuristic.ExtractYear(text); ok {
		year = string(y)
	}
	query := heuristic.StripQueryPrefix(text)
	unit := heuristic.RouteUnit(query)

	fmt.Fprintf(out, "name:     %s\n", name)
	fmt.Fprintf(out, "year:     %s\n", year)
	fmt.Fprintf(out, "query:    %s\n", query)
	fmt.Fprintf(out, "unit:     %s (%s)\n", unit, unit.Label())
	fmt.Fprintf(out, "greeting: %t\n", heuristic.IsGreeting(text))
	fmt.Fprintf(out, "question: %t\n", heuristic.LooksLikeQuery(text))
}
