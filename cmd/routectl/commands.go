package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hotpoints/application/queries"
	"hotpoints/application/queries/handlers"
	"hotpoints/infrastructure/persistence/jsonfile"
	apperrors "hotpoints/pkg/errors"
)

const defaultGraphFile = "data/hotpoints.json"

type rootOptions struct {
	graphFile string
	asJSON    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "routectl",
		Short:         "Query a hotpoints location graph from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.graphFile, "graph", defaultGraphFile, "path to the graph JSON file")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	root.AddCommand(newRouteCmd(opts), newLocationsCmd(opts))
	return root
}

func newRouteCmd(opts *rootOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the fewest-hops route between two locations",
		Example: "  routectl route --from 12 --to 9\n" +
			"  routectl route --from 1 --to 3 --json --graph campus.json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := queries.NewRouteQuery(from, to)
			if err != nil {
				return userError(err)
			}

			graph, err := jsonfile.Load(opts.graphFile)
			if err != nil {
				return err
			}

			handler := handlers.NewFindRouteHandler(graph, nil, zap.NewNop())
			result, err := handler.Handle(cmd.Context(), query)
			if err != nil {
				return userError(err)
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, result.Steps)
			}
			return printRoute(out, result)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start location id")
	cmd.Flags().StringVar(&to, "to", "", "end location id")
	return cmd
}

func newLocationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List every location in the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			graph, err := jsonfile.Load(opts.graphFile)
			if err != nil {
				return err
			}

			handler := handlers.NewListLocationsHandler(graph, zap.NewNop())
			result, err := handler.Handle(cmd.Context(), queries.ListLocationsQuery{})
			if err != nil {
				return userError(err)
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, result.Locations)
			}
			for _, loc := range result.Locations {
				if loc.Type == "" {
					fmt.Fprintf(out, "%d\t%s\n", loc.ID, loc.Name)
					continue
				}
				fmt.Fprintf(out, "%d\t%s\t(%s)\n", loc.ID, loc.Name, loc.Type)
			}
			return nil
		},
	}
}

func printRoute(out io.Writer, result *queries.FindRouteResult) error {
	if len(result.Steps) == 0 {
		_, err := fmt.Fprintln(out, "Already there.")
		return err
	}

	for i, step := range result.Steps {
		fmt.Fprintf(out, "%2d. %s -> %s: head %s for %d\n", i+1, step.From, step.To, step.Direction, step.Distance)
	}
	_, err := fmt.Fprintf(out, "%d steps, total distance %d\n", len(result.Steps), result.TotalDistance)
	return err
}

func writeJSON(out io.Writer, v interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// userError strips internal detail from application errors
func userError(err error) error {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return errors.New(appErr.Message)
	}
	return err
}
