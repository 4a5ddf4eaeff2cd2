package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/fastjson"

	"github.com/paykit-dev/paykit/internal/config"
	"github.com/paykit-dev/paykit/internal/inspect"
	"github.com/paykit-dev/paykit/internal/jsonutil"
)

func newInspectCommand() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "inspect <file.json>",
		Short: "Extract schema fields from a JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := config.Default()
			if schemaPath != "" {
				var err error
				schema, err = config.Load(schemaPath)
				if err != nil {
					return err
				}
			}
			return runInspect(cmd.OutOrStdout(), args[0], schema)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "schema YAML file (default: account-info)")

	return cmd
}

func runInspect(out io.Writer, path string, schema *config.Schema) error {
	o, err := readObject(path)
	if err != nil {
		return err
	}

	results, err := inspect.Extract(o, schema)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	printResults(out, results)
	return nil
}

func newFlattenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <file.json>",
		Short: "Print the top-level members of a JSON object as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := readObject(args[0])
			if err != nil {
				return err
			}
			results, err := inspect.Flatten(o)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func readObject(path string) (*fastjson.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	o, err := jsonutil.ParseObject(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return o, nil
}

func printResults(out io.Writer, results []inspect.Result) {
	for _, r := range results {
		fmt.Fprintf(out, "%s\t%s\n", r.Field, r.Text())
	}
}
