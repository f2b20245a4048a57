package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zatekoja/cpapmaskselector/internal/application/engine"
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

func newRecommendCmd() *cobra.Command {
	var (
		source       catalogFlags
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "recommend FILE",
		Short: "Recommend a mask for questionnaire answers",
		Long: `Read questionnaire answers as JSON (use - for stdin) and print the
mask recommendation.

Examples:
  # Recommend from a file using the builtin catalog
  maskctl recommend answers.json

  # Use a spreadsheet catalog and print the raw JSON
  maskctl recommend answers.json --catalog masks.xlsx -o json

  echo '{"breathing":"mixed","eye":true}' | maskctl recommend -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			responses, err := readResponses(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			c, err := source.load(cmd.Context())
			if err != nil {
				return err
			}

			rec, err := engine.New(c).Recommend(responses)
			if err != nil {
				return err
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			case "human":
				printRecommendation(cmd.OutOrStdout(), rec)
				return nil
			}
			return fmt.Errorf("unknown output format %q", outputFormat)
		},
	}

	cmd.Flags().StringVar(&source.path, "catalog", "", "Catalog file (.csv or .xlsx); builtin catalog when empty")
	cmd.Flags().StringVar(&source.sheet, "sheet", "Masks", "Worksheet name for .xlsx catalogs")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json)")

	return cmd
}

func readResponses(stdin io.Reader, path string) (*entities.PatientResponses, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}

	var responses *entities.PatientResponses
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	if responses == nil {
		return nil, fmt.Errorf("no responses provided")
	}
	return responses, nil
}
