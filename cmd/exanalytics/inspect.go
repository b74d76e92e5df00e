package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/output"
)

// sheetSummary is the inspect output for one sheet.
type sheetSummary struct {
	Name        string             `json:"name"`
	Table       *models.CellRange  `json:"table,omitempty"`
	Headers     []string           `json:"headers,omitempty"`
	RecordCount int                `json:"recordCount"`
	PrintAreas  []models.CellRange `json:"printAreas,omitempty"`
	Charts      []chartSuggestion  `json:"charts,omitempty"`
}

// chartSuggestion pairs an embedded chart with the chart type that can
// reproduce it.
type chartSuggestion struct {
	models.EmbeddedChart
	Suggested models.ChartType `json:"suggestedType,omitempty"`
}

func registerInspectCmd(parent *cobra.Command) {
	var (
		outputPath string
		pretty     bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <input.xlsx>",
		Short: "Show sheets, headers and embedded charts of a workbook",
		Example: `  # Summarize a workbook
  exanalytics inspect sales.xlsx --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := exanalytics.Inspect(args[0])
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			sheets := make([]sheetSummary, 0, len(wb.SheetOrder))
			for _, name := range wb.SheetOrder {
				sd := wb.Sheets[name]
				s := sheetSummary{
					Name:        name,
					Table:       sd.Table,
					Headers:     sd.Headers,
					RecordCount: sd.RecordCount,
					PrintAreas:  sd.PrintAreas,
				}
				for _, ch := range sd.Charts {
					suggested, _ := ch.Suggest()
					s.Charts = append(s.Charts, chartSuggestion{EmbeddedChart: ch, Suggested: suggested})
				}
				sheets = append(sheets, s)
			}

			return output.WriteJSONFile(outputPath, map[string]interface{}{
				"book":   wb.BookName,
				"sheets": sheets,
			}, pretty)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	parent.AddCommand(cmd)
}
