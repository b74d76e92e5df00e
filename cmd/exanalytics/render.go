package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/export"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/lifecycle"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/logging"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/output"
)

// chartFlags are the chart configuration flags shared by render, create
// and update.
type chartFlags struct {
	x, y, chartType, title string
	background, border     string
	borderWidth            float64
}

func (f *chartFlags) register(cmd *cobra.Command, defaultType string) {
	cmd.Flags().StringVar(&f.x, "x", "", "Column for labels, categories or x values")
	cmd.Flags().StringVar(&f.y, "y", "", "Column for values or y values")
	cmd.Flags().StringVar(&f.chartType, "type", defaultType, "Chart type: BAR, LINE, PIE, SCATTER, COLUMN_3D, BAR_3D, LINE_3D")
	cmd.Flags().StringVar(&f.title, "title", "", "Chart title")
	cmd.Flags().StringVar(&f.background, "background-color", "", "Background color override")
	cmd.Flags().StringVar(&f.border, "border-color", "", "Border color override")
	cmd.Flags().Float64Var(&f.borderWidth, "border-width", 0, "Border width override")
}

func (f *chartFlags) input() (lifecycle.ChartInput, error) {
	t, err := models.ParseChartType(f.chartType)
	if err != nil {
		return lifecycle.ChartInput{}, err
	}
	return lifecycle.ChartInput{
		XAxis:     f.x,
		YAxis:     f.y,
		ChartType: t,
		Title:     f.title,
		Styling:   f.styling(),
	}, nil
}

// styling returns the style overrides, or nil when none were given.
func (f *chartFlags) styling() *models.ChartStyling {
	if f.background == "" && f.border == "" && f.borderWidth <= 0 {
		return nil
	}
	s := &models.ChartStyling{BackgroundColor: f.background, BorderColor: f.border}
	if f.borderWidth > 0 {
		w := f.borderWidth
		s.BorderWidth = &w
	}
	return s
}

func registerRenderCmd(parent *cobra.Command, a *app) {
	var (
		cf         chartFlags
		sheet      string
		cellRange  string
		format     string
		mode       string
		outputPath string
		pretty     bool
	)
	cmd := &cobra.Command{
		Use:   "render <input.xlsx>",
		Short: "Render a chart from a local workbook",
		Long: `Render reads one sheet of a workbook, builds a chart from two of its
columns and prints the chart description as JSON, or exports a 2D chart
as an image or HTML page.`,
		Example: `  # Describe a 3D column chart
  exanalytics render sales.xlsx --x Month --y Sales --type COLUMN_3D --pretty

  # Export a bar chart as PNG
  exanalytics render sales.xlsx --x Month --y Sales --format png -o sales.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := cf.input()
			if err != nil {
				return err
			}

			loadOpts := exanalytics.DefaultLoadOptions()
			loadOpts.Sheet, loadOpts.Range = sheet, cellRange
			upload, err := exanalytics.LoadUpload(args[0], loadOpts)
			if err != nil {
				return fmt.Errorf("load failed: %w", err)
			}
			logging.Debug().Add(
				logging.Str("sheet", upload.Metadata.SheetName),
				logging.Count("rows", upload.Metadata.TotalRows),
				logging.Count("columns", upload.Metadata.TotalColumns),
			).Msg("workbook loaded")
			if err := in.ValidateAgainst(upload); err != nil {
				return fmt.Errorf("invalid chart: %w (columns: %v)", err, lifecycle.AxisOptions(upload))
			}

			opts := a.cfg.RenderOptions()
			if mode != "" {
				opts.Mode = exanalytics.Mode(mode)
			}
			rec := exanalytics.RecordFromUpload(upload, in.Config(), in.Title)
			view := exanalytics.Render(rec, opts)
			if view.Err != nil {
				logging.Warn().Add(
					logging.Component("render"),
					logging.ChartType(string(rec.Type)),
					logging.ErrorField(view.Err),
				).Msg("chart rendered as placeholder")
			}

			if format == "json" {
				return output.WriteJSONFile(outputPath, view, pretty)
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return writeExport(view, f, outputPath)
		},
	}
	cf.register(cmd, string(models.ChartBar))
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name (default: first sheet)")
	cmd.Flags().StringVar(&cellRange, "range", "", "Data range in A1 notation, overriding table detection")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, png, svg, html")
	cmd.Flags().StringVar(&mode, "mode", "", "Renderer: auto, 2d, 3d (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	parent.AddCommand(cmd)
}

// writeExport writes the 2D chart of view in format f to path, or to
// export.Filename in the working directory when path is empty.
func writeExport(view exanalytics.View, f export.Format, path string) error {
	if view.Chart == nil {
		if view.Placeholder != nil {
			return fmt.Errorf("%w: %s", export.ErrNoCanvas, view.Placeholder.Message)
		}
		return export.ErrNoCanvas
	}
	if path == "" {
		path = export.Filename(view.Name, f)
	}
	out, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	if err := export.Write(out, view.Chart, f); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "wrote", path)
	return nil
}
