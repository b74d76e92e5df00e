package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/export"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/lifecycle"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/logging"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/output"
)

func registerChartsCmd(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Manage charts on the server",
	}

	cmd.AddCommand(
		newChartsListCmd(a),
		newChartsGetCmd(a),
		newChartsCreateCmd(a),
		newChartsUpdateCmd(a),
		newChartsDeleteCmd(a),
		newChartsDownloadCmd(a),
	)
	parent.AddCommand(cmd)
}

func (a *app) controller(cmd *cobra.Command, confirm lifecycle.Confirmer) *lifecycle.Controller {
	return lifecycle.NewController(a.client(), a.notifier(cmd), confirm, logging.Get())
}

// notifier prints lifecycle messages, or logs them when the log format
// is json.
func (a *app) notifier(cmd *cobra.Command) lifecycle.Notifier {
	if a.cfg.Log.Format == "json" {
		return lifecycle.LogNotifier{Logger: logging.Get()}
	}
	return lifecycle.WriterNotifier{W: cmd.ErrOrStderr()}
}

func newChartsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <uploadId>",
		Short: "List the charts of an upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			charts, err := a.client().ListCharts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(charts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No charts.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tTYPE\tX\tY\tCREATED")
			for _, c := range charts {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID, c.DisplayName(), c.Type.Label(), c.Config.XAxis, c.Config.YAxis,
					c.CreatedAt.Format("Jan 02, 2006"))
			}
			return w.Flush()
		},
	}
}

func newChartsGetCmd(a *app) *cobra.Command {
	var (
		render bool
		pretty bool
		mode   string
	)
	cmd := &cobra.Command{
		Use:   "get <chartId>",
		Short: "Show a chart, or its rendered view with --render",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			if !render {
				rec, err := a.client().GetChart(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return output.WriteJSON(cmd.OutOrStdout(), rec, pretty)
			}

			v := a.viewer(mode)
			v.Mount()
			defer v.Unmount()
			view, err := v.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.WriteJSON(cmd.OutOrStdout(), view, pretty)
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "Print the rendered 2D chart or 3D scene")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&mode, "mode", "", "Renderer: auto, 2d, 3d (default from config)")
	return cmd
}

func (a *app) viewer(mode string) *lifecycle.Viewer {
	opts := a.cfg.RenderOptions()
	if mode != "" {
		opts.Mode = exanalytics.Mode(mode)
	}
	return lifecycle.NewViewer(a.client(), opts)
}

func newChartsCreateCmd(a *app) *cobra.Command {
	var cf chartFlags
	cmd := &cobra.Command{
		Use:   "create <uploadId>",
		Short: "Create a chart over an upload",
		Example: `  exanalytics charts create 42 --x Month --y Sales --type LINE --title "Monthly sales"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			in, err := cf.input()
			if err != nil {
				return err
			}
			rec, err := a.controller(cmd, nil).Create(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
			return nil
		},
	}
	cf.register(cmd, string(models.ChartBar))
	return cmd
}

func newChartsUpdateCmd(a *app) *cobra.Command {
	var cf chartFlags
	cmd := &cobra.Command{
		Use:   "update <chartId>",
		Short: "Change a chart's configuration",
		Long: `Update replaces a chart's configuration. Flags that are not given keep
the chart's current values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			c := a.client()
			current, err := c.GetChart(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			in := lifecycle.InputFromRecord(current)
			flags := cmd.Flags()
			if flags.Changed("x") {
				in.XAxis = cf.x
			}
			if flags.Changed("y") {
				in.YAxis = cf.y
			}
			if flags.Changed("title") {
				in.Title = cf.title
			}
			if flags.Changed("type") {
				t, err := models.ParseChartType(cf.chartType)
				if err != nil {
					return err
				}
				in.ChartType = t
			}
			if styling := cf.styling(); styling != nil {
				in.Styling = styling
			}

			if _, err := a.controller(cmd, nil).Update(cmd.Context(), args[0], in); err != nil {
				return err
			}
			return nil
		},
	}
	cf.register(cmd, string(models.ChartBar))
	return cmd
}

func newChartsDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <chartId>",
		Short: "Delete a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			confirm := lifecycle.AlwaysConfirm
			if !yes {
				confirm = promptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
			}
			_, err := a.controller(cmd, confirm).Delete(cmd.Context(), args[0])
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newChartsDownloadCmd(a *app) *cobra.Command {
	var (
		dir    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "download <chartId>",
		Short: "Download a 2D chart as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			v := a.viewer("")
			v.Mount()
			defer v.Unmount()
			view, err := v.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			notify := a.notifier(cmd)
			switch f {
			case export.FormatPNG:
				path, err := lifecycle.Download(view, dir, notify)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			case export.FormatPDF:
				return lifecycle.DownloadPDF(view, notify)
			default:
				if view.Chart == nil {
					notify.Error(lifecycle.MsgNoCanvas)
					return export.ErrNoCanvas
				}
				path, err := export.WriteFile(dir, view.Name, view.Chart, f)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write into")
	cmd.Flags().StringVar(&format, "format", "png", "Format: png, svg, html, pdf")
	return cmd
}
