package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/logging"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/output"
)

func registerUploadsCmd(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "uploads",
		Short: "Manage uploaded spreadsheets",
	}

	var pretty bool
	get := &cobra.Command{
		Use:   "get <uploadId>",
		Short: "Show an upload with its parsed rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			up, err := a.client().GetUpload(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.WriteJSON(cmd.OutOrStdout(), up, pretty)
		},
	}
	get.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	list := &cobra.Command{
		Use:   "list <projectId>",
		Short: "List the uploads of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			uploads, err := a.client().ListUploads(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(uploads) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No uploads.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATUS\tSIZE\tUPLOADED")
			for _, u := range uploads {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					u.ID, u.OriginalName, u.Status, u.FileSize, u.UploadedAt.Format("Jan 02, 2006"))
			}
			return w.Flush()
		},
	}

	put := &cobra.Command{
		Use:   "put <projectId> <file.xlsx>",
		Short: "Upload a spreadsheet to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			f, err := os.Open(args[1]) //nolint:gosec // path is provided by caller
			if err != nil {
				return err
			}
			defer f.Close() //nolint:errcheck

			up, err := a.client().Upload(cmd.Context(), args[0], args[1], f)
			if err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}
			logging.Info().Add(
				logging.UploadID(up.ID),
				logging.Str("status", string(up.Status)),
			).Msg("file uploaded")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", up.ID, up.Status)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <uploadId>",
		Short: "Delete an upload and its charts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			return a.client().DeleteUpload(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, get, put, del)
	parent.AddCommand(cmd)
}
