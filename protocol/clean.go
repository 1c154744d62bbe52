package protocol

import (
	"fmt"
	"io"
	"strconv"

	"github.com/datazip-inc/rogue-records/cleaner"
	"github.com/datazip-inc/rogue-records/service"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var inputPath string

// cleanCmd runs the cleaning pipeline over a raw file
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "clean a raw batch, the newest one unless --input is given",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if format != string(types.CSV) && format != string(types.Parquet) {
			return fmt.Errorf("unsupported format [%s]", format)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		result, err := svc.Clean(cmd.Context(), inputPath)
		if result != nil {
			renderClean(cmd.OutOrStdout(), result)
		}
		if err != nil {
			emit(types.Message{Type: types.CleanMessage, Status: types.StatusFailed, Message: err.Error()})
			return err
		}

		emit(types.Message{
			Type:    types.CleanMessage,
			Status:  types.StatusSucceeded,
			Path:    result.Save.Path,
			Rows:    result.Save.Rows,
			Message: result.Save.Message,
		})
		return nil
	},
}

func renderClean(w io.Writer, result *service.CleanResult) {
	if result.Summary != nil {
		renderSummary(w, result.Summary)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rule", "Columns", "Repaired", "Coerced", "Removed", "Rows"})
	for _, report := range result.Reports {
		table.Append([]string{
			report.Rule,
			fmt.Sprint(report.Columns),
			strconv.Itoa(report.Repaired),
			strconv.Itoa(report.Coerced),
			strconv.Itoa(report.Removed),
			fmt.Sprintf("%d -> %d", report.RowsBefore, report.RowsAfter),
		})
	}
	table.Render()
}

func renderSummary(w io.Writer, summary *cleaner.Summary) {
	fmt.Fprintf(w, "%d rows\n", summary.Rows)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Column", "Kind", "Non Null", "Mean", "Std", "Min", "Max"})
	for _, column := range summary.Columns {
		row := []string{column.Name, string(column.Kind), strconv.Itoa(column.NonNull), "", "", "", ""}
		if column.Stats != nil {
			row[3] = cast.ToString(column.Stats.Mean)
			row[4] = cast.ToString(column.Stats.Std)
			row[5] = cast.ToString(column.Stats.Min)
			row[6] = cast.ToString(column.Stats.Max)
		}
		table.Append(row)
	}
	table.Render()
}

func init() {
	cleanCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Raw CSV file to clean")
	cleanCmd.Flags().BoolVarP(&noCap, "no-price-cap", "", false, "Skip capping unrealistic prices")
}
