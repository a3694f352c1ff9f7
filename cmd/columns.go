package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/remarks-cli/internal/sheet"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Inspect worksheet headers against the expected schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		rows, err := initRowStore(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		defer w.Flush() //nolint:errcheck

		hitRequired := []string{sheet.ColShopName, sheet.ColStatus, sheet.ColNotes}
		remarksRequired := []string{
			sheet.ColSubmissionID, sheet.ColShopName, sheet.ColStatus,
			sheet.ColRemarks, sheet.ColSubmittedBy, sheet.ColProcessed,
		}

		// Columns the engine writes when present; absence only narrows
		// the merge, it is not an error.
		var hitWritable []string
		for _, col := range sheet.FieldColumns {
			hitWritable = append(hitWritable, col)
		}
		hitWritable = append(hitWritable,
			sheet.ColStatusUpdatedBy, sheet.ColStatusUpdatedDate, sheet.ColEventLink)
		sort.Strings(hitWritable)

		type target struct {
			worksheet string
			required  []string
			writable  []string
		}
		for _, t := range []target{
			{cfg.Sheets.HitListWorksheet, hitRequired, hitWritable},
			{cfg.Sheets.RemarksWorksheet, remarksRequired, []string{sheet.ColSubmittedAt, sheet.ColProcessedAt}},
		} {
			all, err := rows.ReadAll(ctx, t.worksheet)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\n", t.worksheet)
			if len(all) == 0 {
				fmt.Fprintln(w, "\t(empty worksheet)")
				continue
			}

			present := map[string]bool{}
			for i, name := range all[0] {
				present[strings.TrimSpace(name)] = true
				fmt.Fprintf(w, "\t%s\t%s\n", columnRef(i), name)
			}
			for _, col := range t.required {
				if !present[col] {
					fmt.Fprintf(w, "\tMISSING\t%s\t(required)\n", col)
				}
			}
			for _, col := range t.writable {
				if !present[col] {
					fmt.Fprintf(w, "\tabsent\t%s\t(optional, will be skipped)\n", col)
				}
			}
			fmt.Fprintln(w)
		}

		return nil
	},
}

// columnRef formats a 0-based index as its A1 column letter.
func columnRef(i int) string {
	col := i + 1
	var s string
	for col > 0 {
		col--
		s = string(rune('A'+col%26)) + s
		col /= 26
	}
	return s
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
