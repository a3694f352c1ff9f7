package main

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/remarks-cli/internal/sheet"
)

var (
	backupFormat string
	backupDir    string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export the hit list and remarks log to local files",
	Long:  "Writes each worksheet to the output directory, rotating any previous export to <name>.bak first.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		rows, err := initRowStore(ctx)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(backupDir, 0o755); err != nil {
			return eris.Wrapf(err, "create backup dir %s", backupDir)
		}

		worksheets := []string{cfg.Sheets.HitListWorksheet, cfg.Sheets.RemarksWorksheet}

		switch backupFormat {
		case "csv":
			for _, ws := range worksheets {
				path := filepath.Join(backupDir, worksheetSlug(ws)+".csv")
				if err := rotate(path); err != nil {
					return err
				}
				if err := exportCSV(ctx, rows, ws, path); err != nil {
					return err
				}
				zap.L().Info("worksheet exported", zap.String("worksheet", ws), zap.String("path", path))
			}
		case "xlsx":
			path := filepath.Join(backupDir, "hit-list.xlsx")
			if err := rotate(path); err != nil {
				return err
			}
			if err := exportXLSX(ctx, rows, worksheets, path); err != nil {
				return err
			}
			zap.L().Info("workbook exported", zap.String("path", path))
		default:
			return eris.Errorf("unknown format %q (want csv or xlsx)", backupFormat)
		}
		return nil
	},
}

func worksheetSlug(worksheet string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(worksheet), " ", "-"))
}

// rotate moves the previous export aside so a failed write never eats the
// last good backup.
func rotate(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := os.Rename(path, path+".bak"); err != nil {
		return eris.Wrapf(err, "rotate %s", path)
	}
	return nil
}

func exportCSV(ctx context.Context, store sheet.RowStore, worksheet, path string) error {
	rows, err := store.ReadAll(ctx, worksheet)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return eris.Wrapf(err, "write %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrapf(err, "flush %s", path)
	}
	return nil
}

func exportXLSX(ctx context.Context, store sheet.RowStore, worksheets []string, path string) error {
	file := xlsx.NewFile()
	for _, ws := range worksheets {
		rows, err := store.ReadAll(ctx, ws)
		if err != nil {
			return err
		}
		tab, err := file.AddSheet(ws)
		if err != nil {
			return eris.Wrapf(err, "add sheet %s", ws)
		}
		for _, row := range rows {
			out := tab.AddRow()
			for _, v := range row {
				out.AddCell().SetString(v)
			}
		}
	}
	return eris.Wrapf(file.Save(path), "save %s", path)
}

func init() {
	backupCmd.Flags().StringVar(&backupFormat, "format", "csv", "export format: csv or xlsx")
	backupCmd.Flags().StringVar(&backupDir, "out", "backups", "output directory")
	rootCmd.AddCommand(backupCmd)
}
