package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ccollicutt/graphdrawer/pkg/logfile"
)

// XLSXExporter writes one worksheet per measurement.
type XLSXExporter struct{}

// NewXLSXExporter creates a workbook exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Name returns the format name.
func (e *XLSXExporter) Name() string {
	return "xlsx"
}

// SheetName returns the worksheet holding measurement i.
func SheetName(i int) string {
	return fmt.Sprintf("Measurement %d", i)
}

// Export writes baseName + ".xlsx".
func (e *XLSXExporter) Export(ctx context.Context, ds *logfile.Dataset, baseName string) (string, error) {
	if err := checkTimeAxis(ds); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:     Tool,
		Title:       ds.DeviceName,
		Description: Provenance(ds.DeviceName),
	}); err != nil {
		return "", fmt.Errorf("setting workbook properties: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, m := range ds.Measurements {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		sheet := SheetName(i)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return "", fmt.Errorf("naming sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("creating sheet %q: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, ds.Legend, m); err != nil {
			return "", fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	path := baseName + ".xlsx"
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}

func writeSheet(f *excelize.File, sheet string, legend []string, m logfile.Measurement) error {
	header := make([]interface{}, len(legend))
	for i, name := range legend {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for j, sample := range m {
		row := make([]interface{}, 0, len(sample)+1)
		row = append(row, logfile.TimeAt(j))
		for _, v := range sample {
			row = append(row, v)
		}

		cell, err := excelize.CoordinatesToCellName(1, j+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
