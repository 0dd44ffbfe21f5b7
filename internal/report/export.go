package report

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pingdash/internal/models"
	pkgerrors "pingdash/pkg/errors"
)

// FileName is the fixed name of the exported workbook.
const FileName = "ping_results.xlsx"

// Sheet names, in workbook order.
const (
	SuccessfulSheet   = "Successful Pings"
	UnsuccessfulSheet = "Unsuccessful Pings"
)

// Header is the first row of both sheets.
var Header = []string{"IP", "Status", "Result"}

// BuildWorkbook lays out the result set as a two sheet workbook. The caller
// owns the returned file and must Close it.
func BuildWorkbook(set *models.PingResultSet) (*excelize.File, error) {
	successful, unsuccessful := ExportRows(set)

	f := excelize.NewFile()
	// A new file starts with "Sheet1"; it becomes the first sheet.
	if err := f.SetSheetName(f.GetSheetName(0), SuccessfulSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(UnsuccessfulSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	if err := writeSheet(f, SuccessfulSheet, successful); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, UnsuccessfulSheet, unsuccessful); err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, rows []ExportRow) error {
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row.values()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// Exporter writes workbooks into a directory.
type Exporter struct {
	Dir    string
	Logger *zap.Logger
}

// NewExporter creates an exporter writing into dir ("" means the working
// directory).
func NewExporter(dir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{Dir: dir, Logger: logger}
}

// Path returns the full path of the exported workbook.
func (e *Exporter) Path() string {
	return filepath.Join(e.Dir, FileName)
}

// Export builds and saves the workbook, returning the written path.
func (e *Exporter) Export(set *models.PingResultSet) (string, error) {
	path := e.Path()

	f, err := BuildWorkbook(set)
	if err != nil {
		return "", &pkgerrors.ExportError{Path: path, Err: err}
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return "", &pkgerrors.ExportError{Path: path, Err: err}
	}
	return path, nil
}

// ExportAndLog runs Export on behalf of the operator. Failures go to the
// diagnostic log only; the caller just learns whether a file was written.
func (e *Exporter) ExportAndLog(set *models.PingResultSet) (string, bool) {
	path, err := e.Export(set)
	if err != nil {
		e.Logger.Error("export_failed", zap.String("path", e.Path()), zap.Error(err))
		return "", false
	}
	successful, unsuccessful := ExportRows(set)
	e.Logger.Info("export_written",
		zap.String("path", path),
		zap.Int("successful_rows", len(successful)),
		zap.Int("unsuccessful_rows", len(unsuccessful)),
	)
	return path, true
}
