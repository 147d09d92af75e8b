/*
Copyright 2025 The newman-xlsx Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package reporter writes the assertions of a finished collection run to a spreadsheet.
package reporter

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gertd/go-pluralize"
	"github.com/google/uuid"
	"github.com/newman-reporters/newman-xlsx/internal/api"
	"github.com/newman-reporters/newman-xlsx/internal/config"
	"github.com/newman-reporters/newman-xlsx/internal/engine"
	"github.com/newman-reporters/newman-xlsx/internal/utils"
	"github.com/newman-reporters/newman-xlsx/internal/worksheet"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet holding the assertions.
const SheetName = "Assertions"

const (
	okFill   = "00C800"
	failFill = "C80000"

	filePerm = 0o644
)

// ErrAlreadyDone is returned when Done is called more than once on the same reporter.
var ErrAlreadyDone = errors.New("report has already been written")

// Options configure a Reporter.
type Options struct {
	Export         string  // Destination file; empty selects a timestamped file under newman/
	MinColumnWidth float64 // Minimum column width; zero selects worksheet.DefaultMinWidth
	Verbose        bool
	Debug          bool
}

// Reporter builds the assertions workbook of a single collection run.
type Reporter struct {
	*Options

	fs            afero.Fs
	file          *excelize.File
	runOptions    config.RunOptions
	result        *engine.ReportResult
	unlockedStyle int
	done          bool
	// Mockable function fields
	now   func() time.Time
	newID func() string
}

// New creates a reporter with an empty assertions worksheet: the header row is written and the
// State column is unlocked so that it stays editable once the sheet is protected.
func New(fs afero.Fs, options *Options, runOptions config.RunOptions) (*Reporter, error) {
	if options == nil {
		options = &Options{}
	}

	r := &Reporter{
		Options:    options,
		fs:         fs,
		file:       excelize.NewFile(),
		runOptions: runOptions,
		result:     engine.NewReportResult(options.Verbose),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}

	if err := r.createSheet(); err != nil {
		_ = r.file.Close()
		return nil, err
	}

	return r, nil
}

// RunOptions returns the collection run options the reporter was created with.
func (r *Reporter) RunOptions() config.RunOptions {
	return r.runOptions
}

// Result returns the rows collected so far.
func (r *Reporter) Result() *engine.ReportResult {
	return r.result
}

// Done handles the end of a collection run: it adds one row per assertion of the summary, formats the
// worksheet, protects it and writes the workbook. It returns the path of the written file.
// A nil summary, run or assertion list is treated as empty. Done can only be called once.
func (r *Reporter) Done(summary *api.Summary) (string, error) {
	if r.done {
		return "", ErrAlreadyDone
	}

	r.done = true

	defer func() {
		_ = r.file.Close()
	}()

	for _, row := range engine.RowsFromSummary(summary) {
		if err := r.addRow(row); err != nil {
			return "", err
		}
	}

	if r.Debug {
		plural := pluralize.NewClient()
		utils.DebugPrintf("Collected %s from %s\n",
			plural.Pluralize("assertion", len(r.result.Rows), true),
			plural.Pluralize("execution", len(summary.Executions()), true))
	}

	if err := worksheet.AutoWidth(r.file, SheetName, r.MinColumnWidth); err != nil {
		return "", err
	}

	if err := r.addStateValidation(); err != nil {
		return "", err
	}

	if err := r.addConditionalFormatting(); err != nil {
		return "", err
	}

	if err := r.protect(); err != nil {
		return "", err
	}

	if err := r.setDocProps(); err != nil {
		return "", err
	}

	path, err := r.write()
	if err != nil {
		return "", err
	}

	r.result.Complete(path)

	return path, nil
}

// createSheet renames the default sheet, writes the header row and unlocks the State column.
func (r *Reporter) createSheet() error {
	if err := r.file.SetSheetName(r.file.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetName, err)
	}

	headers := engine.Headers()
	if err := r.file.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	style, err := r.file.NewStyle(&excelize.Style{Protection: &excelize.Protection{Locked: false}})
	if err != nil {
		return fmt.Errorf("failed to create unlocked style: %w", err)
	}

	r.unlockedStyle = style

	stateCol, err := stateColumn()
	if err != nil {
		return err
	}

	if err := r.file.SetColStyle(SheetName, stateCol, style); err != nil {
		return fmt.Errorf("failed to unlock column %s: %w", stateCol, err)
	}

	return nil
}

// addRow appends a row below the last one. The error cell is left empty when there is no error.
func (r *Reporter) addRow(row engine.Row) error {
	rowNum := r.lastRow() + 1

	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}

	values := row.Values()
	if row.Error == "" {
		values = values[:engine.ColumnIndex(engine.KeyError)-1]
	}

	if err := r.file.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}

	stateCell, err := excelize.CoordinatesToCellName(engine.ColumnIndex(engine.KeyState), rowNum)
	if err != nil {
		return err
	}

	if err := r.file.SetCellStyle(SheetName, stateCell, stateCell, r.unlockedStyle); err != nil {
		return fmt.Errorf("failed to unlock cell %s: %w", stateCell, err)
	}

	r.result.AddRow(row)

	return nil
}

// write resolves the export path, creates its directory and writes the workbook to it.
func (r *Reporter) write() (string, error) {
	path, err := ExportPath(r.Export, r.now())
	if err != nil {
		return "", err
	}

	if err := utils.EnsureParentDir(r.fs, path); err != nil {
		return "", err
	}

	if r.Debug {
		utils.DebugPrintf("Writing report to %s\n", path)
	}

	out, err := r.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return "", fmt.Errorf("failed to open report file %s: %w", path, err)
	}

	if err := r.file.Write(out); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("failed to write report file %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close report file %s: %w", path, err)
	}

	return path, nil
}

// lastRow returns the number of the last used row, the header included.
func (r *Reporter) lastRow() int {
	return len(r.result.Rows) + 1
}
