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

package reporter

import (
	"fmt"
	"time"

	"github.com/newman-reporters/newman-xlsx/internal/engine"
	"github.com/xuri/excelize/v2"
)

// stateColumn returns the letter of the State column.
func stateColumn() (string, error) {
	return excelize.ColumnNumberToName(engine.ColumnIndex(engine.KeyState))
}

// stateFormula returns the expression matching rows whose State cell holds the given status.
// The row reference is relative so the rule applies row by row across the formatted range.
func stateFormula(col string, status engine.Status) string {
	return fmt.Sprintf(`$%s2="%s"`, col, status.Value)
}

// addStateValidation restricts every cell of the State column to the allowed states.
func (r *Reporter) addStateValidation() error {
	col, err := stateColumn()
	if err != nil {
		return err
	}

	dv := excelize.NewDataValidation(true)
	dv.SetSqref(fmt.Sprintf("%s1:%s%d", col, col, r.lastRow()))

	if err := dv.SetDropList(engine.States()); err != nil {
		return fmt.Errorf("failed to create state validation: %w", err)
	}

	if err := r.file.AddDataValidation(SheetName, dv); err != nil {
		return fmt.Errorf("failed to add state validation: %w", err)
	}

	return nil
}

// addConditionalFormatting fills each data row green or red depending on its State cell.
// Nothing is registered when there are no data rows.
func (r *Reporter) addConditionalFormatting() error {
	if len(r.result.Rows) == 0 {
		return nil
	}

	stateCol, err := stateColumn()
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(engine.Columns))
	if err != nil {
		return err
	}

	okFormat, err := r.file.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{okFill}},
	})
	if err != nil {
		return fmt.Errorf("failed to create %s style: %w", engine.StatusOK(), err)
	}

	failFormat, err := r.file.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{failFill}},
	})
	if err != nil {
		return fmt.Errorf("failed to create %s style: %w", engine.StatusFail(), err)
	}

	ref := fmt.Sprintf("A2:%s%d", lastCol, r.lastRow())

	if err := r.file.SetConditionalFormat(SheetName, ref, []excelize.ConditionalFormatOptions{
		{Type: "formula", Criteria: stateFormula(stateCol, engine.StatusOK()), Format: &okFormat},
		{Type: "formula", Criteria: stateFormula(stateCol, engine.StatusFail()), Format: &failFormat},
	}); err != nil {
		return fmt.Errorf("failed to add conditional formatting to %s: %w", ref, err)
	}

	return nil
}

// protect protects the sheet without a password. Only the unlocked State cells stay editable.
func (r *Reporter) protect() error {
	if err := r.file.ProtectSheet(SheetName, &excelize.SheetProtectionOptions{
		SelectLockedCells:   true,
		SelectUnlockedCells: true,
	}); err != nil {
		return fmt.Errorf("failed to protect sheet %s: %w", SheetName, err)
	}

	return nil
}

// setDocProps sets the workbook properties.
func (r *Reporter) setDocProps() error {
	if err := r.file.SetDocProps(&excelize.DocProperties{
		Title:      "Newman run report",
		Subject:    SheetName,
		Creator:    "newman-xlsx",
		Identifier: r.newID(),
		Created:    r.now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	return nil
}
