package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/xuri/excelize/v2"
)

const ledgerSheet = "So Thu Chi"

// --- Interface ---

type ExportService interface {
	LedgerWorkbook() (fileName string, content []byte, err error)
}

type exportService struct {
	ledger LedgerService
}

func NewExportService(ledger LedgerService) ExportService {
	return &exportService{ledger: ledger}
}

// LedgerWorkbook renders the current ledger as an XLSX workbook, newest
// entry first.
func (s *exportService) LedgerWorkbook() (string, []byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ledgerSheet)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []interface{}{"Ngày", "Mô tả", "Loại", "Nhóm/Danh mục", "Số tiền (VNĐ)", "Có hóa đơn"}
	if err := f.SetSheetRow(ledgerSheet, "A1", &headers); err != nil {
		return "", nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, t := range s.ledger.Entries() {
		label := ""
		invoice := "Không"
		switch t.Type {
		case model.TypeIncome:
			label = tax.GroupShortName(t.TaxGroupID)
		case model.TypeExpense:
			if name, ok := model.ExpenseCategoryNames[t.ExpenseCategory]; ok {
				label = name
			} else {
				label = model.ExpenseCategoryNames[model.CategoryOther]
			}
		}
		if t.HasInvoice {
			invoice = "Có"
		}

		amount, _ := t.Amount.Round(0).Float64()
		row := []interface{}{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.Type,
			label,
			amount,
			invoice,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return "", nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	fileName := fmt.Sprintf("SoThuChi_%s.xlsx", time.Now().Format("20060102_150405"))
	return fileName, buf.Bytes(), nil
}
