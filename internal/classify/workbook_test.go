package classify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"sobi/internal/core"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestParseWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"거래일시", "금액", "가맹점명", "적요", "결제수단"},
		{"2024-03-02 12:30:00", "12,500", "김밥천국", "점심", "체크카드"},
		{"2024-03-03", "50000원", "스타벅스", "", "신용카드"},
	})

	txs, err := ParseWorkbook(context.Background(), buf)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}

	if txs[0].Amount != 12500 {
		t.Errorf("amount = %d, want 12500", txs[0].Amount)
	}
	if txs[0].StoreName != "김밥천국" || txs[0].PaymentMethod != "체크카드" {
		t.Errorf("row fields = %+v", txs[0])
	}
	if txs[1].Amount != 50000 {
		t.Errorf("amount with 원 suffix = %d, want 50000", txs[1].Amount)
	}

	// Local parsing never classifies.
	for _, tx := range txs {
		if tx.Category != core.CategoryEtc {
			t.Errorf("local parse assigned category %q", tx.Category)
		}
	}
}

func TestParseWorkbook_SkipsBadRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"거래일시", "금액", "가맹점명"},
		{"2024-03-02", "abc", "무시됨"},
		{"2024-03-02", "", "무시됨"},
		{"2024-03-02", "3000", "유지됨"},
	})

	txs, err := ParseWorkbook(context.Background(), buf)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(txs) != 1 || txs[0].StoreName != "유지됨" {
		t.Fatalf("txs = %+v", txs)
	}
}

func TestParseWorkbook_SkipsNegativeRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"거래일시", "금액", "적요"},
		{"2024-03-02", "-12,500", "환불"},
		{"2024-03-03", "3000", "점심"},
	})

	txs, err := ParseWorkbook(context.Background(), buf)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(txs) != 1 || txs[0].Amount != 3000 {
		t.Fatalf("txs = %+v", txs)
	}
	if err := txs[0].Validate(); err != nil {
		t.Errorf("surviving row fails validation: %v", err)
	}
}

func TestParseWorkbook_MissingAmountColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"거래일시", "가맹점명"},
		{"2024-03-02", "가게"},
	})

	if _, err := ParseWorkbook(context.Background(), buf); err == nil {
		t.Fatal("expected error for workbook without amount column")
	}
}

func TestParseWorkbook_EmptySheet(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"거래일시", "금액"},
	})

	if _, err := ParseWorkbook(context.Background(), buf); !errors.Is(err, ErrNoRows) {
		t.Fatalf("err = %v, want ErrNoRows", err)
	}
}

func TestParseWorkbook_NotAWorkbook(t *testing.T) {
	if _, err := ParseWorkbook(context.Background(), bytes.NewReader([]byte("plain text"))); err == nil {
		t.Fatal("expected error for non-xlsx input")
	}
}
