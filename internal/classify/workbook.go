package classify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sobi/internal/core"
)

var ErrNoRows = errors.New("workbook has no transaction rows")

// Column headers as emitted by Korean bank and card statement exports.
const (
	headerTimestamp     = "거래일시"
	headerAmount        = "금액"
	headerStoreName     = "가맹점명"
	headerDescription   = "적요"
	headerPaymentMethod = "결제수단"
)

// ParseWorkbook reads transactions straight from an xlsx statement
// without classification. Rows keep no category assignment, so the
// spending profile computed from a local parse is all zeroes.
func ParseWorkbook(ctx context.Context, file io.Reader) ([]core.Transaction, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	cols := mapColumns(rows[0])
	if _, ok := cols[headerAmount]; !ok {
		return nil, fmt.Errorf("workbook is missing the %s column", headerAmount)
	}

	now := time.Now()
	var txs []core.Transaction
	for i, row := range rows[1:] {
		amount, err := parseAmount(cell(row, cols, headerAmount))
		if err != nil {
			slog.WarnContext(ctx, "Skipping row with unparseable amount",
				"row", i+2, "raw", cell(row, cols, headerAmount))
			continue
		}
		if amount < 0 {
			// Refund and deposit rows carry negative amounts; spending
			// aggregation only counts outflows.
			slog.WarnContext(ctx, "Skipping row with negative amount",
				"row", i+2, "amount", amount)
			continue
		}

		ts, ok := core.ParseTimestamp(cell(row, cols, headerTimestamp))
		if !ok {
			ts = now
		}

		txs = append(txs, core.Transaction{
			Amount:        amount,
			Category:      core.CategoryEtc,
			Timestamp:     ts,
			StoreName:     cell(row, cols, headerStoreName),
			Description:   cell(row, cols, headerDescription),
			PaymentMethod: cell(row, cols, headerPaymentMethod),
		})
	}

	if len(txs) == 0 {
		return nil, ErrNoRows
	}
	return txs, nil
}

func mapColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	return cols
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseAmount(raw string) (int64, error) {
	cleaned := strings.NewReplacer(",", "", "원", "", " ", "").Replace(raw)
	if cleaned == "" {
		return 0, errors.New("empty amount")
	}
	return strconv.ParseInt(cleaned, 10, 64)
}
