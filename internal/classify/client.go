// Package classify talks to the external classification service and
// provides a local workbook parser used when the service is unreachable.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"sobi/internal/core"
)

const processPath = "/api/classification/process-excel-local"

// DefaultTimeout covers the classifier's model inference, which runs in
// minutes rather than seconds on large statements.
const DefaultTimeout = 5 * time.Minute

// Client sends spreadsheets to the classification service. Requests are
// not retried: the caller falls back to local parsing instead.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// wireTransaction is the classifier's response row. Dates arrive as
// strings in whatever format the upstream bank export used.
type wireTransaction struct {
	Amount          int64  `json:"amount"`
	Category        string `json:"category"`
	TransactionDate string `json:"transaction_date"`
	StoreName       string `json:"store_name"`
	Description     string `json:"description"`
	PaymentMethod   string `json:"payment_method"`
}

// decodeRows reads the classifier response body. The documented payload
// is a bare JSON array of transaction records; some deployments wrap it
// as {"transactions":[...]}, so both shapes are accepted.
func decodeRows(r io.Reader) ([]wireTransaction, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var rows []wireTransaction
	if err := json.Unmarshal(body, &rows); err == nil {
		return rows, nil
	}

	var wrapped struct {
		Transactions []wireTransaction `json:"transactions"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return wrapped.Transactions, nil
}

// ProcessWorkbook uploads the spreadsheet and returns the classified
// transactions.
func (c *Client) ProcessWorkbook(ctx context.Context, filename string, file io.Reader) ([]core.Transaction, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy workbook: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processPath, &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post workbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classification service returned status %d", resp.StatusCode)
	}

	rows, err := decodeRows(resp.Body)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txs := make([]core.Transaction, 0, len(rows))
	for _, w := range rows {
		txs = append(txs, w.toDomain(ctx, now))
	}
	return txs, nil
}

func (w wireTransaction) toDomain(ctx context.Context, now time.Time) core.Transaction {
	ts, ok := core.ParseTimestamp(w.TransactionDate)
	if !ok {
		slog.WarnContext(ctx, "Unparseable transaction date, substituting current time",
			"raw", w.TransactionDate, "store", w.StoreName)
		ts = now
	}
	return core.Transaction{
		Amount:        w.Amount,
		Category:      core.ParseCategory(w.Category),
		Timestamp:     ts,
		StoreName:     w.StoreName,
		Description:   w.Description,
		PaymentMethod: w.PaymentMethod,
	}
}
