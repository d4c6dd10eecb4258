package classify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sobi/internal/core"
)

func TestClient_ProcessWorkbook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/classification/process-excel-local" {
			t.Errorf("path = %s", r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			http.Error(w, "bad upload", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "statement.xlsx" {
			t.Errorf("filename = %s", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"amount":12500,"category":"식비","transaction_date":"2024-03-02 12:30:00","store_name":"김밥천국","payment_method":"체크카드"},
			{"amount":50000,"category":"송금","transaction_date":"2024-03-03","store_name":"","description":"이체"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	txs, err := client.ProcessWorkbook(context.Background(), "statement.xlsx", strings.NewReader("fake xlsx bytes"))
	if err != nil {
		t.Fatalf("ProcessWorkbook: %v", err)
	}

	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if txs[0].Category != core.CategoryFood || txs[0].Amount != 12500 {
		t.Errorf("first transaction = %+v", txs[0])
	}
	want := time.Date(2024, 3, 2, 12, 30, 0, 0, time.UTC)
	if !txs[0].Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", txs[0].Timestamp, want)
	}
	if txs[1].Category != core.CategoryTransfer {
		t.Errorf("second category = %q", txs[1].Category)
	}
}

func TestClient_UnknownCategoryAndBadDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"amount":9900,"category":"신규카테고리","transaction_date":"not-a-date","store_name":"어딘가"}
		]`))
	}))
	defer srv.Close()

	before := time.Now()
	client := NewClient(srv.URL, time.Second)
	txs, err := client.ProcessWorkbook(context.Background(), "s.xlsx", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("ProcessWorkbook: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Category != core.CategoryEtc {
		t.Errorf("unknown category mapped to %q, want %q", txs[0].Category, core.CategoryEtc)
	}
	// A bad date is substituted with the current time, never dropped.
	if txs[0].Timestamp.Before(before.Add(-time.Minute)) {
		t.Errorf("substituted timestamp too old: %v", txs[0].Timestamp)
	}
}

func TestClient_WrappedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transactions":[
			{"amount":3300,"category":"교통비","transaction_date":"2024-03-04","store_name":"지하철"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	txs, err := client.ProcessWorkbook(context.Background(), "s.xlsx", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("ProcessWorkbook: %v", err)
	}
	if len(txs) != 1 || txs[0].Category != core.CategoryTransport || txs[0].Amount != 3300 {
		t.Errorf("transactions = %+v", txs)
	}
}

func TestClient_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if _, err := client.ProcessWorkbook(context.Background(), "s.xlsx", strings.NewReader("x")); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	if _, err := client.ProcessWorkbook(context.Background(), "s.xlsx", strings.NewReader("x")); err == nil {
		t.Fatal("expected error when service is unreachable")
	}
}
