package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"sobi/internal/core"
)

const (
	summaryCacheKey   = "summary"
	characterCacheKey = "character"

	// Upload size cap. Bank exports are small; anything bigger is abuse.
	maxUploadBytes = 10 << 20
)

type errorResponse struct {
	Error string `json:"error"`
}

// transactionPayload is the edit-save request row. Dates arrive as
// strings in whatever format the front-end kept from the original
// import, so they go through ParseTimestamp rather than a strict
// RFC 3339 decode.
type transactionPayload struct {
	Amount          int64  `json:"amount"`
	Category        string `json:"category"`
	TransactionDate string `json:"transaction_date"`
	StoreName       string `json:"store_name"`
	Description     string `json:"description"`
	PaymentMethod   string `json:"payment_method"`
}

func (p transactionPayload) toDomain(ctx context.Context, now time.Time) core.Transaction {
	ts, ok := core.ParseTimestamp(p.TransactionDate)
	if !ok {
		slog.WarnContext(ctx, "Unparseable transaction date, substituting current time",
			"raw", p.TransactionDate, "store", p.StoreName)
		ts = now
	}
	return core.Transaction{
		Amount:        p.Amount,
		Category:      core.Category(p.Category),
		Timestamp:     ts,
		StoreName:     p.StoreName,
		Description:   p.Description,
		PaymentMethod: p.PaymentMethod,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// handleUpload accepts a multipart spreadsheet and replaces the
// transaction snapshot with its classified contents.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		slog.ErrorContext(r.Context(), "Upload form error", "error", err)
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	result, err := s.service.ImportSpreadsheet(r.Context(), header.Filename, file)
	if err != nil {
		slog.ErrorContext(r.Context(), "Spreadsheet import failed",
			"filename", header.Filename, "error", err)
		writeError(w, http.StatusUnprocessableEntity, "could not process spreadsheet")
		return
	}

	s.invalidateDerived()
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		txs, err := s.service.Transactions(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Load transactions failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not load transactions")
			return
		}
		writeJSON(w, http.StatusOK, txs)

	case http.MethodPut:
		var payload []transactionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid transaction payload")
			return
		}
		now := time.Now()
		txs := make([]core.Transaction, 0, len(payload))
		for _, p := range payload {
			txs = append(txs, p.toDomain(r.Context(), now))
		}
		if err := s.service.ReplaceTransactions(r.Context(), txs); err != nil {
			if errors.Is(err, core.ErrNegativeAmount) || errors.Is(err, core.ErrUnknownCategory) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			slog.ErrorContext(r.Context(), "Replace transactions failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not store transactions")
			return
		}
		s.invalidateDerived()
		writeJSON(w, http.StatusOK, map[string]int{"count": len(txs)})

	default:
		methodNotAllowed(w, "GET, PUT")
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	if set, found := s.summaryCache.Get(summaryCacheKey); found {
		slog.DebugContext(r.Context(), "Summary cache hit")
		writeJSON(w, http.StatusOK, set)
		return
	}

	set, err := s.service.Overview(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not compute summary")
		return
	}

	s.summaryCache.Set(summaryCacheKey, set)
	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleCharacter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	if match, found := s.characterCache.Get(characterCacheKey); found {
		slog.DebugContext(r.Context(), "Character cache hit")
		writeJSON(w, http.StatusOK, match)
		return
	}

	match, err := s.service.Character(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Character match failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not determine character")
		return
	}

	s.characterCache.Set(characterCacheKey, match)
	writeJSON(w, http.StatusOK, match)
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	raw := r.URL.Query().Get("category")
	if raw == "" {
		raw = string(core.CategoryFood)
	}

	cat := core.Category(raw)
	result, err := s.service.Comparison(r.Context(), cat)
	if err != nil {
		if errors.Is(err, core.ErrUnknownCategory) {
			writeError(w, http.StatusBadRequest, "unknown category: "+raw)
			return
		}
		slog.ErrorContext(r.Context(), "Comparison failed", "category", raw, "error", err)
		writeError(w, http.StatusInternalServerError, "could not build comparison")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDemographics(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sel, err := s.service.Selections(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Load selections failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not load demographics")
			return
		}
		writeJSON(w, http.StatusOK, sel)

	case http.MethodPut:
		var sel core.DemographicSelections
		if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
			writeError(w, http.StatusBadRequest, "invalid demographics payload")
			return
		}
		if err := s.service.SaveSelections(r.Context(), sel); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, sel)

	default:
		methodNotAllowed(w, "GET, PUT")
	}
}
