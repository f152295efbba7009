package receipt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cedricbahirwe/Cashew/internal/extraction"
)

// maxBodySize bounds JSON request bodies; OCR text is small
const maxBodySize = 1 << 20

// corsError writes an error response with CORS headers set
func corsError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	http.Error(w, message, code)
}

// jsonError writes a JSON error body
func jsonError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	writeJSON(w, code, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListCurrencies returns the supported currency codes
func (s *Server) handleListCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, extraction.Currencies())
}

type scanRequest struct {
	RawText   string `json:"raw_text"`
	QRPayload string `json:"qr_payload"`
}

// handleScan parses OCR text into a draft receipt for review
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	receipt, err := s.service.ScanReceipt(r.Context(), req.RawText, req.QRPayload)
	if err != nil {
		if errors.Is(err, ErrEmptyScan) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("Error scanning receipt", "error", err)
		jsonError(w, "Error scanning receipt", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

type createReceiptRequest struct {
	Receipt *Receipt `json:"receipt"`
	RawText string   `json:"raw_text"`
}

// handleCreateReceipt saves a reviewed receipt
func (s *Server) handleCreateReceipt(w http.ResponseWriter, r *http.Request) {
	var req createReceiptRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil || req.Receipt == nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.service.CreateReceipt(req.Receipt, req.RawText); err != nil {
		if errors.Is(err, ErrInvalidReceipt) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("Error creating receipt", "error", err)
		jsonError(w, "Error saving receipt", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, req.Receipt)
}

// handleListReceipts returns a list of all receipts
func (s *Server) handleListReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := s.service.ListReceipts()
	if err != nil {
		slog.Error("Error listing receipts", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Ensure we always return an array, not nil
	if receipts == nil {
		receipts = []*Receipt{}
	}
	writeJSON(w, http.StatusOK, receipts)
}

// handleGetReceipt returns a single receipt
func (s *Server) handleGetReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.service.GetReceipt(r.PathValue("id"))
	if err != nil {
		s.lookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

// handleGetReceiptText returns the OCR text stored with a receipt
func (s *Server) handleGetReceiptText(w http.ResponseWriter, r *http.Request) {
	text, err := s.service.GetReceiptText(r.PathValue("id"))
	if err != nil {
		s.lookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

// handleDeleteReceipt deletes a receipt
func (s *Server) handleDeleteReceipt(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteReceipt(r.PathValue("id")); err != nil {
		s.lookupError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		corsError(w, "Receipt not found", http.StatusNotFound)
		return
	}
	slog.Error("Error looking up receipt", "error", err)
	corsError(w, "Internal server error", http.StatusInternalServerError)
}
