package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	currency    string
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// calculation API.
func NewHandler(logger *zap.Logger, currency string, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if currency == "" {
		currency = constants.DefaultCurrencySymbol
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodyBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, currency: currency, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Calculation API endpoint (JSON or form-encoded)
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Settings endpoint for UI bootstrap
	mux.HandleFunc("/api/settings", h.handleSettings)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

// paymentValue carries one currency amount both as a display-rounded number
// and as rendered text.
type paymentValue struct {
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

type calculateResponse struct {
	RequestID        string       `json:"requestId"`
	MortgageType     string       `json:"mortgageType"`
	NumberOfPayments int          `json:"numberOfPayments"`
	MonthlyPayment   paymentValue `json:"monthlyPayment"`
	TotalPayment     paymentValue `json:"totalPayment"`
	Duration         string       `json:"duration"`
}

type calculateErrorResponse struct {
	RequestID string                  `json:"requestId"`
	Errors    []validation.FieldError `json:"errors"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	requestID := uuid.NewString()

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	form, err := h.decodeForm(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), requestID)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), requestID)
		return
	}

	input, fieldErrors := validation.ParseForm(form)
	if len(fieldErrors) > 0 {
		h.logger.Info("calculation request rejected",
			zap.String("op", "server.handleCalculate"),
			zap.String("requestId", requestID),
			zap.Int("fieldErrors", len(fieldErrors)),
		)
		h.writeJSON(w, http.StatusBadRequest, calculateErrorResponse{
			RequestID: requestID,
			Errors:    fieldErrors,
		})
		return
	}

	result := mortgage.Calculate(input)
	elapsed := time.Since(start)

	response := calculateResponse{
		RequestID:        requestID,
		MortgageType:     string(input.Type),
		NumberOfPayments: mortgage.NumberOfPayments(input.TermYears),
		MonthlyPayment: paymentValue{
			Amount:    mathutil.Round(result.MonthlyPayment),
			Formatted: format.Currency(h.currency, result.MonthlyPayment),
		},
		TotalPayment: paymentValue{
			Amount:    mathutil.Round(result.TotalPayment),
			Formatted: format.Currency(h.currency, result.TotalPayment),
		},
		Duration: elapsed.String(),
	}

	h.logger.Info("mortgage computed",
		zap.String("op", "server.handleCalculate"),
		zap.String("requestId", requestID),
		zap.String("mortgageType", response.MortgageType),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// decodeForm accepts either a JSON document or an HTML form POST; all values
// arrive as raw strings and go through the same validation path.
func (h *handler) decodeForm(r *http.Request) (validation.FormInput, error) {
	var form validation.FormInput

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return form, err
		}
		return form, nil
	}

	if err := r.ParseForm(); err != nil {
		return form, err
	}
	form.Principal = r.PostFormValue(validation.FieldPrincipal)
	form.TermYears = r.PostFormValue(validation.FieldTermYears)
	form.AnnualInterestRate = r.PostFormValue(validation.FieldAnnualInterestRate)
	form.MortgageType = r.PostFormValue(validation.FieldMortgageType)
	return form, nil
}

func (h *handler) handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"currency": h.currency,
		"version":  h.version,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, requestID string) {
	if h.logger != nil {
		h.logger.Error("calculation request failed",
			zap.String("op", "server.handleCalculate"),
			zap.String("requestId", requestID),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"requestId": requestID, "error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
