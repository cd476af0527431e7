// Package server exposes every calculator and simulation as a JSON HTTP API
// and keeps a bounded calculation history behind it.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jwpark-dev/homeplan/internal/calc"
	"github.com/jwpark-dev/homeplan/internal/config"
	"github.com/jwpark-dev/homeplan/internal/history"
	"github.com/jwpark-dev/homeplan/internal/simulation"
	"github.com/jwpark-dev/homeplan/pkg/constants"
	"github.com/jwpark-dev/homeplan/pkg/datetime"
	"github.com/jwpark-dev/homeplan/pkg/validation"
)

type handler struct {
	logger      *zap.Logger
	calc        *calc.Calculator
	sim         *simulation.Simulator
	store       history.Store
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler serving the calculation API.
func NewHandler(logger *zap.Logger, tables config.Tables, store history.Store, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	if store == nil {
		store = history.NewMemoryStore()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	calculator := calc.New(tables, logger)
	h := &handler{
		logger:      logger,
		calc:        calculator,
		sim:         simulation.New(calculator, logger),
		store:       store,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	r := mux.NewRouter()
	r.Use(h.limitBody)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/acquisition-tax", h.handleAcquisitionTax).Methods(http.MethodPost)
	api.HandleFunc("/brokerage-fee", h.handleBrokerageFee).Methods(http.MethodPost)
	api.HandleFunc("/capital-gains", h.handleCapitalGains).Methods(http.MethodPost)
	api.HandleFunc("/total-cost", h.handleTotalCost).Methods(http.MethodPost)
	api.HandleFunc("/loans", h.handleLoans).Methods(http.MethodPost)
	api.HandleFunc("/loans/recommend", h.handleRecommend).Methods(http.MethodPost)
	api.HandleFunc("/simulations/first-buy", h.handleFirstBuy).Methods(http.MethodPost)
	api.HandleFunc("/simulations/trade-up", h.handleTradeUp).Methods(http.MethodPost)
	api.HandleFunc("/history", h.handleHistoryList).Methods(http.MethodGet)
	api.HandleFunc("/history", h.handleHistoryClear).Methods(http.MethodDelete)
	api.HandleFunc("/history/{id}", h.handleHistoryRemove).Methods(http.MethodDelete)

	r.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)

	return r
}

func (h *handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}

type purchaseRequest struct {
	Housing calc.Housing `json:"housing"`
	Buyer   calc.Buyer   `json:"buyer"`
}

func (h *handler) handleAcquisitionTax(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if !h.decode(w, r, &req, "server.handleAcquisitionTax") {
		return
	}
	if !h.validatePurchase(w, req, "server.handleAcquisitionTax") {
		return
	}

	result := h.calc.AcquisitionTax(req.Housing, req.Buyer)

	var effectiveRate float64
	if req.Housing.Price > 0 {
		effectiveRate = float64(result.Total) / float64(req.Housing.Price)
	}
	h.record(r, history.NewAcquisitionTax(history.AcquisitionTaxSnapshot{
		PropertyPrice: req.Housing.Price,
		HouseCount:    req.Buyer.HouseCount,
		TotalTax:      result.Total,
		EffectiveRate: effectiveRate,
	}), "server.handleAcquisitionTax")

	h.writeJSON(w, http.StatusOK, result)
}

type brokerageRequest struct {
	Price int64 `json:"price"`
}

func (h *handler) handleBrokerageFee(w http.ResponseWriter, r *http.Request) {
	var req brokerageRequest
	if !h.decode(w, r, &req, "server.handleBrokerageFee") {
		return
	}
	if req.Price < 0 {
		h.respondError(w, http.StatusBadRequest, "price must not be negative", "server.handleBrokerageFee")
		return
	}

	result := h.calc.BrokerageFee(req.Price)

	h.record(r, history.NewBrokerageFee(history.BrokerageFeeSnapshot{
		TransactionPrice: req.Price,
		Fee:              result.Total,
		Rate:             result.Rate,
	}), "server.handleBrokerageFee")

	h.writeJSON(w, http.StatusOK, result)
}

// salePropertyRequest mirrors calc.PropertyForSale with the purchase date as
// a plain "2006-01-02" string.
type salePropertyRequest struct {
	PurchasePrice   int64   `json:"purchasePrice"`
	PurchaseDate    string  `json:"purchaseDate"`
	CurrentValue    int64   `json:"currentValue"`
	Area            float64 `json:"area"`
	Region          string  `json:"region"`
	District        string  `json:"district"`
	ResidenceYears  int     `json:"residenceYears"`
	ResidenceMonths int     `json:"residenceMonths"`
	SingleHousehold bool    `json:"singleHousehold"`
}

func (r salePropertyRequest) toDomain() (calc.PropertyForSale, error) {
	purchaseDate, err := datetime.ParseDate(r.PurchaseDate)
	if err != nil {
		return calc.PropertyForSale{}, fmt.Errorf("invalid purchaseDate: %w", err)
	}
	return calc.PropertyForSale{
		PurchasePrice:   r.PurchasePrice,
		PurchaseDate:    purchaseDate,
		CurrentValue:    r.CurrentValue,
		Area:            r.Area,
		Region:          r.Region,
		District:        r.District,
		ResidenceYears:  r.ResidenceYears,
		ResidenceMonths: r.ResidenceMonths,
		SingleHousehold: r.SingleHousehold,
	}, nil
}

func (h *handler) handleCapitalGains(w http.ResponseWriter, r *http.Request) {
	var req salePropertyRequest
	if !h.decode(w, r, &req, "server.handleCapitalGains") {
		return
	}

	property, err := req.toDomain()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCapitalGains")
		return
	}
	if err := validation.ValidatePropertyForSale(property); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCapitalGains")
		return
	}

	result := h.calc.SaleResult(property)

	h.record(r, history.NewCapitalGainsTax(history.CapitalGainsTaxSnapshot{
		SalePrice:     property.CurrentValue,
		PurchasePrice: property.PurchasePrice,
		CapitalGain:   result.CapitalGain,
		Tax:           result.CapitalGainsTax,
		TaxExempt:     result.TaxExempt,
	}), "server.handleCapitalGains")

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleTotalCost(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if !h.decode(w, r, &req, "server.handleTotalCost") {
		return
	}
	if !h.validatePurchase(w, req, "server.handleTotalCost") {
		return
	}

	h.writeJSON(w, http.StatusOK, h.calc.TotalCost(req.Housing, req.Buyer))
}

func (h *handler) handleLoans(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if !h.decode(w, r, &req, "server.handleLoans") {
		return
	}
	if !h.validatePurchase(w, req, "server.handleLoans") {
		return
	}

	offers := h.calc.AllLoans(req.Housing, req.Buyer)

	var eligible []string
	var totalLimit, totalMonthly int64
	for _, offer := range offers {
		if offer.Eligible {
			eligible = append(eligible, offer.Name)
			totalLimit += offer.Limit
			totalMonthly += offer.MonthlyPayment
		}
	}
	h.record(r, history.NewLoan(history.LoanSnapshot{
		PropertyPrice:   req.Housing.Price,
		EligibleLoans:   eligible,
		TotalLoanAmount: totalLimit,
		MonthlyPayment:  totalMonthly,
	}), "server.handleLoans")

	h.writeJSON(w, http.StatusOK, offers)
}

type recommendRequest struct {
	Housing      calc.Housing `json:"housing"`
	Buyer        calc.Buyer   `json:"buyer"`
	TargetAmount int64        `json:"targetAmount"`
}

func (h *handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !h.decode(w, r, &req, "server.handleRecommend") {
		return
	}
	if !h.validatePurchase(w, purchaseRequest{Housing: req.Housing, Buyer: req.Buyer}, "server.handleRecommend") {
		return
	}
	if req.TargetAmount < 0 {
		h.respondError(w, http.StatusBadRequest, "targetAmount must not be negative", "server.handleRecommend")
		return
	}

	offers := h.calc.AllLoans(req.Housing, req.Buyer)
	h.writeJSON(w, http.StatusOK, h.calc.Recommend(offers, req.TargetAmount))
}

type firstBuyRequest struct {
	Housing          calc.Housing `json:"housing"`
	Buyer            calc.Buyer   `json:"buyer"`
	AvailableCapital int64        `json:"availableCapital"`
}

func (h *handler) handleFirstBuy(w http.ResponseWriter, r *http.Request) {
	var req firstBuyRequest
	if !h.decode(w, r, &req, "server.handleFirstBuy") {
		return
	}
	if !h.validatePurchase(w, purchaseRequest{Housing: req.Housing, Buyer: req.Buyer}, "server.handleFirstBuy") {
		return
	}
	if req.AvailableCapital < 0 {
		h.respondError(w, http.StatusBadRequest, "availableCapital must not be negative", "server.handleFirstBuy")
		return
	}

	result := h.sim.FirstBuy(simulation.FirstBuyInput{
		Housing:          req.Housing,
		Buyer:            req.Buyer,
		AvailableCapital: req.AvailableCapital,
	})

	h.record(r, history.NewFirstBuy(history.FirstBuySnapshot{
		PropertyPrice:  req.Housing.Price,
		Region:         req.Housing.Region,
		District:       req.Housing.District,
		TotalCost:      result.Cost.Total,
		LoanAmount:     result.Recommendation.TotalAmount,
		MonthlyPayment: result.Recommendation.MonthlyPayment,
	}), "server.handleFirstBuy")

	h.writeJSON(w, http.StatusOK, result)
}

type tradeUpRequest struct {
	CurrentProperty salePropertyRequest `json:"currentProperty"`
	NewHousing      calc.Housing        `json:"newHousing"`
	Buyer           calc.Buyer          `json:"buyer"`
}

func (h *handler) handleTradeUp(w http.ResponseWriter, r *http.Request) {
	var req tradeUpRequest
	if !h.decode(w, r, &req, "server.handleTradeUp") {
		return
	}

	property, err := req.CurrentProperty.toDomain()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleTradeUp")
		return
	}
	if err := validation.ValidatePropertyForSale(property); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleTradeUp")
		return
	}
	if !h.validatePurchase(w, purchaseRequest{Housing: req.NewHousing, Buyer: req.Buyer}, "server.handleTradeUp") {
		return
	}

	result := h.sim.TradeUp(simulation.TradeUpInput{
		CurrentProperty: property,
		NewHousing:      req.NewHousing,
		Buyer:           req.Buyer,
	})

	h.record(r, history.NewTradeUp(history.TradeUpSnapshot{
		CurrentPropertyValue:  property.CurrentValue,
		NewPropertyPrice:      req.NewHousing.Price,
		NetProceeds:           result.Sale.NetProceeds,
		AdditionalFundsNeeded: result.AdditionalFundsNeeded,
		LoanAmount:            result.Recommendation.TotalAmount,
	}), "server.handleTradeUp")

	h.writeJSON(w, http.StatusOK, result)
}

type historyItem struct {
	history.Entry
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

func (h *handler) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	var (
		entries []history.Entry
		err     error
	)
	if rawKind := r.URL.Query().Get("kind"); rawKind != "" {
		kind := history.Kind(rawKind)
		if !kind.Valid() {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown history kind %q", rawKind), "server.handleHistoryList")
			return
		}
		entries, err = h.store.ListByKind(r.Context(), kind)
	} else {
		entries, err = h.store.List(r.Context())
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleHistoryList")
		return
	}

	items := make([]historyItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, historyItem{
			Entry:   entry,
			Label:   entry.Kind.Label(),
			Summary: entry.Summary(),
		})
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *handler) handleHistoryRemove(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.Remove(r.Context(), id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "history entry not found", "server.handleHistoryRemove")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleHistoryRemove")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleHistoryClear")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) validatePurchase(w http.ResponseWriter, req purchaseRequest, op string) bool {
	if err := validation.ValidateHousing(req.Housing); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return false
	}
	if err := validation.ValidateBuyer(req.Buyer); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return false
	}
	return true
}

// record appends a history entry; storage failures are logged, never
// surfaced, so a broken history backend cannot fail a calculation.
func (h *handler) record(r *http.Request, entry history.Entry, op string) {
	if err := h.store.Add(r.Context(), entry); err != nil {
		h.logger.Warn("failed to record history entry",
			zap.String("op", op),
			zap.String("kind", string(entry.Kind)),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
