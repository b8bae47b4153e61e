// Package transport exposes the status API over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
	"github.com/goodnatureofminers/txprogress-backend/internal/service"
	"github.com/goodnatureofminers/txprogress-backend/pkg/safe"
	"go.uber.org/zap"
)

// DefaultMaxTargetConfirmations bounds the accepted confirmation target.
const DefaultMaxTargetConfirmations uint64 = 10_000

type errorResponse struct {
	Error string `json:"error"`
}

// StatusHandler serves transaction status reports.
type StatusHandler struct {
	resolver  StatusResolver
	logger    *zap.Logger
	maxTarget uint64
}

// NewStatusHandler returns a StatusHandler. A zero maxTarget selects DefaultMaxTargetConfirmations.
func NewStatusHandler(resolver StatusResolver, logger *zap.Logger, maxTarget uint64) *StatusHandler {
	if maxTarget == 0 {
		maxTarget = DefaultMaxTargetConfirmations
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusHandler{
		resolver:  resolver,
		logger:    logger,
		maxTarget: maxTarget,
	}
}

// TxStatus handles GET /api/eth-tx-status?txHash=&targetConfirmations=.
func (h *StatusHandler) TxStatus(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	txHash := strings.TrimSpace(query.Get("txHash"))
	if txHash == "" {
		writeError(w, http.StatusBadRequest, "txHash query param is required")
		return
	}

	target, err := h.parseTarget(query.Get("targetConfirmations"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.resolver.Resolve(r.Context(), txHash, target)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProviderUnavailable):
			h.logger.Warn("provider unavailable", zap.String("tx_hash", txHash), zap.Error(err))
			writeError(w, http.StatusBadGateway, err.Error())
		case errors.Is(err, service.ErrInvalidTarget):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("resolve tx status", zap.String("tx_hash", txHash), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *StatusHandler) parseTarget(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.DefaultTargetConfirmations, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("targetConfirmations must be an integer")
	}
	target, err := safe.PositiveUint64(v)
	if err != nil {
		return 0, errors.New("targetConfirmations must be positive")
	}
	if target > h.maxTarget {
		return 0, errors.New("targetConfirmations exceeds limit of " + strconv.FormatUint(h.maxTarget, 10))
	}
	return target, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
