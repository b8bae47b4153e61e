package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatusResolver interface {
		Resolve(ctx context.Context, txHash string, target uint64) (*model.TxStatusReport, error)
	}
	HTTPMetrics interface {
		ObserveRequest(route, method string, code int, started time.Time)
	}
)
