package tracker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatusClient interface {
		Fetch(ctx context.Context, txHash string, target uint64) (*model.TxStatusReport, error)
	}
	Metrics interface {
		ObservePoll(err error, started time.Time)
		ObserveMerge(adopted bool)
	}
)
