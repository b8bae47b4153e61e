package model

import (
	"errors"
	"fmt"
	"math"
)

const (
	// AvgBlockTimeSec is the heuristic block interval used for ETA estimates.
	AvgBlockTimeSec = 12
	// DefaultTargetConfirmations is used when the caller does not pass a target.
	DefaultTargetConfirmations uint64 = 50
)

// TxStatusReport is the confirmation progress of a transaction at query time.
type TxStatusReport struct {
	Status              Status       `json:"status"`
	Confirmations       uint64       `json:"confirmations"`
	TargetConfirmations uint64       `json:"targetConfirmations"`
	ProgressPercent     uint64       `json:"progressPercent"`
	TxBlockNumber       *BlockNumber `json:"txBlockNumber"`
	LatestBlockNumber   BlockNumber  `json:"latestBlockNumber"`
	EtaSeconds          *uint64      `json:"etaSeconds,omitempty"`
}

// NewUnminedReport builds a not_found or pending report.
func NewUnminedReport(status Status, target, latest uint64) (*TxStatusReport, error) {
	if status != StatusNotFound && status != StatusPending {
		return nil, fmt.Errorf("status %q is not an unmined status", status)
	}
	if target == 0 {
		return nil, errors.New("target confirmations must be positive")
	}
	eta := target * AvgBlockTimeSec
	return &TxStatusReport{
		Status:              status,
		TargetConfirmations: target,
		LatestBlockNumber:   BlockNumber(latest),
		EtaSeconds:          &eta,
	}, nil
}

// NewMinedReport builds a confirming or confirmed report for a transaction mined at txBlock.
// The mining block counts as the first confirmation; a head below txBlock yields zero.
func NewMinedReport(txBlock, latest, target uint64) (*TxStatusReport, error) {
	if target == 0 {
		return nil, errors.New("target confirmations must be positive")
	}
	var confirmations uint64
	if latest >= txBlock {
		confirmations = latest - txBlock + 1
	}

	block := BlockNumber(txBlock)
	report := &TxStatusReport{
		Status:              StatusConfirming,
		Confirmations:       confirmations,
		TargetConfirmations: target,
		ProgressPercent:     ProgressPercent(confirmations, target),
		TxBlockNumber:       &block,
		LatestBlockNumber:   BlockNumber(latest),
	}
	if confirmations >= target {
		report.Status = StatusConfirmed
		return report, nil
	}
	eta := (target - confirmations) * AvgBlockTimeSec
	report.EtaSeconds = &eta
	return report, nil
}

// ProgressPercent returns round(100 * min(confirmations, target) / target).
// Below the target the result never rounds up to 100.
func ProgressPercent(confirmations, target uint64) uint64 {
	if target == 0 {
		return 0
	}
	if confirmations >= target {
		return 100
	}
	return min(uint64(math.Round(100*float64(confirmations)/float64(target))), 99)
}

// Validate checks the report invariants.
func (r *TxStatusReport) Validate() error {
	if r == nil {
		return errors.New("report is nil")
	}
	if r.Status.Rank() < 0 {
		return fmt.Errorf("unknown status %q", r.Status)
	}
	if r.TargetConfirmations == 0 {
		return errors.New("target confirmations must be positive")
	}
	if r.ProgressPercent > 100 {
		return fmt.Errorf("progress %d out of range", r.ProgressPercent)
	}
	if want := ProgressPercent(r.Confirmations, r.TargetConfirmations); r.ProgressPercent != want {
		return fmt.Errorf("progress %d does not match %d/%d confirmations", r.ProgressPercent, r.Confirmations, r.TargetConfirmations)
	}
	reached := r.Confirmations >= r.TargetConfirmations
	if (r.Status == StatusConfirmed) != reached {
		return fmt.Errorf("status %s inconsistent with %d/%d confirmations", r.Status, r.Confirmations, r.TargetConfirmations)
	}

	switch r.Status {
	case StatusNotFound, StatusPending:
		if r.TxBlockNumber != nil {
			return fmt.Errorf("%s report carries block number %s", r.Status, r.TxBlockNumber)
		}
		if r.Confirmations != 0 {
			return fmt.Errorf("%s report carries %d confirmations", r.Status, r.Confirmations)
		}
	case StatusConfirming:
		if r.TxBlockNumber == nil {
			return errors.New("confirming report without block number")
		}
	}
	return nil
}
