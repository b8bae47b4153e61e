// Package render formats tracker snapshots as plain text.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
	"github.com/goodnatureofminers/txprogress-backend/internal/tracker"
)

// BarWidth is the number of cells in the progress bar.
const BarWidth = 40

// StatusText describes the stage of report. A nil report means no response arrived yet.
func StatusText(report *model.TxStatusReport) string {
	if report == nil {
		return "Connecting to network..."
	}
	switch report.Status {
	case model.StatusNotFound:
		return "Searching for transaction..."
	case model.StatusPending:
		return "Transaction found! Waiting to be mined..."
	case model.StatusConfirming:
		return "Confirming on-chain..."
	case model.StatusConfirmed:
		return "Transaction Confirmed!"
	default:
		return "Unknown status"
	}
}

// FormatETA renders an estimate as "Xm Ys remaining (approx.)". It is empty for a nil or zero estimate.
func FormatETA(seconds *uint64) string {
	if seconds == nil || *seconds == 0 {
		return ""
	}
	mins, secs := *seconds/60, *seconds%60
	if mins == 0 {
		return fmt.Sprintf("%ds remaining (approx.)", secs)
	}
	return fmt.Sprintf("%dm %ds remaining (approx.)", mins, secs)
}

// Bar draws a progress bar of width cells filled in proportion to percent.
func Bar(percent uint64, width int) string {
	if width <= 0 {
		return "[]"
	}
	filled := int(min(percent, 100) * uint64(width) / 100)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Snapshot renders the full progress view of snap.
func Snapshot(snap tracker.Snapshot, pollInterval time.Duration) string {
	var b strings.Builder

	if snap.State == tracker.StateIdle {
		b.WriteString("Not tracking any transaction\n")
		return b.String()
	}

	report := snap.Report
	var percent, confirmations uint64
	target := snap.Target
	if report != nil {
		percent = report.ProgressPercent
		confirmations = report.Confirmations
		target = report.TargetConfirmations
	}

	fmt.Fprintf(&b, "Ethereum Tracker %s\n", snap.TxHash)
	fmt.Fprintf(&b, "%s\n", StatusText(report))
	fmt.Fprintf(&b, "%s %3d%%\n", Bar(percent, BarWidth), percent)
	fmt.Fprintf(&b, "%d/%d confirmations\n", confirmations, target)
	if report != nil && report.Status != model.StatusConfirmed {
		if eta := FormatETA(report.EtaSeconds); eta != "" {
			fmt.Fprintf(&b, "%s\n", eta)
		}
	}
	if snap.LastErr != nil {
		fmt.Fprintf(&b, "Error: %v\n", snap.LastErr)
	}
	fmt.Fprintf(&b, "Network: Ethereum Mainnet, polling every %s\n", pollInterval)
	return b.String()
}
