package tracker

import "github.com/goodnatureofminers/txprogress-backend/internal/model"

// Merge folds next into current using a high-water mark on confirmations and reports whether
// next was adopted. The first confirmed report wins regardless of its confirmations and is never
// replaced afterwards.
func Merge(current, next *model.TxStatusReport) (*model.TxStatusReport, bool) {
	switch {
	case next == nil:
		return current, false
	case current == nil:
		return next, true
	case current.Status == model.StatusConfirmed:
		return current, false
	case next.Status == model.StatusConfirmed:
		return next, true
	case next.Confirmations > current.Confirmations:
		return next, true
	default:
		return current, false
	}
}
