// Package model defines domain models for transaction confirmation tracking.
package model

import "fmt"

// Status is a progress stage of a tracked transaction.
type Status string

var (
	// StatusNotFound marks a transaction the ledger has not recorded yet.
	StatusNotFound Status = "not_found"
	// StatusPending marks a transaction known to the network but not mined.
	StatusPending Status = "pending"
	// StatusConfirming marks a mined transaction below its confirmation target.
	StatusConfirming Status = "confirming"
	// StatusConfirmed marks a transaction that reached its confirmation target.
	StatusConfirmed Status = "confirmed"
)

// Rank returns the position of the status in the progress order, or -1 for unknown values.
func (s Status) Rank() int {
	switch s {
	case StatusNotFound:
		return 0
	case StatusPending:
		return 1
	case StatusConfirming:
		return 2
	case StatusConfirmed:
		return 3
	default:
		return -1
	}
}

// Terminal reports whether no further progress is expected.
func (s Status) Terminal() bool {
	return s == StatusConfirmed
}

// UnmarshalText rejects statuses outside the known set.
func (s *Status) UnmarshalText(text []byte) error {
	v := Status(text)
	if v.Rank() < 0 {
		return fmt.Errorf("unknown status %q", string(text))
	}
	*s = v
	return nil
}
