package model

// ReceiptOutcome classifies what the provider knows about a transaction.
type ReceiptOutcome uint8

const (
	// ReceiptNotFound means the ledger has no record of the transaction.
	ReceiptNotFound ReceiptOutcome = iota
	// ReceiptPending means the transaction is known but carries no block number yet.
	ReceiptPending
	// ReceiptMined means the transaction was included in a block.
	ReceiptMined
)

func (o ReceiptOutcome) String() string {
	switch o {
	case ReceiptNotFound:
		return "not_found"
	case ReceiptPending:
		return "pending"
	case ReceiptMined:
		return "mined"
	default:
		return "unknown"
	}
}

// ReceiptLookup is the result of a receipt query. BlockNumber is meaningful only when
// Outcome is ReceiptMined.
type ReceiptLookup struct {
	Outcome     ReceiptOutcome
	BlockNumber uint64
}

// NotFoundReceipt returns a lookup for an unknown transaction.
func NotFoundReceipt() ReceiptLookup {
	return ReceiptLookup{Outcome: ReceiptNotFound}
}

// PendingReceipt returns a lookup for a known but unmined transaction.
func PendingReceipt() ReceiptLookup {
	return ReceiptLookup{Outcome: ReceiptPending}
}

// MinedReceipt returns a lookup for a transaction mined at height.
func MinedReceipt(height uint64) ReceiptLookup {
	return ReceiptLookup{Outcome: ReceiptMined, BlockNumber: height}
}
