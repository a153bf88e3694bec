package types

// Status values. There is no transition machine: an editor may set any value
// directly, including values outside this list. A blank status reads as
// Pending.
const (
	StatusPending   = "Pending"
	StatusNextDay   = "NextDay"
	StatusComplete  = "Complete"
	StatusShipped   = "Shipped"
	StatusConfirmed = "Confirmed"
)

// NormalizeStatus maps a blank status to Pending and returns any other value
// unchanged.
func NormalizeStatus(s string) string {
	if s == "" {
		return StatusPending
	}
	return s
}

// IsActive reports whether a record with this status belongs in the active
// view. Everything except Complete is active; the split is display-only.
func IsActive(status string) bool {
	return NormalizeStatus(status) != StatusComplete
}

// Transaction types for the Store ledger. Any other value, including blank,
// contributes to neither side of the stock balance.
const (
	TxnInward  = "Inward"
	TxnOutward = "Outward"
)

// Transaction types for the Order ledger.
const (
	TxnOrderReceived = "Order Received"
	TxnDispatch      = "Dispatch"
)
