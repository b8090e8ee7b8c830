package enum

// BatchStatus is the lifecycle status of a sales batch. The set is open:
// the upstream may introduce statuses the gateway has never seen, so unknown
// values are carried through verbatim instead of being rejected.
type BatchStatus string

const (
	BatchStatusCreated    BatchStatus = "Created"
	BatchStatusCheckedOut BatchStatus = "CheckedOut"
	BatchStatusPaid       BatchStatus = "Paid"
	BatchStatusCancelled  BatchStatus = "Cancelled"
	BatchStatusReturned   BatchStatus = "Returned"
)

// Open reports whether the batch is still accepting items, i.e. it has not
// gone through checkout yet. Status comparison is intentionally loose about
// case because the upstream creates batches with a lowercase "created".
func (s BatchStatus) Open() bool {
	return s == BatchStatusCreated || s == "created"
}

func (s BatchStatus) String() string {
	return string(s)
}
