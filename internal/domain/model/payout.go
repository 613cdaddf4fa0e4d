package model

import "time"

// PayoutStatus describes the payout request lifecycle. Resolved requests are
// terminal.
type PayoutStatus string

const (
	PayoutStatusPending  PayoutStatus = "pending"
	PayoutStatusApproved PayoutStatus = "approved"
	PayoutStatusDenied   PayoutStatus = "denied"
)

// MinPayoutUSD is the smallest withdrawal a user may request.
const MinPayoutUSD = 40.0

// PayoutRequest converts deducted points into a pending USD withdrawal that
// an admin approves or denies. Denial refunds the deducted points.
type PayoutRequest struct {
	ID                   int64
	UserID               int64
	PointsAmount         int64
	USDAmount            float64
	WalletAddress        string
	VerificationImageURL string
	Status               PayoutStatus
	CreatedAt            time.Time
	ResolvedAt           *time.Time
}
