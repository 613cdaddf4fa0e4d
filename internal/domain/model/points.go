package model

import "time"

// AwardReason identifies the logical event a point award pays for.
type AwardReason string

const (
	ReasonPostCreated   AwardReason = "post_created"
	ReasonComment       AwardReason = "comment"
	ReasonLike          AwardReason = "like"
	ReasonFollow        AwardReason = "follow"
	ReasonStreamStart   AwardReason = "stream_start"
	ReasonStreamMinute  AwardReason = "stream_minute"
	ReasonDailyLogin    AwardReason = "daily_login"
	ReasonShare         AwardReason = "share"
	ReasonPayoutRequest AwardReason = "payout_request"
	ReasonPayoutRefund  AwardReason = "payout_refund"
)

// awardValues is the single table of points paid per event.
var awardValues = map[AwardReason]int64{
	ReasonPostCreated:  10,
	ReasonComment:      5,
	ReasonLike:         2,
	ReasonFollow:       3,
	ReasonStreamStart:  15,
	ReasonStreamMinute: 1,
	ReasonDailyLogin:   5,
	ReasonShare:        3,
}

// AwardValue returns the fixed point value for a reason, false for reasons
// that are not directly awardable (payout entries are written by the payout
// flow, never through Award).
func AwardValue(reason AwardReason) (int64, bool) {
	v, ok := awardValues[reason]
	return v, ok
}

// PointsPerDollar is the canonical ledger exchange rate: 100 points = $1.
const PointsPerDollar = 100

// EarningsUSD converts a point amount to its dollar value.
func EarningsUSD(points int64) float64 {
	return float64(points) / PointsPerDollar
}

// PointBalance is the current spendable balance of one user. Points never go
// below zero.
type PointBalance struct {
	UserID      int64
	Points      int64
	LastUpdated time.Time
}

// PointTransaction is one append-only ledger entry. The sum of a user's
// transaction amounts equals the balance.
type PointTransaction struct {
	ID        int64
	UserID    int64
	Reason    AwardReason
	Amount    int64
	CreatedAt time.Time
}
