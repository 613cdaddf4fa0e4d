package dto

import "time"

// PointsResponse reports the balance and its cash value.
type PointsResponse struct {
	Points      int64     `json:"points"`
	EarningsUSD float64   `json:"earnings_usd"`
	LastUpdated time.Time `json:"last_updated"`
}

// TransactionResponse describes one ledger entry.
type TransactionResponse struct {
	ID        int64     `json:"id"`
	Reason    string    `json:"reason"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// AwardRequest describes a client reported engagement event. Ref names the
// subject of the event, for a like the post ID, for a stream the stream ID.
type AwardRequest struct {
	Reason string `json:"reason"`
	Ref    string `json:"ref"`
}

// AwardResponse reports how many points the event earned.
type AwardResponse struct {
	Awarded int64 `json:"awarded"`
}
