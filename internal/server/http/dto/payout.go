package dto

import "time"

// PayoutRequestBody describes a withdrawal request payload.
type PayoutRequestBody struct {
	AmountUSD            float64 `json:"amount_usd"`
	WalletAddress        string  `json:"wallet_address"`
	VerificationImageURL string  `json:"verification_image_url"`
}

// PayoutResponse describes a payout request and its state.
type PayoutResponse struct {
	ID            int64      `json:"id"`
	PointsAmount  int64      `json:"points_amount"`
	AmountUSD     float64    `json:"amount_usd"`
	WalletAddress string     `json:"wallet_address"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// ResolvePayoutRequest carries the admin decision.
type ResolvePayoutRequest struct {
	Action string `json:"action"`
}
