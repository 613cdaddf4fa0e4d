package usecase

import (
	"context"
	"fmt"
	"math"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
)

// PayoutUseCase manages withdrawal requests and their review.
type PayoutUseCase struct {
	payouts       repository.PayoutRepository
	profiles      repository.ProfileRepository
	notifications repository.NotificationRepository
}

// NewPayoutUseCase constructs PayoutUseCase.
func NewPayoutUseCase(payouts repository.PayoutRepository, profiles repository.ProfileRepository, notifications repository.NotificationRepository) *PayoutUseCase {
	return &PayoutUseCase{payouts: payouts, profiles: profiles, notifications: notifications}
}

// Request deducts points and records a pending payout. The USD amount is
// converted at the fixed rate and must meet the minimum threshold.
func (u *PayoutUseCase) Request(ctx context.Context, userID int64, usdAmount float64, walletAddress, verificationImageURL string) (*model.PayoutRequest, error) {
	if usdAmount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if usdAmount < model.MinPayoutUSD {
		return nil, domainErrors.ErrBelowMinimumPayout
	}
	if !ValidateWalletAddress(walletAddress) {
		return nil, domainErrors.ErrInvalidWallet
	}
	if verificationImageURL == "" {
		return nil, domainErrors.ErrInvalidUpload
	}

	profile, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Floor, never round: a fractional cent must not deduct a point the
	// user has not earned.
	points := int64(math.Floor(usdAmount * model.PointsPerDollar))
	return u.payouts.Create(ctx, repository.CreatePayoutParams{
		UserID:               userID,
		PointsAmount:         points,
		USDAmount:            usdAmount,
		WalletAddress:        walletAddress,
		VerificationImageURL: verificationImageURL,
		RecipientEmail:       profile.Email,
	})
}

// History returns all payout requests of the user, newest first.
func (u *PayoutUseCase) History(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	return u.payouts.ListByUser(ctx, userID)
}

// ListByStatus returns payout requests in the given state for review.
// Only admins may call it.
func (u *PayoutUseCase) ListByStatus(ctx context.Context, adminID int64, status model.PayoutStatus) ([]model.PayoutRequest, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return u.payouts.ListByStatus(ctx, status)
}

// Resolve moves a pending request to approved or denied. Denial refunds the
// deducted points in the same transaction. The requester is notified either way.
func (u *PayoutUseCase) Resolve(ctx context.Context, adminID, requestID int64, approve bool) (*model.PayoutRequest, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	status := model.PayoutStatusDenied
	if approve {
		status = model.PayoutStatusApproved
	}

	resolved, err := u.payouts.Resolve(ctx, requestID, status)
	if err != nil {
		return nil, err
	}

	if requester, err := u.profiles.GetByID(ctx, resolved.UserID); err == nil {
		body := fmt.Sprintf("Your payout request for $%.2f was %s.", resolved.USDAmount, resolved.Status)
		if status == model.PayoutStatusDenied {
			body += fmt.Sprintf(" %d points were returned to your balance.", resolved.PointsAmount)
		}
		_ = u.notifications.Enqueue(ctx, &model.Notification{
			Kind:           "payout_resolved",
			RecipientEmail: requester.Email,
			Subject:        "Payout request " + string(resolved.Status),
			Body:           body,
		})
	}

	return resolved, nil
}

func (u *PayoutUseCase) requireAdmin(ctx context.Context, adminID int64) error {
	admin, err := u.profiles.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin.Role != model.RoleAdmin {
		return domainErrors.ErrForbidden
	}
	return nil
}
