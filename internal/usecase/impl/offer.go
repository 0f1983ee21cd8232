package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"foodlink/internal/domain/constants"
	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"
	"foodlink/internal/usecase"
)

// offerToTopCandidate ranks an available donation and notifies the best candidate.
// Runs after commit; failures are logged and never reach the caller.
func offerToTopCandidate(
	ctx context.Context,
	matching usecase.MatchingUsecase,
	dispatcher service.NotificationDispatcher,
	logger *slog.Logger,
	donation *entity.Donation,
) {
	candidates, err := matching.RankDonation(ctx, donation)
	if err != nil {
		logger.Warn("Failed to rank candidates for donation",
			slog.String("donation_id", donation.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	if len(candidates) == 0 {
		logger.Info("No eligible organization for donation", slog.String("donation_id", donation.ID.String()))

		return
	}

	top := candidates[0]
	payload := donationPayload(donation)
	payload["score"] = strconv.FormatFloat(top.Score, 'f', 1, 64)
	payload["distance_km"] = strconv.FormatFloat(top.DistanceKm, 'f', 2, 64)

	dispatcher.Notify(ctx, top.OrganizationID, constants.EventDonationOffered, payload)
}

func donationPayload(donation *entity.Donation) map[string]string {
	return map[string]string{
		"donation_id":     donation.ID.String(),
		"title":           donation.Title,
		"category":        string(donation.Category),
		"quantity":        strconv.FormatFloat(donation.Quantity, 'f', -1, 64),
		"unit":            donation.Unit,
		"expiry_time":     donation.ExpiryTime.UTC().Format(time.RFC3339),
		"pickup_deadline": donation.PickupDeadline.UTC().Format(time.RFC3339),
	}
}
