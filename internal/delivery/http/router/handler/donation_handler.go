package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"foodlink/internal/delivery/http/middleware"
	"foodlink/internal/delivery/http/response"
	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
	MatchingUC usecase.MatchingUsecase
	Logger     *slog.Logger
}

// DonationHandler serves the donation lifecycle endpoints
type DonationHandler struct {
	donationUC usecase.DonationUsecase
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler
func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
	}
}

// DonationRequest is the body for posting or editing a donation
type DonationRequest struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Description    string    `json:"description" validate:"max=2000"`
	Category       string    `json:"category" validate:"required"`
	Quantity       float64   `json:"quantity" validate:"gt=0"`
	Unit           string    `json:"unit" validate:"required,max=32"`
	PreparedAt     time.Time `json:"prepared_at" validate:"required"`
	ExpiryTime     time.Time `json:"expiry_time" validate:"required"`
	PickupDeadline time.Time `json:"pickup_deadline" validate:"required"`
	Latitude       float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64   `json:"longitude" validate:"min=-180,max=180"`
	Address        string    `json:"address" validate:"max=500"`
}

func (r *DonationRequest) toDetails() usecase.DonationDetails {
	return usecase.DonationDetails{
		Title:          r.Title,
		Description:    r.Description,
		Category:       entity.FoodCategory(r.Category),
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		PreparedAt:     r.PreparedAt,
		ExpiryTime:     r.ExpiryTime,
		PickupDeadline: r.PickupDeadline,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Address:        r.Address,
	}
}

// PickupRequest carries the handoff code scanned at the donor's door
type PickupRequest struct {
	HandoffToken string `json:"handoff_token"`
}

// DeliverRequest records how many people the donation fed
type DeliverRequest struct {
	BeneficiaryCount int `json:"beneficiary_count" validate:"min=0"`
}

// DonationResponse is the API view of a donation
type DonationResponse struct {
	ID             uuid.UUID             `json:"id"`
	DonorID        uuid.UUID             `json:"donor_id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Category       entity.FoodCategory   `json:"category"`
	Quantity       float64               `json:"quantity"`
	Unit           string                `json:"unit"`
	PreparedAt     time.Time             `json:"prepared_at"`
	ExpiryTime     time.Time             `json:"expiry_time"`
	PickupDeadline time.Time             `json:"pickup_deadline"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	Address        string                `json:"address"`
	Status         entity.DonationStatus `json:"status"`
	AcceptedBy     *uuid.UUID            `json:"accepted_by,omitempty"`
	AcceptedAt     *time.Time            `json:"accepted_at,omitempty"`
	PickedUpAt     *time.Time            `json:"picked_up_at,omitempty"`
	DeliveredAt    *time.Time            `json:"delivered_at,omitempty"`
	ReassignCount  int                   `json:"reassign_count"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func newDonationResponse(d *entity.Donation) *DonationResponse {
	return &DonationResponse{
		ID:             d.ID,
		DonorID:        d.DonorID,
		Title:          d.Title,
		Description:    d.Description,
		Category:       d.Category,
		Quantity:       d.Quantity,
		Unit:           d.Unit,
		PreparedAt:     d.PreparedAt,
		ExpiryTime:     d.ExpiryTime,
		PickupDeadline: d.PickupDeadline,
		Latitude:       d.Latitude(),
		Longitude:      d.Longitude(),
		Address:        d.Address,
		Status:         d.Status,
		AcceptedBy:     d.AcceptedBy,
		AcceptedAt:     d.AcceptedAt,
		PickedUpAt:     d.PickedUpAt,
		DeliveredAt:    d.DeliveredAt,
		ReassignCount:  d.ReassignCount,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// HandoffCodeResponse is the JSON form of a handoff code
type HandoffCodeResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateDonation handles a donor posting a new donation
func (h *DonationHandler) CreateDonation(c echo.Context) error {
	donorID, ok := middleware.GetActorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor ID in token")
	}

	var req DonationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	donation, err := h.donationUC.CreateDonation(c.Request().Context(), &usecase.CreateDonationInput{
		DonorID:         donorID,
		DonationDetails: req.toDetails(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDonationResponse(donation))
}

// GetDonation returns a single donation
func (h *DonationHandler) GetDonation(c echo.Context) error {
	donationID, ok := parseDonationID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	donation, err := h.donationUC.GetDonation(c.Request().Context(), donationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDonationResponse(donation))
}

// UpdateDonation handles a donor editing a donation that is still available
func (h *DonationHandler) UpdateDonation(c echo.Context) error {
	donorID, ok := middleware.GetActorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor ID in token")
	}

	donationID, ok := parseDonationID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	var req DonationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	details := req.toDetails()
	donation, err := h.donationUC.UpdateDonation(c.Request().Context(), donorID, donationID, &details)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDonationResponse(donation))
}

// GetSuggestions ranks the organizations eligible for a donation.
// Donors only see suggestions for their own donations.
func (h *DonationHandler) GetSuggestions(c echo.Context) error {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor ID in token")
	}

	donationID, ok := parseDonationID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	ctx := c.Request().Context()
	donation, err := h.donationUC.GetDonation(ctx, donationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !middleware.HasRole(c, entity.RoleAdmin) && donation.DonorID != actorID {
		return response.HandleAppError(c, domainerrors.ErrNotDonationOwner)
	}

	candidates, err := h.matchingUC.RankDonation(ctx, donation)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidates)
}

// AcceptDonation claims an available donation for the caller's organization
func (h *DonationHandler) AcceptDonation(c echo.Context) error {
	return h.transition(c, entity.DonationStatusAccepted, func(input *usecase.TransitionInput, actorID uuid.UUID) error {
		input.OrganizationID = &actorID

		return nil
	})
}

// PickUpDonation records that the organization collected the food
func (h *DonationHandler) PickUpDonation(c echo.Context) error {
	return h.transition(c, entity.DonationStatusPickedUp, func(input *usecase.TransitionInput, actorID uuid.UUID) error {
		var req PickupRequest
		if err := bindOptional(c, &req); err != nil {
			return err
		}

		input.OrganizationID = &actorID
		input.HandoffToken = strings.TrimSpace(req.HandoffToken)

		return nil
	})
}

// DeliverDonation records that the food reached its beneficiaries
func (h *DonationHandler) DeliverDonation(c echo.Context) error {
	return h.transition(c, entity.DonationStatusDelivered, func(input *usecase.TransitionInput, actorID uuid.UUID) error {
		var req DeliverRequest
		if err := bindOptional(c, &req); err != nil {
			return err
		}

		if err := c.Validate(&req); err != nil {
			return err
		}

		input.OrganizationID = &actorID
		input.BeneficiaryCount = req.BeneficiaryCount

		return nil
	})
}

// CancelDonation withdraws a donation on behalf of its donor
func (h *DonationHandler) CancelDonation(c echo.Context) error {
	return h.transition(c, entity.DonationStatusCancelled, func(input *usecase.TransitionInput, actorID uuid.UUID) error {
		input.DonorID = &actorID

		return nil
	})
}

// GetHandoffCode returns the donor's handoff QR code, as PNG when the client asks for an image
func (h *DonationHandler) GetHandoffCode(c echo.Context) error {
	donorID, ok := middleware.GetActorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor ID in token")
	}

	donationID, ok := parseDonationID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	code, err := h.donationUC.GetHandoffCode(c.Request().Context(), donorID, donationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == "png" || strings.Contains(c.Request().Header.Get(echo.HeaderAccept), "image/png") {
		c.Response().Header().Set("Cache-Control", "no-store")

		return c.Blob(http.StatusOK, "image/png", code.PNG)
	}

	return response.Success(c, http.StatusOK, &HandoffCodeResponse{
		Token:     code.Token,
		ExpiresAt: code.ExpiresAt,
	})
}

// transition applies target after prepare fills the actor-specific fields of the input.
// An error from prepare is reported as invalid input.
func (h *DonationHandler) transition(
	c echo.Context,
	target entity.DonationStatus,
	prepare func(input *usecase.TransitionInput, actorID uuid.UUID) error,
) error {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor ID in token")
	}

	donationID, ok := parseDonationID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	input := &usecase.TransitionInput{Target: target}
	if err := prepare(input, actorID); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	donation, err := h.donationUC.ApplyTransition(c.Request().Context(), donationID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDonationResponse(donation))
}

func parseDonationID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// bindOptional binds a JSON body when one was sent.
func bindOptional(c echo.Context, target any) error {
	if c.Request().ContentLength == 0 {
		return nil
	}

	if err := c.Bind(target); err != nil {
		return errors.New("request body is not valid JSON")
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
