package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"foodlink/config"
	deliverycontext "foodlink/internal/delivery/context"
	"foodlink/internal/domain/constants"
	"foodlink/internal/domain/repository"
	"foodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// fcmBatchSize is the FCM multicast limit
const fcmBatchSize = 500

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns donation events into push notifications on the organization's devices
type PushHandler struct {
	verifyPushAuth  bool
	pushAudience    string
	logger          *slog.Logger
	notificationSvc service.NotificationService
	orgRepo         repository.OrganizationRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	OrgRepo         repository.OrganizationRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and local runs skip the check.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var pushAudience string
	if params.Config.PubSub != nil {
		pushAudience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		pushAudience:    pushAudience,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		orgRepo:         params.OrgRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request(), h.pushAudience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.DonationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse donation event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing donation event",
		slog.String("event_id", event.EventID),
		slog.String("event", event.Event),
		slog.String("organization_id", event.OrganizationID),
		slog.String("donation_id", event.DonationID),
	)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process donation event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; anything else is acknowledged to stop retries.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the incoming request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DonationEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.DonationEvent) error {
	title, body, ok := notificationContent(event)
	if !ok {
		logger.Warn("[Worker] Unknown donation event, acknowledging", slog.String("event", event.Event))

		return nil
	}

	organizationID, err := uuid.Parse(event.OrganizationID)
	if err != nil {
		return errors.Wrap(err, "invalid organization id")
	}

	tokens, err := h.orgRepo.FindDeviceTokens(ctx, organizationID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(tokens) == 0 {
		logger.Info("[Worker] Organization has no registered devices",
			slog.String("organization_id", event.OrganizationID),
		)

		return nil
	}

	data := make(map[string]string, len(event.Payload)+3)
	for k, v := range event.Payload {
		data[k] = v
	}
	data["event"] = event.Event
	data["event_id"] = event.EventID
	data["organization_id"] = event.OrganizationID

	sent, failed, invalidTokens, err := h.sendBatches(ctx, logger, tokens, title, body, data)
	if err != nil {
		return err
	}

	if len(invalidTokens) > 0 {
		if err := h.orgRepo.DeactivateDeviceTokens(ctx, invalidTokens); err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid device tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("[Worker] Donation event delivered",
		slog.String("event_id", event.EventID),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// sendBatches sends in FCM-sized batches. It reports a retryable error only when no batch got through.
func (h *PushHandler) sendBatches(
	ctx context.Context,
	logger *slog.Logger,
	tokens []string,
	title, body string,
	data map[string]string,
) (sent, failed int, invalidTokens []string, err error) {
	var lastErr error
	for idx := 0; idx < len(tokens); idx += fcmBatchSize {
		end := min(idx+fcmBatchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalid, sendErr := h.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failed += len(batch)
			lastErr = sendErr

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if sent == 0 && lastErr != nil {
		return sent, failed, invalidTokens, newRetryableError(errors.WithStack(lastErr))
	}

	return sent, failed, invalidTokens, nil
}

// notificationContent builds the push title and body for a known event
func notificationContent(event *service.DonationEvent) (title, body string, ok bool) {
	p := event.Payload
	switch event.Event {
	case constants.EventDonationOffered:
		title = "New donation nearby"
		body = fmt.Sprintf("%s: %s %s", p["title"], p["quantity"], p["unit"])
		if distance := p["distance_km"]; distance != "" {
			body = fmt.Sprintf("%s, %s km away", body, distance)
		}
		if deadline := formatDeadline(p["pickup_deadline"]); deadline != "" {
			body = fmt.Sprintf("%s. Pick up by %s", body, deadline)
		}

		return title, body, true
	case constants.EventDonationAssignmentTimedOut:
		title = "Donation assignment released"
		body = fmt.Sprintf("%s was not picked up in time and has been released", p["title"])
		if p["status"] == "expired" {
			body = fmt.Sprintf("%s was not picked up in time and has expired", p["title"])
		}

		return title, body, true
	default:
		return "", "", false
	}
}

func formatDeadline(raw string) string {
	if raw == "" {
		return ""
	}

	deadline, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}

	return deadline.UTC().Format("15:04 UTC")
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// The audience defaults to the URL of this endpoint.
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
