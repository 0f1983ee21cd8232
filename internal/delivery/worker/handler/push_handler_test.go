package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodlink/config"
	deliverycontext "foodlink/internal/delivery/context"
	"foodlink/internal/domain/constants"
	"foodlink/internal/domain/service"
	mockRepo "foodlink/internal/mocks/repository"
	mockService "foodlink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockService.MockNotificationService, *mockRepo.MockOrganizationRepository) {
	t.Helper()

	notificationSvc := mockService.NewMockNotificationService(t)
	orgRepo := mockRepo.NewMockOrganizationRepository(t)

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
		OrgRepo:         orgRepo,
	})

	return h, notificationSvc, orgRepo
}

func pushRequest(t *testing.T, event *service.DonationEvent, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/demo/subscriptions/donation-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func offeredEvent(organizationID uuid.UUID) *service.DonationEvent {
	return &service.DonationEvent{
		RequestID:      "req-from-event",
		EventID:        uuid.NewString(),
		Event:          constants.EventDonationOffered,
		OrganizationID: organizationID.String(),
		DonationID:     uuid.NewString(),
		Payload: map[string]string{
			"title":           "Vegetable curry",
			"quantity":        "12",
			"unit":            "portions",
			"distance_km":     "1.20",
			"pickup_deadline": "2026-03-10T15:00:00Z",
		},
		OccurredAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestPushHandler_SendsOfferToOrganizationDevices(t *testing.T) {
	h, notificationSvc, orgRepo := newTestPushHandler(t)
	organizationID := uuid.New()
	event := offeredEvent(organizationID)

	orgRepo.EXPECT().
		FindDeviceTokens(mock.Anything, organizationID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) ([]string, error) {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

			return []string{"token-a", "token-b"}, nil
		}).
		Once()
	notificationSvc.EXPECT().
		SendBatchNotification(
			mock.Anything,
			[]string{"token-a", "token-b"},
			"New donation nearby",
			"Vegetable curry: 12 portions, 1.20 km away. Pick up by 15:00 UTC",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["event"] == constants.EventDonationOffered &&
					data["event_id"] == event.EventID &&
					data["title"] == "Vegetable curry"
			}),
		).
		Return(1, 1, []string{"token-b"}, nil).
		Once()
	orgRepo.EXPECT().DeactivateDeviceTokens(mock.Anything, []string{"token-b"}).Return(nil).Once()

	rec := servePush(h, pushRequest(t, event, map[string]string{"request_id": "req-from-attributes"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_TimedOutNotice(t *testing.T) {
	h, notificationSvc, orgRepo := newTestPushHandler(t)
	organizationID := uuid.New()
	event := &service.DonationEvent{
		EventID:        uuid.NewString(),
		Event:          constants.EventDonationAssignmentTimedOut,
		OrganizationID: organizationID.String(),
		Payload:        map[string]string{"title": "Bread", "status": "expired"},
	}

	orgRepo.EXPECT().FindDeviceTokens(mock.Anything, organizationID).Return([]string{"token-a"}, nil).Once()
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a"}, "Donation assignment released",
			"Bread was not picked up in time and has expired", mock.Anything).
		Return(1, 0, nil, nil).
		Once()

	rec := servePush(h, pushRequest(t, event, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SplitsIntoFCMBatches(t *testing.T) {
	h, notificationSvc, orgRepo := newTestPushHandler(t)
	organizationID := uuid.New()

	tokens := make([]string, fcmBatchSize+20)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	orgRepo.EXPECT().FindDeviceTokens(mock.Anything, organizationID).Return(tokens, nil).Once()
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, tokens[:fcmBatchSize], mock.Anything, mock.Anything, mock.Anything).
		Return(fcmBatchSize, 0, nil, nil).
		Once()
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, tokens[fcmBatchSize:], mock.Anything, mock.Anything, mock.Anything).
		Return(20, 0, nil, nil).
		Once()

	rec := servePush(h, pushRequest(t, offeredEvent(organizationID), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetriesTransientFailures(t *testing.T) {
	t.Run("device lookup fails", func(t *testing.T) {
		h, _, orgRepo := newTestPushHandler(t)
		organizationID := uuid.New()

		orgRepo.EXPECT().
			FindDeviceTokens(mock.Anything, organizationID).
			Return(nil, errors.New("connection reset")).
			Once()

		rec := servePush(h, pushRequest(t, offeredEvent(organizationID), nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("every batch fails", func(t *testing.T) {
		h, notificationSvc, orgRepo := newTestPushHandler(t)
		organizationID := uuid.New()

		orgRepo.EXPECT().FindDeviceTokens(mock.Anything, organizationID).Return([]string{"token-a"}, nil).Once()
		notificationSvc.EXPECT().
			SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 0, nil, errors.New("fcm unavailable")).
			Once()

		rec := servePush(h, pushRequest(t, offeredEvent(organizationID), nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPushHandler_AcknowledgesUndeliverableEvents(t *testing.T) {
	tests := []struct {
		name  string
		event *service.DonationEvent
	}{
		{
			name:  "unknown event",
			event: &service.DonationEvent{Event: "donation.unknown", OrganizationID: uuid.NewString()},
		},
		{
			name:  "bad organization id",
			event: &service.DonationEvent{Event: constants.EventDonationOffered, OrganizationID: "nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestPushHandler(t)

			rec := servePush(h, pushRequest(t, tt.event, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_NoDevices(t *testing.T) {
	h, _, orgRepo := newTestPushHandler(t)
	organizationID := uuid.New()

	orgRepo.EXPECT().FindDeviceTokens(mock.Anything, organizationID).Return(nil, nil).Once()

	rec := servePush(h, pushRequest(t, offeredEvent(organizationID), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message": {"data": "%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, servePush(h, req).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	req = httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message": {"data": "`+notJSON+`"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, servePush(h, req).Code)
}

func TestNewPushHandler_VerifiesOnlyGooglePushOutsideDevelop(t *testing.T) {
	build := func(provider, env string) *PushHandler {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider, PushAudience: "https://worker.example/push"}}
		cfg.Env.Env = env

		return NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	}

	assert.True(t, build(constants.PubSubProviderGoogle, constants.EnvProduction).verifyPushAuth)
	assert.False(t, build(constants.PubSubProviderGoogle, constants.EnvDevelop).verifyPushAuth)
	assert.False(t, build(constants.PubSubProviderLocal, constants.EnvProduction).verifyPushAuth)
	assert.Equal(t, "https://worker.example/push", build(constants.PubSubProviderGoogle, constants.EnvProduction).pushAudience)
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req, ""))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req, ""))
}
