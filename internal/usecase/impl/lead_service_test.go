package impl

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	"showroom/config"
	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/service"
	mockRepo "showroom/internal/mocks/repository"
	mockService "showroom/internal/mocks/service"
	"showroom/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type leadMocks struct {
	leads  *mockRepo.MockLeadRepository
	mailer *mockService.MockMailSender
}

func newLeadService(t *testing.T) (usecase.LeadUsecase, *leadMocks) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Resend = &config.ResendConfig{
		RecipientEmail:       "sales@example.com",
		AdditionalRecipients: []string{"owner@example.com", "Sales@Example.com"},
	}

	mocks := &leadMocks{
		leads:  mockRepo.NewMockLeadRepository(t),
		mailer: mockService.NewMockMailSender(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewLeadService(cfg, mocks.leads, mocks.mailer, logger)

	return svc, mocks
}

func TestSubmitQuote_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.QuoteInput
		wantErr error
	}{
		{name: "missing name", input: &usecase.QuoteInput{Email: "a@b.co"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing contact", input: &usecase.QuoteInput{Name: "Pat"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "invalid email", input: &usecase.QuoteInput{Name: "Pat", Email: "nope"}, wantErr: domainerrors.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newLeadService(t)

			err := svc.SubmitQuote(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitQuote_PersistsAndNotifies(t *testing.T) {
	svc, mocks := newLeadService(t)

	var created *entity.Lead
	mocks.leads.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Lead")).
		Run(func(_ context.Context, lead *entity.Lead) {
			created = lead
		}).Return(nil)
	mocks.mailer.EXPECT().Enabled().Return(true)

	var sent []*service.OutboundEmail
	mocks.mailer.EXPECT().Send(mock.Anything, mock.AnythingOfType("*service.OutboundEmail")).
		Run(func(_ context.Context, email *service.OutboundEmail) {
			sent = append(sent, email)
		}).Return(nil).Times(2)

	err := svc.SubmitQuote(context.Background(), &usecase.QuoteInput{
		Name:            "Pat Doe",
		Email:           "Pat@Example.com",
		Phone:           "555-0100",
		Message:         "Interested in a two-car carport",
		ProductInterest: "Aluminum Carports",
		SessionID:       "sess-1",
		Source:          "chat",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "pat@example.com", *created.Email)
	assert.Equal(t, entity.LeadSourceChat, created.Source)
	assert.Equal(t, "sess-1", *created.ChatSessionID)

	require.Len(t, sent, 2)

	business := sent[0]
	assert.Equal(t, []string{"sales@example.com", "owner@example.com"}, business.To)
	assert.Contains(t, business.Subject, "Pat Doe")
	assert.Contains(t, business.HTML, "Interested in a two-car carport")

	confirmation := sent[1]
	assert.Equal(t, []string{"pat@example.com"}, confirmation.To)
	assert.Contains(t, confirmation.HTML, "Pat Doe")
}

func TestSubmitQuote_AttachesRenderedVisual(t *testing.T) {
	svc, mocks := newLeadService(t)

	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	mocks.leads.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	mocks.mailer.EXPECT().Enabled().Return(true)

	var business *service.OutboundEmail
	mocks.mailer.EXPECT().Send(mock.Anything, mock.AnythingOfType("*service.OutboundEmail")).
		Run(func(_ context.Context, email *service.OutboundEmail) {
			if business == nil {
				business = email
			}
		}).Return(nil)

	err := svc.SubmitQuote(context.Background(), &usecase.QuoteInput{
		Name:          "Pat",
		Phone:         "555-0100",
		RenderedImage: image,
		VisualizerConfig: &usecase.VisualizerConfig{
			CarportName: "U-Style Flat",
			Style:       "minimalist",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, business)
	require.Len(t, business.Attachments, 1)
	assert.Equal(t, "carport-visual.png", business.Attachments[0].Filename)
	assert.Equal(t, "carport-visual", business.Attachments[0].ContentID)
	assert.Equal(t, []byte("png-bytes"), business.Attachments[0].Content)
	assert.Contains(t, business.HTML, `cid:carport-visual`)
	assert.Contains(t, business.HTML, "U-Style Flat")
}

func TestSubmitQuote_DropsOversizedImage(t *testing.T) {
	svc, mocks := newLeadService(t)

	var created *entity.Lead
	mocks.leads.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Lead")).
		Run(func(_ context.Context, lead *entity.Lead) {
			created = lead
		}).Return(nil)
	mocks.mailer.EXPECT().Enabled().Return(false)

	err := svc.SubmitQuote(context.Background(), &usecase.QuoteInput{
		Name:          "Pat",
		Phone:         "555-0100",
		RenderedImage: "data:image/png;base64," + strings.Repeat("A", 3*1024*1024),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Nil(t, created.VisualizerImage)
}

func TestSubmitQuote_StorageFailureStillSucceeds(t *testing.T) {
	svc, mocks := newLeadService(t)

	mocks.leads.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	mocks.mailer.EXPECT().Enabled().Return(true)
	mocks.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)

	err := svc.SubmitQuote(context.Background(), &usecase.QuoteInput{
		Name:  "Pat",
		Phone: "555-0100",
	})

	assert.NoError(t, err)
}

func TestSubmitQuote_MailDisabled(t *testing.T) {
	svc, mocks := newLeadService(t)

	mocks.leads.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	mocks.mailer.EXPECT().Enabled().Return(false)

	err := svc.SubmitQuote(context.Background(), &usecase.QuoteInput{
		Name:  "Pat",
		Email: "pat@example.com",
	})

	assert.NoError(t, err)
}
