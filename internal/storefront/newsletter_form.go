package storefront

import (
	"context"
	"errors"
	"fmt"
	"github.com/nikolayk812/bakery-web/internal/api"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"go.uber.org/zap"
)

const (
	msgSubscribed         = "Thank you for subscribing to our newsletter!"
	msgSubscriptionFailed = "There was an error processing your subscription. Please try again."
)

type NewsletterFields struct {
	Name  string
	Email string
}

// NewsletterForm drives sign-up: Idle → Submitting → Succeeded | Failed.
type NewsletterForm struct {
	api      NewsletterAPI
	notifier Notifier
	logger   *zap.Logger

	fields  NewsletterFields
	state   State
	lastErr error
}

func NewNewsletterForm(newsletter NewsletterAPI, notifier Notifier, logger *zap.Logger) (*NewsletterForm, error) {
	if newsletter == nil {
		return nil, errors.New("newsletter api is nil")
	}
	if notifier == nil {
		return nil, errors.New("notifier is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NewsletterForm{
		api:      newsletter,
		notifier: notifier,
		logger:   logger,
	}, nil
}

func (f *NewsletterForm) SetFields(fields NewsletterFields) {
	f.fields = fields
}

func (f *NewsletterForm) Fields() NewsletterFields {
	return f.fields
}

func (f *NewsletterForm) State() State {
	return f.state
}

func (f *NewsletterForm) Err() error {
	return f.lastErr
}

func (f *NewsletterForm) Reset() {
	f.fields = NewsletterFields{}
}

func (f *NewsletterForm) Submit(ctx context.Context) State {
	f.state = StateSubmitting
	f.lastErr = nil

	resp, err := f.api.Subscribe(ctx, api.FeedbackRequest{
		Name:    f.fields.Name,
		Email:   f.fields.Email,
		Message: domain.NewsletterMessage,
	})
	if err == nil && !resp.Success {
		err = ErrServerRejected
	}
	if err != nil {
		f.lastErr = fmt.Errorf("api.Subscribe: %w", err)
		f.state = StateFailed
		f.logger.Warn("newsletter subscription failed", zap.Error(f.lastErr))
		f.notifier.Notify(msgSubscriptionFailed)
		return f.state
	}

	f.state = StateSucceeded
	f.notifier.Notify(msgSubscribed)
	f.Reset()

	return f.state
}
