package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavsangichetty/portfolio/internal/domain/contact"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

var valid = contact.Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"}

func TestSubmitReturnsNotificationAndClearedForm(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	uc := NewSubmitContactUseCase(limiter, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), SubmitContactInput{Message: valid, ClientID: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "Message sent", out.Notification.Title)
	assert.Equal(t, "Your message has been recorded (mock). I'll follow up via email.", out.Notification.Description)
	assert.Equal(t, contact.Message{}, out.Form)
	assert.Equal(t, []string{"10.0.0.1"}, limiter.keys)
}

func TestSubmitRequiresEveryField(t *testing.T) {
	uc := NewSubmitContactUseCase(nil, logger.NewNopLogger())

	for _, m := range []contact.Message{
		{Email: "a@b.c", Message: "x"},
		{Name: "a", Message: "x"},
		{Name: "a", Email: "a@b.c", Message: "   "},
	} {
		_, err := uc.Execute(context.Background(), SubmitContactInput{Message: m})
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
		assert.ErrorIs(t, err, contact.ErrMissingField)
	}
}

func TestSubmitRateLimited(t *testing.T) {
	uc := NewSubmitContactUseCase(&stubLimiter{allow: false}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SubmitContactInput{Message: valid, ClientID: "c"})
	assert.ErrorIs(t, err, apperror.ErrTooManyRequests)
}

func TestSubmitSurvivesLimiterFailure(t *testing.T) {
	uc := NewSubmitContactUseCase(&stubLimiter{err: errors.New("redis down")}, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), SubmitContactInput{Message: valid, ClientID: "c"})
	require.NoError(t, err)
	assert.Equal(t, Sent, out.Notification)
}

func TestSubmitWithoutLimiter(t *testing.T) {
	uc := NewSubmitContactUseCase(nil, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), SubmitContactInput{Message: valid})
	assert.NoError(t, err)
}
