package contact

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/application/service"
	"github.com/pranavsangichetty/portfolio/internal/domain/contact"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

var tracer = otel.Tracer("contact_usecase")

// Sent is the acknowledgement shown after every accepted submission.
var Sent = contact.Notification{
	Title:       "Message sent",
	Description: "Your message has been recorded (mock). I'll follow up via email.",
}

// SubmitContactUseCase acknowledges a contact message. The message is not stored or
// transmitted anywhere.
type SubmitContactUseCase struct {
	limiter service.RateLimiter
	logger  logger.Logger
}

func NewSubmitContactUseCase(l service.RateLimiter, log logger.Logger) *SubmitContactUseCase {
	return &SubmitContactUseCase{limiter: l, logger: log}
}

type SubmitContactInput struct {
	Message  contact.Message
	ClientID string
}

type SubmitContactOutput struct {
	Notification contact.Notification
	// Form is the cleared form to render next.
	Form contact.Message
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	ctx, span := tracer.Start(ctx, "SubmitContact")
	defer span.End()

	if err := input.Message.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if uc.limiter != nil {
		ok, err := uc.limiter.Allow(ctx, input.ClientID)
		if err != nil {
			// limiter outage must not block the form
			uc.logger.Error("Contact rate limiter failed", err, zap.String("client", input.ClientID))
		} else if !ok {
			uc.logger.Warn("Contact submission rate limited", zap.String("client", input.ClientID))
			return nil, apperror.NewTooManyRequests("contact submissions are limited, try again later")
		}
	}

	uc.logger.Info("Contact message received", zap.Int("message_length", len(input.Message.Message)))
	return &SubmitContactOutput{Notification: Sent, Form: contact.Message{}}, nil
}
