package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"talktrack/internal/domain"
)

const (
	ProviderSES  = "ses"
	ProviderNoop = "noop"
)

// SESConfig holds configuration for AWS SES. Empty keys are rejected; the tracker
// does not fall back to the shared AWS credential chain.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// sesAPI is the subset of the SES client the mailer calls.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES; "noop" or unknown uses a mailer that only logs.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch config.Provider {
	case ProviderSES:
		var missing []string
		if config.SES.Region == "" {
			missing = append(missing, "AWS_REGION")
		}
		if config.SES.AccessKeyID == "" || config.SES.SecretAccessKey == "" {
			missing = append(missing, "AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY")
		}
		if config.FromAddress == "" {
			missing = append(missing, "MAILER_FROM_ADDRESS")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("ses mailer: %s required", strings.Join(missing, ", "))
		}
		from := mail.Address{Name: config.FromName, Address: config.FromAddress}
		client := ses.NewFromConfig(aws.Config{
			Region: config.SES.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(config.SES.AccessKeyID, config.SES.SecretAccessKey, ""),
			),
		})
		return &sesMailer{client: client, source: from.String(), logger: logger}, nil
	case ProviderNoop, "":
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

// validate rejects messages SES would bounce before spending an API call.
func validate(msg domain.EmailMessage) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}
	for _, to := range msg.To {
		if _, err := mail.ParseAddress(to); err != nil {
			return fmt.Errorf("recipient %q: %w", to, err)
		}
	}
	if msg.HTML == "" && msg.Text == "" {
		return errors.New("empty body")
	}
	return nil
}

type sesMailer struct {
	client sesAPI
	source string
	logger *slog.Logger
}

func utf8Content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String("UTF-8")}
}

func (s *sesMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	if err := validate(msg); err != nil {
		return fmt.Errorf("ses mailer: %w", err)
	}
	body := &types.Body{}
	if msg.HTML != "" {
		body.Html = utf8Content(msg.HTML)
	}
	if msg.Text != "" {
		body.Text = utf8Content(msg.Text)
	}
	result, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(s.source),
		Destination: &types.Destination{ToAddresses: msg.To},
		Message:     &types.Message{Subject: utf8Content(msg.Subject), Body: body},
	})
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	s.logger.InfoContext(ctx, "email sent via SES", "to", strings.Join(msg.To, ","), "message_id", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	if err := validate(msg); err != nil {
		return fmt.Errorf("noop mailer: %w", err)
	}
	n.logger.InfoContext(ctx, "email would be sent (noop)", "to", strings.Join(msg.To, ","), "subject", msg.Subject)
	n.logger.DebugContext(ctx, "email body (noop)", "text", msg.Text)
	return nil
}
