package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstdesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendDocument(ctx context.Context, email port.DocumentEmail) error {
	subject := fmt.Sprintf("%s %s from %s", email.Kind, email.Number, email.TenantName)
	htmlBody := buildDocumentHTML(email)
	textBody := fmt.Sprintf(
		"Hi %s,\n\n%s has sent you %s %s for a total of INR %s.\n\nPlease contact %s directly for any questions about this document.\n",
		email.ToName, email.TenantName, email.Kind, email.Number, email.Total, email.TenantName)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{email.ToAddress},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildDocumentHTML(email port.DocumentEmail) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s %s</h2>
  <p>Hi %s,</p>
  <p>%s has sent you a %s.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 6px 12px; color: #666;">Number</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
    <tr><td style="padding: 6px 12px; color: #666;">Total</td><td style="padding: 6px 12px;"><strong>&#8377; %s</strong></td></tr>
  </table>
  <p style="color: #999; font-size: 12px;">Please contact %s directly for any questions about this document.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Sent via GSTDesk</p>
</body>
</html>`, email.Kind, email.Number, email.ToName, email.TenantName, email.Kind, email.Number, email.Total, email.TenantName)
}
