package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	reviewerTo  string
}

// NewSESSender creates a new SES-backed EmailSender for reviewer
// notifications.
func NewSESSender(region, fromAddress, fromName, reviewerTo string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		reviewerTo:  reviewerTo,
	}, nil
}

func (s *sesSender) SendReviewNotification(ctx context.Context, claimID string, decision domain.ClaimDecision) error {
	if s.reviewerTo == "" {
		return nil
	}

	subject := fmt.Sprintf("Claim %s needs manual review", claimID)
	textBody := fmt.Sprintf("Claim %s was flagged for manual review.\n\nReason: %s\n\nSuperClaims", claimID, decision.Reason)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{s.reviewerTo},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
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
