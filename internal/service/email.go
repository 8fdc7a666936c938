package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/pricing"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(toEmail, toName, subject, plainText string) error {
	if s.apiKey == "" {
		// Email is optional in dev; log instead of failing the workflow.
		logger.Debug("Email sending skipped, no API key configured", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendReceipt(ctx context.Context, toEmail, toName string, receipt *domain.Receipt) error {
	subject := fmt.Sprintf("Payment receipt %s", receipt.ReceiptNumber)
	body := fmt.Sprintf(
		"Hello %s,\n\nWe registered your payment of %s (%s).\nChange due: %s.\n\nReceipt number: %s\n\nThank you,\nGympoint",
		toName,
		pricing.FormatAmount(receipt.TotalCents),
		receipt.Method,
		pricing.FormatAmount(receipt.ChangeDueCents),
		receipt.ReceiptNumber,
	)
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, toEmail, toName string, rentalID int32, endDate string) error {
	subject := "Equipment rental overdue"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour equipment rental #%d was due on %s and has not been returned.\nPlease return the equipment at the front desk.\n\nThank you,\nGympoint",
		toName, rentalID, endDate,
	)
	return s.send(toEmail, toName, subject, body)
}
