package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"timing-rental-backend/internal/domain"
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

func (s *emailService) SendOverdueRentalReminder(ctx context.Context, toEmail, clientName string, rental *domain.Rental) error {
	subject := fmt.Sprintf("Rental #%d is overdue", rental.ID)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nRental #%d was expected back on %s and is still open.\n"+
			"Please arrange the return of the rented equipment or contact us to extend the rental.\n",
		clientName, rental.ID, rental.ExpectedEndDate.Format("2006-01-02"))
	htmlContent := fmt.Sprintf(
		"<p>Hello %s,</p><p>Rental <strong>#%d</strong> was expected back on <strong>%s</strong> and is still open.</p>"+
			"<p>Please arrange the return of the rented equipment or contact us to extend the rental.</p>",
		clientName, rental.ID, rental.ExpectedEndDate.Format("2006-01-02"))

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(clientName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

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
