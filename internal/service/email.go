package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"desqworx-backend/internal/domain"
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

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
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

func (s *emailService) SendLowCreditAlert(ctx context.Context, email, companyName string, balance, seatPrice int32) error {
	subject := fmt.Sprintf("Low credit balance for %s", companyName)
	body := fmt.Sprintf(
		"Hello,\n\nThe credit balance for %s has dropped to %d, below the seat price of %d. "+
			"Further present marks and seat bookings will be rejected until credits are added.\n\nThe DesqWorx Team",
		companyName, balance, seatPrice)
	return s.send(email, subject, body)
}

func (s *emailService) SendDailyDigest(ctx context.Context, email string, rollup *domain.SystemRollup) error {
	subject := fmt.Sprintf("DesqWorx daily digest for %s", rollup.Date)
	body := fmt.Sprintf(
		"Daily utilization for %s\n\n"+
			"Companies: %d\n"+
			"Attendance: %d present / %d absent of %d employees\n"+
			"Credits: %d used, %d remaining\n"+
			"Seat bookings: %d of %d (%.1f%%)\n",
		rollup.Date, rollup.Companies,
		rollup.Attendance.Present, rollup.Attendance.Absent, rollup.Attendance.Total,
		rollup.Credits.Used, rollup.Credits.Remaining,
		rollup.Bookings.Booked, rollup.Bookings.Limit, rollup.Bookings.Percentage)
	return s.send(email, subject, body)
}
