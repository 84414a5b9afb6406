package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"

	"github.com/ADAPortal/models"
)

type EmailService struct {
	client           *resend.Client
	from             string
	counsellingInbox string
	decisionsInbox   string
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend. Without
// an API key the service stays nil and intake endpoints degrade to a
// logged 503.
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Counselling and decision emails will not be delivered.")
		return
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "ADA Portal <no-reply@ada.org.mz>"
	}

	emailService = &EmailService{
		client:           resend.NewClient(apiKey),
		from:             from,
		counsellingInbox: os.Getenv("COUNSELLING_EMAIL"),
		decisionsInbox:   os.Getenv("DECISIONS_EMAIL"),
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance.
func GetEmailService() *EmailService {
	return emailService
}

// SendCounsellingIntake forwards a counselling request to the
// counselling team inbox.
func (s *EmailService) SendCounsellingIntake(intake models.CounsellingIntake) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}
	if s.counsellingInbox == "" {
		return fmt.Errorf("COUNSELLING_EMAIL not configured")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #8b1d2c; border-bottom: 2px solid #8b1d2c; padding-bottom: 8px;">New Counselling Request</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Phone:</strong> %s %s</p>
    <p><strong>Topic:</strong> %s</p>
    <p style="background-color: #f5f5f5; border-left: 4px solid #8b1d2c; padding: 12px;">%s</p>
    <p style="color: #999; font-size: 12px;">Sent automatically by the ADA portal.</p>
</body>
</html>`,
		intake.Name, intake.Email, intake.Country_Code, intake.Phone, intake.Topic, intake.Message)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.counsellingInbox},
		Subject: fmt.Sprintf("Counselling request: %s", intake.Topic),
		Html:    htmlBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send counselling email: %w", err)
	}

	log.Printf("Counselling intake email sent (ID: %s)", sent.Id)
	return nil
}

// SendDecisionNotification forwards a receive-Jesus decision to the
// follow-up team.
func (s *EmailService) SendDecisionNotification(decision models.Decision) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}
	if s.decisionsInbox == "" {
		return fmt.Errorf("DECISIONS_EMAIL not configured")
	}

	visit := "No"
	if decision.Wants_Visit {
		visit = "Yes"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #8b1d2c; border-bottom: 2px solid #8b1d2c; padding-bottom: 8px;">New Decision for Christ</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Phone:</strong> %s %s</p>
    <p><strong>Would like a visit:</strong> %s</p>
    <p style="color: #999; font-size: 12px;">Sent automatically by the ADA portal. Please follow up within 48 hours.</p>
</body>
</html>`,
		decision.Name, decision.Email, decision.Country_Code, decision.Phone, visit)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.decisionsInbox},
		Subject: fmt.Sprintf("New decision: %s", decision.Name),
		Html:    htmlBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send decision email: %w", err)
	}

	log.Printf("Decision notification email sent (ID: %s)", sent.Id)
	return nil
}
