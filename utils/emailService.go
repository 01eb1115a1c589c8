package utils

import (
	"crev/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendReviewConfirmationEmail notifies a user that their review was recorded
func SendReviewConfirmationEmail(email, name, courseCode string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Println("[EMAIL] SENDGRID_API_KEY not set, skipping confirmation email")
		return nil
	}

	from := mail.NewEmail("MCIT Central", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	subject := fmt.Sprintf("Your review for %s was submitted", courseCode)

	plainText := fmt.Sprintf("Hi %s,\n\nYour review for %s has been submitted. Thanks for helping your classmates!\n", name, courseCode)
	htmlBody := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Review Submitted</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: #555555;">Your review for <b>%s</b> has been submitted. Thanks for helping your classmates!</p>
				</div>
			</body>
		</html>
	`, name, courseCode)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending confirmation email to %s: %v", email, err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("[EMAIL] Sendgrid returned %d for %s", resp.StatusCode, email)
		return fmt.Errorf("sendgrid returned %d", resp.StatusCode)
	}

	return nil
}
