package utils

import (
	"fmt"
	"log"

	"github.com/aka-azad/skill-space-server/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEnrollmentEmail sends an enrollment confirmation. Best-effort:
// callers fire it after the enroll transaction commits and ignore the
// result beyond the log line.
func SendEnrollmentEmail(email, classTitle string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Println("SENDGRID_API_KEY not set, skipping enrollment email")
		return nil
	}

	from := mail.NewEmail("SkillSpace", config.AppConfig.EmailSender)
	to := mail.NewEmail("", email)
	subject := "Enrollment Confirmation - SkillSpace"

	plain := fmt.Sprintf("You have successfully enrolled in %s. Happy learning!", classTitle)
	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Congratulations! You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">You can now access the class, its assignments and start learning.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">SkillSpace Team</p>
				</div>
			</body>
		</html>
	`, classTitle)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending enrollment email to %s: %v", email, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send enrollment email to %s, status %d: %s", email, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	log.Println("Enrollment email sent successfully to", email)
	return nil
}
