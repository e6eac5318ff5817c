package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendApprovalEmail notifies an applicant that their profile went live.
func SendApprovalEmail(to, name string) error {
	subject := "Your Hikma profile has been approved"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your profile has been reviewed and approved. It is now visible to patients on Hikma.</p>
		<p>Best regards,<br>The Hikma Team</p>
	`, name)
	return SendEmail(to, subject, body)
}

// SendRejectionEmail notifies an applicant that their application was turned
// down, including the reviewer's reason.
func SendRejectionEmail(to, name, reason string) error {
	subject := "Update on your Hikma application"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately we could not approve your application at this time.</p>
		<p><strong>Reason:</strong> %s</p>
		<p>You may update your details and reapply.</p>
		<p>Best regards,<br>The Hikma Team</p>
	`, name, reason)
	return SendEmail(to, subject, body)
}
