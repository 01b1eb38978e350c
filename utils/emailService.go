package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"learnlink/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	if from == "" {
		log.Printf("Email sender not configured, skipping mail to %v (%s)", to, subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnLink <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.content h2 { color: #1D3557; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #457B9D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LearnLink</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from LearnLink. Please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendBookingAcceptedEmail notifies a student that their booking was accepted.
func SendBookingAcceptedEmail(email, username, courseTitle, date, timeSlot, meetingLink string) {
	subject := "Your booking was accepted!"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your booking for <strong>%s</strong> has been accepted by the tutor.</p>
		<div class="info-box">
			<p><strong>Date:</strong> %s<br>
			<strong>Time:</strong> %s<br>
			<strong>Meeting link:</strong> <a href="%s">%s</a></p>
		</div>
		<p>See you there!</p>`,
		username, courseTitle, date, timeSlot, meetingLink, meetingLink)

	if err := SendEmail([]string{email}, subject, getEmailTemplate("Booking Accepted", body)); err != nil {
		log.Printf("Error sending booking accepted email to %s: %v", email, err)
	}
}

// SendBookingRejectedEmail notifies a student that their booking was rejected.
func SendBookingRejectedEmail(email, username, courseTitle string) {
	subject := "Update on your booking request"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Unfortunately your booking request for <strong>%s</strong> was declined by the tutor.</p>
		<p>You can browse other courses on LearnLink at any time.</p>`,
		username, courseTitle)

	if err := SendEmail([]string{email}, subject, getEmailTemplate("Booking Declined", body)); err != nil {
		log.Printf("Error sending booking rejected email to %s: %v", email, err)
	}
}
