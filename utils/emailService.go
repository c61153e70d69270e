package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"lms/config"
	"lms/models"
	courseModels "lms/models/course"
)

// EmailService sends transactional emails through SendGrid.
type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// sendEmail delivers a single HTML email
func (e *EmailService) sendEmail(toEmail, toName, subject, htmlBody string) error {
	from := mail.NewEmail(e.cfg.EmailName, e.cfg.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(e.cfg.SendgridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected email to %s: %d %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid error: %d", response.StatusCode)
	}

	log.Printf("[EMAIL] Sent %q to %s", subject, toEmail)
	return nil
}

// HTML wrapper for a consistent look across all emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1E3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E3A5F; line-height: 1.6; }
			.content h2 { color: #1E3A5F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2563EB; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2563EB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNSPHERE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnSphere. All rights reserved.<br>
				Keep learning, keep growing.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func (e *EmailService) SendWelcomeEmail(email, name string) {
	subject := "Welcome to LearnSphere"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>LearnSphere</strong>! We are thrilled to have you onboard.</p>
		<p>Your account has been successfully created. You can now browse our course catalog and start learning.</p>
		<p>If you have any questions, feel free to reach out to our support team.</p>
	`, name)

	go e.sendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment Confirmation
func (e *EmailService) SendEnrollmentConfirmation(user *models.User, c *courseModels.Course) {
	subject := "Enrollment Confirmed: " + c.Title
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Head to your dashboard and start with the first lesson.
		</div>
		<a href="#" class="btn">Start Learning</a>
	`, user.FullName(), c.Title)

	go e.sendEmail(user.Email, user.FullName(), subject, getEmailTemplate("Enrollment Successful", body))
}

// 3. Course Completed
func (e *EmailService) SendCourseCompletedEmail(user *models.User, c *courseModels.Course) {
	subject := "Congratulations! You completed " + c.Title
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have completed <strong>%s</strong>.</p>
		<p>Check out the catalog for your next course.</p>
	`, user.FullName(), c.Title)

	go e.sendEmail(user.Email, user.FullName(), subject, getEmailTemplate("Course Completed", body))
}

// 4. Payment Confirmation
func (e *EmailService) SendPaymentConfirmation(user *models.User, c *courseModels.Course, amount float64) {
	subject := "Payment Received: " + c.Title
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>$%.2f</strong> for <strong>%s</strong>.</p>
		<p>Your enrollment is fully active. Happy learning!</p>
	`, user.FullName(), amount, c.Title)

	go e.sendEmail(user.Email, user.FullName(), subject, getEmailTemplate("Payment Confirmed", body))
}
