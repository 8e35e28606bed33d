package utils

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"storefront/config"
	"storefront/models"
)

// SendPaymentConfirmation renders and dispatches the payment confirmation
// email for a paid order. When no SMTP transport is configured the rendered
// content is logged instead and the send reports success; that is an explicit
// development fallback, not a silent failure.
func SendPaymentConfirmation(cfg *config.Config, order *models.Order, payment *models.Payment) (string, error) {
	subject := fmt.Sprintf("Payment received for order %s", order.ID)
	body := renderConfirmationBody(cfg, order, payment)

	if !cfg.SMTPConfigured() {
		LogInfo("Email transport not configured, logging confirmation instead - To: %s, Subject: %s", order.Email, subject)
		LogDebug("Confirmation body for order %s:\n%s", order.ID, body)
		return fmt.Sprintf("dev-%s", uuid.New().String()), nil
	}

	messageID := fmt.Sprintf("<%s@storefront>", uuid.New().String())

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", order.Email)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send confirmation email: %v", err)
	}

	return messageID, nil
}

func renderConfirmationBody(cfg *config.Config, order *models.Order, payment *models.Payment) string {
	name := order.CustomerName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`
		<h2>Thank you for your payment!</h2>
		<p>Hi %s,</p>
		<p>We have received your payment of %.2f %s for order <strong>%s</strong>.</p>
		<table cellpadding="4">
			<tr><td>Order</td><td>%s</td></tr>
			<tr><td>Payment</td><td>%s</td></tr>
			<tr><td>Provider</td><td>%s</td></tr>
			<tr><td>Amount</td><td>%.2f %s</td></tr>
			<tr><td>Received</td><td>%s</td></tr>
		</table>
		<p>You can reach us any time by replying to this email.</p>
		<p><a href="%s">Visit the store</a></p>
	`, name, payment.Amount, payment.Currency, order.ID,
		order.ID, payment.ID, payment.Provider, payment.Amount, payment.Currency,
		payment.CreatedAt.Format("2006-01-02 15:04:05"), cfg.SiteURL)
}
