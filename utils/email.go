package utils

import (
	"fmt"
	"io"
	"log"
	"net/smtp"
	"os"
	"strings"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// ReadyNotificationData feeds the ready-for-pickup mail.
type ReadyNotificationData struct {
	OrderNumber  string
	CustomerName string
	Items        []string
	Total        float64
	QRCode       []byte
}

// SendReadyNotificationEmail tells a customer their order is ready for
// collection, with the collection QR embedded. Async so the status PATCH
// response is not delayed by SMTP.
func SendReadyNotificationEmail(to string, data ReadyNotificationData) {
	go func() {
		body := fmt.Sprintf(`<html><body>
<h2>Your laundry is ready for collection</h2>
<p>Hi %s,</p>
<p>Order <strong>%s</strong> is ready. Please show the QR code below at the counter.</p>
<ul><li>%s</li></ul>
<p>Total: R%.2f</p>
<p><img src="cid:collection_qr"/></p>
</body></html>`,
			data.CustomerName, data.OrderNumber,
			strings.Join(data.Items, "</li><li>"), data.Total)

		m := gomail.NewMessage()
		m.SetHeader("From", "LaundryOS <noreply@laundryos.co.za>")
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("Ready for collection - Order %s", data.OrderNumber))
		m.SetBody("text/html", body)

		if len(data.QRCode) > 0 {
			m.Embed("collection_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data.QRCode)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<collection_qr>"},
				"Content-Disposition": {"inline"},
			}))
		}

		d := gomail.NewDialer(os.Getenv("SMTP_HOST"), 587, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("ready notification to %s failed: %v", to, err)
		} else {
			log.Printf("ready notification sent to %s for order %s", to, data.OrderNumber)
		}
	}()
}

// SendWelcomeEmail greets a newly registered customer. Plain text is enough
// here, so it goes out through the lighter SMTP client.
func SendWelcomeEmail(to, firstName string) {
	go func() {
		e := email.NewEmail()
		e.From = "LaundryOS <noreply@laundryos.co.za>"
		e.To = []string{to}
		e.Subject = "Welcome to LaundryOS"
		e.Text = []byte(fmt.Sprintf(
			"Hi %s,\n\nThanks for registering with us. We'll email you whenever an order is ready for collection.\n\nLaundryOS",
			firstName))

		host := os.Getenv("SMTP_HOST")
		auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), host)
		if err := e.Send(host+":587", auth); err != nil {
			log.Printf("welcome email to %s failed: %v", to, err)
		}
	}()
}
