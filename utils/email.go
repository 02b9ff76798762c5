package utils

import (
	"bytes"
	"log"
	"strconv"
	"text/template"

	"ticket_server/config"

	"gopkg.in/gomail.v2"
)

// WorkdayCloseData feeds the shift summary email template.
type WorkdayCloseData struct {
	WorkdayId     string
	ValidatorName string
	Opened        string
	Closed        string
	TripCount     int
	Redeemed      int
	Rejected      int
}

var workdayCloseTmpl = template.Must(template.New("workday_close").Parse(
	`Shift {{.WorkdayId}} closed.

Validator: {{.ValidatorName}}
Opened:    {{.Opened}}
Closed:    {{.Closed}}

Trips reported: {{.TripCount}}
Redeemed:       {{.Redeemed}}
Rejected:       {{.Rejected}}
`))

// SendWorkdayCloseEmail sends the shift summary to the carrier (async).
// Skipped entirely when SMTP_HOST is unset.
func SendWorkdayCloseEmail(to string, data WorkdayCloseData) {
	host := config.Config("SMTP_HOST")
	if host == "" || to == "" {
		return
	}
	go func() {
		var body bytes.Buffer
		if err := workdayCloseTmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render workday email: %v", err)
			return
		}

		port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))

		m := gomail.NewMessage()
		m.SetHeader("From", config.Config("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Workday closed: "+data.WorkdayId)
		m.SetBody("text/plain", body.String())

		d := gomail.NewDialer(host, port,
			config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send workday email: %v", err)
		}
	}()
}
