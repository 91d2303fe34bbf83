package mailer

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

var verificationTemplate = template.Must(template.New("verification").Parse(
	`Hi {{.Username}},

Your verification code is {{.Code}}.

The code expires in one hour. If you did not sign up, ignore this mail.
`))

// Sender delivers account mail over SMTP.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(host string, port int, username, password, from string) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendVerificationEmail mails the signup code to the given address.
func (s *Sender) SendVerificationEmail(to, username, code string) error {
	var body bytes.Buffer
	err := verificationTemplate.Execute(&body, map[string]string{
		"Username": username,
		"Code":     code,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification mail: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/plain", body.String())

	return s.dialer.DialAndSend(m)
}
