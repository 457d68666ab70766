package mailer

import (
	"fmt"
	"html"
	"strings"
)

// ContactEmailData carries one contact-form submission into the email
// builders.
type ContactEmailData struct {
	Name    string
	Email   string
	Message string
}

// BuildContactEmail renders a submission as text and HTML bodies addressed
// to the site owner, with Reply-To set to the submitter so that answering
// the email reaches them directly.
func BuildContactEmail(to, from, fromName string, data ContactEmailData) Message {
	subject := fmt.Sprintf("Portfolio Contact: Message from %s", data.Name)

	textBody := fmt.Sprintf(`Name: %s
Email: %s

Message:
%s
`, data.Name, data.Email, data.Message)

	htmlBody := fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<h3>Message:</h3>
<p>%s</p>`,
		html.EscapeString(data.Name),
		html.EscapeString(data.Email),
		htmlMessage(data.Message),
	)

	return Message{
		From:     from,
		FromName: fromName,
		To:       []string{to},
		ReplyTo:  data.Email,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

func htmlMessage(s string) string {
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
