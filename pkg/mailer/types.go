package mailer

type Message struct {
	From     string
	FromName string
	To       []string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
