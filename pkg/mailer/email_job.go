package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending
// email. Template selects a named template rendered by the worker;
// currently "welcome" is the only one this system sends.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// TemplateWelcome greets newly registered users.
const TemplateWelcome = "welcome"
