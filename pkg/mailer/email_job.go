package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Text/HTML may be given directly, or a Template name plus Data for rendering
// in the worker.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "verify_email" or "forgot_password"
	Data     map[string]any `json:"data,omitempty"`
}
