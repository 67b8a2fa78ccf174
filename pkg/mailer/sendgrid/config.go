package sendgrid

// Config holds SendGrid email provider configuration.
type Config struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	// BaseURL overrides the API host; empty means https://api.sendgrid.com.
	BaseURL string
}
