package resend

// Config holds Resend email provider configuration.
type Config struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	// BaseURL overrides the API endpoint; empty means https://api.resend.com/.
	BaseURL string
}
