package domain

// Config stores local CLI settings.
type Config struct {
	APIKey string `json:"api_key"`
	Units  string `json:"units,omitempty"`
}
