package models

// Config holds application configuration
type Config struct {
	ICalURL               string `json:"ical_url"`                 // ICS feed URL to watch
	ElevenLabsKey         string `json:"eleven_labs_key"`          // optional TTS API key
	AutoStart             bool   `json:"auto_start"`               // launch at login
	SuppressStartWhenBusy bool   `json:"suppress_start_when_busy"` // gate the start alert on camera presence too
}

// NeedsConfiguration returns true if the config needs initial setup
func (c *Config) NeedsConfiguration() bool {
	return c.ICalURL == ""
}
