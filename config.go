package main

import (
	"fyne.io/fyne/v2"

	"nextcall/pkg/models"
)

func loadConfig(app fyne.App) *models.Config {
	prefs := app.Preferences()

	return &models.Config{
		ICalURL:               prefs.String("ical_url"),
		ElevenLabsKey:         prefs.String("eleven_labs_key"),
		AutoStart:             prefs.BoolWithFallback("auto_start", false),
		SuppressStartWhenBusy: prefs.BoolWithFallback("suppress_start_when_busy", false),
	}
}

func saveConfig(app fyne.App, config *models.Config) {
	prefs := app.Preferences()

	prefs.SetString("ical_url", config.ICalURL)
	prefs.SetString("eleven_labs_key", config.ElevenLabsKey)
	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetBool("suppress_start_when_busy", config.SuppressStartWhenBusy)
}
