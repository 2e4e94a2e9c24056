package main

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"nextcall/pkg/models"
)

type ConfigWindow struct {
	window fyne.Window
	config *models.Config
	onSave func(*models.Config)

	urlEntry      *widget.Entry
	keyEntry      *widget.Entry
	autoStart     *widget.Check
	suppressStart *widget.Check
}

func NewConfigWindow(app fyne.App, config *models.Config, onSave func(*models.Config)) *ConfigWindow {
	cw := &ConfigWindow{
		config: config,
		onSave: onSave,
	}

	cw.window = app.NewWindow("NextCall - Settings")
	cw.buildUI()

	return cw
}

func (cw *ConfigWindow) buildUI() {
	cw.urlEntry = widget.NewEntry()
	cw.urlEntry.SetPlaceHolder("https://calendar.example.com/feed.ics")
	cw.urlEntry.SetText(cw.config.ICalURL)

	cw.keyEntry = widget.NewPasswordEntry()
	cw.keyEntry.SetPlaceHolder("optional")
	cw.keyEntry.SetText(cw.config.ElevenLabsKey)

	cw.autoStart = widget.NewCheck("Launch at login", nil)
	cw.autoStart.SetChecked(cw.config.AutoStart)

	cw.suppressStart = widget.NewCheck("Skip the start alert when the camera is already in use", nil)
	cw.suppressStart.SetChecked(cw.config.SuppressStartWhenBusy)

	form := widget.NewForm(
		widget.NewFormItem("Calendar URL", cw.urlEntry),
		widget.NewFormItem("ElevenLabs key", cw.keyEntry),
		widget.NewFormItem("", cw.autoStart),
		widget.NewFormItem("", cw.suppressStart),
	)

	saveButton := widget.NewButton("Save", cw.save)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", func() {
		cw.window.Close()
	})

	content := container.NewVBox(
		form,
		container.NewHBox(cancelButton, saveButton),
	)

	cw.window.SetContent(content)
	cw.window.Resize(fyne.NewSize(480, 220))
}

func (cw *ConfigWindow) save() {
	icalURL := strings.TrimSpace(cw.urlEntry.Text)
	if icalURL != "" {
		if _, err := url.ParseRequestURI(icalURL); err != nil {
			dialog.ShowError(err, cw.window)
			return
		}
	}

	newConfig := &models.Config{
		ICalURL:               icalURL,
		ElevenLabsKey:         strings.TrimSpace(cw.keyEntry.Text),
		AutoStart:             cw.autoStart.Checked,
		SuppressStartWhenBusy: cw.suppressStart.Checked,
	}

	cw.onSave(newConfig)
	cw.window.Close()
}

func (cw *ConfigWindow) Show() {
	cw.window.Show()
}
