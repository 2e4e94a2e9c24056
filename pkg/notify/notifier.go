// Package notify delivers OS notifications through the Fyne app.
package notify

import (
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
)

// FyneNotifier sends notifications via fyne.App.SendNotification. Fyne
// notifications have no subtitle or click action, so the subtitle is folded
// into the body and the action URL is kept for the tray's Join item.
type FyneNotifier struct {
	App fyne.App

	// OnAction receives the action URL of the most recent alert so the
	// tray can offer a one-click join. Optional.
	OnAction func(u *url.URL)
}

// Send delivers a notification. Fire-and-forget: failures are logged and
// swallowed.
func (n *FyneNotifier) Send(title, subtitle, body, actionURL string) {
	content := body
	if subtitle != "" {
		if content != "" {
			content = subtitle + "\n" + content
		} else {
			content = subtitle
		}
	}

	n.App.SendNotification(fyne.NewNotification(title, content))
	log.Printf("Notification sent: %s - %s", title, strings.ReplaceAll(content, "\n", " / "))

	if actionURL != "" && n.OnAction != nil {
		if u, err := url.Parse(actionURL); err == nil {
			n.OnAction(u)
		} else {
			log.Printf("Ignoring unparseable action URL %q: %v", actionURL, err)
		}
	}
}
