package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"nextcall/pkg/scheduler"
)

func (nc *NextCall) setupSystemTray() {
	nc.updateSystemTrayMenu(scheduler.FarFutureIcon)
}

// runTrayUpdater applies icon-text updates from the watcher. The channel
// is non-blocking on the sender side, so missed intermediate values are
// fine; only the latest display matters.
func (nc *NextCall) runTrayUpdater() {
	for {
		select {
		case <-nc.stopCh:
			return
		case iconText := <-nc.trayCh:
			nc.updateSystemTrayMenu(iconText)
		}
	}
}

func (nc *NextCall) updateSystemTrayMenu(iconText string) {
	desk, ok := nc.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	statusItem := fyne.NewMenuItem(statusLine(iconText), nil)
	statusItem.Disabled = true
	menuItems = append(menuItems, statusItem)

	if joinURL := nc.currentJoinURL(); joinURL != nil {
		menuItems = append(menuItems, fyne.NewMenuItem("Join Call", func() {
			if err := nc.app.OpenURL(joinURL); err != nil {
				log.Printf("Failed to open call URL: %v", err)
			}
		}))
	}

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems,
		fyne.NewMenuItem("Settings", func() {
			nc.showConfigWindow()
		}),
		fyne.NewMenuItem("Sync Now", func() {
			nc.syncNow()
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems, fyne.NewMenuItem("Quit", func() {
		nc.quit()
	}))

	desk.SetSystemTrayMenu(fyne.NewMenu("NextCall", menuItems...))
}

// statusLine renders the scheduler's icon text as a menu label.
func statusLine(iconText string) string {
	if iconText == scheduler.FarFutureIcon {
		return "No call within the hour"
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(iconText))
	if err != nil {
		return "Next call: " + iconText
	}
	if minutes < 0 {
		return fmt.Sprintf("Call started %d min ago", -minutes)
	}
	return fmt.Sprintf("Next call in %d min", minutes)
}
