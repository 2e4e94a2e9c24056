package main

import (
	"errors"
	"log"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"nextcall/pkg/calendar"
	"nextcall/pkg/models"
	"nextcall/pkg/notify"
	"nextcall/pkg/platform"
	"nextcall/pkg/scheduler"
	"nextcall/pkg/speech"
)

// NextCall is the tray agent: one background watcher polls the calendar
// feed and hands display updates to the tray through a non-blocking
// channel; the watcher alone owns the ActiveEvent between steps.
type NextCall struct {
	app          fyne.App
	notifier     *notify.FyneNotifier
	configWindow *ConfigWindow

	active       *models.ActiveEvent
	lastFetchErr string

	trayCh chan string
	wakeCh chan struct{}
	stopCh chan struct{}

	// mu guards config, engine and joinURL: all three are written on the
	// Fyne event goroutine and read from the watcher or tray updater. A
	// config save swaps both pointers together so the watcher never sees
	// an engine built from a different config than the one it fetched with.
	mu      sync.Mutex
	config  *models.Config
	engine  *scheduler.Engine
	joinURL *url.URL
}

// cameraGate adapts the platform camera probe to the presence interface.
type cameraGate struct{}

func (cameraGate) InUse() bool {
	return platform.CameraActive()
}

func main() {
	nc := &NextCall{
		app:    app.NewWithID("com.nextcall.app"),
		trayCh: make(chan string, 1),
		wakeCh: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
	}

	nc.initialize()
	nc.run()
}

func (nc *NextCall) initialize() {
	config := loadConfig(nc.app)

	// Sync autostart state with config on startup
	if err := setupAutostart(config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	saveConfig(nc.app, config)

	nc.notifier = &notify.FyneNotifier{App: nc.app, OnAction: nc.setJoinURL}
	nc.applyConfig(config)

	nc.setupSystemTray()
	go nc.runTrayUpdater()
	go nc.runWatcher()

	if config.NeedsConfiguration() {
		nc.notifier.Send("NextCall Configuration", "", "WARNING: ICS URL not configured", "")
		nc.showConfigWindow()
	}
}

// applyConfig publishes a config and a reminder engine built from it in
// one critical section. The engine is replaced, never mutated, so the
// watcher's snapshot is safe to use without further locking.
func (nc *NextCall) applyConfig(config *models.Config) {
	engine := &scheduler.Engine{
		Notifier:              nc.notifier,
		Speaker:               &speech.SystemSpeaker{ElevenLabsKey: config.ElevenLabsKey},
		Presence:              cameraGate{},
		SuppressStartWhenBusy: config.SuppressStartWhenBusy,
	}

	nc.mu.Lock()
	nc.config = config
	nc.engine = engine
	nc.mu.Unlock()
}

// snapshot returns the current config and engine pair for one watcher step.
func (nc *NextCall) snapshot() (*models.Config, *scheduler.Engine) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.config, nc.engine
}

func (nc *NextCall) run() {
	nc.app.Lifecycle().SetOnStarted(func() {
		platform.SetActivationPolicy()
	})
	nc.app.Run()
}

// runWatcher is the single poll-decide-wait worker. Waits are advisory and
// always bounded by the default interval; a wake signal (Sync Now, config
// change) cuts the current wait short.
func (nc *NextCall) runWatcher() {
	for {
		wait := nc.step()
		if wait > scheduler.DefaultInterval {
			wait = scheduler.DefaultInterval
		}

		select {
		case <-nc.stopCh:
			return
		case <-nc.wakeCh:
		case <-time.After(wait):
		}
	}
}

// step performs one poll: fetch the feed, decide the display and wait,
// and, when a call is underway, run the reminder sequence. The ActiveEvent
// is taken from and handed back to the struct here only; no other
// goroutine touches it.
func (nc *NextCall) step() time.Duration {
	config, engine := nc.snapshot()
	if config.NeedsConfiguration() {
		return scheduler.DefaultInterval
	}

	events, err := calendar.Fetch(config.ICalURL)
	now := time.Now()

	var next *models.Event
	switch {
	case err == nil:
		next = &events[0]
	case errors.Is(err, calendar.ErrNoUpcomingEvents):
		log.Println("No upcoming calls with video links")
	default:
		// Keep the previous display and schedule untouched; retry after
		// the default interval.
		nc.reportFetchError(err)
		return scheduler.DefaultInterval
	}
	nc.lastFetchErr = ""

	decision := scheduler.Step(next, now)
	nc.pushTray(decision.IconText)

	wait := decision.Wait
	if decision.Started != nil {
		nc.active, wait = engine.Observe(nc.active, *decision.Started, now)
	} else if next != nil {
		log.Printf("Next call \"%s\" starts at %s, waiting %s",
			next.Summary, next.StartTime.Format("2006-01-02 15:04:05 MST"), wait.Round(time.Second))
	}

	return wait
}

// reportFetchError logs a feed failure and surfaces it through a
// notification once: repeats of the same failure stay in the log only.
func (nc *NextCall) reportFetchError(err error) {
	log.Printf("Calendar fetch failed: %v", err)
	if err.Error() == nc.lastFetchErr {
		return
	}
	nc.lastFetchErr = err.Error()

	var statusErr *calendar.HTTPStatusError
	var formatErr *calendar.FormatError
	switch {
	case errors.As(err, &statusErr):
		nc.notifier.Send("NextCall", "Calendar URL rejected", statusErr.Error(), "")
	case errors.As(err, &formatErr):
		nc.notifier.Send("NextCall", "Invalid ical response", formatErr.Error(), "")
	default:
		nc.notifier.Send("NextCall", "Network error", err.Error(), "")
	}
}

// pushTray hands the latest icon text to the tray updater without
// blocking; only the most recent value matters.
func (nc *NextCall) pushTray(iconText string) {
	select {
	case nc.trayCh <- iconText:
	default:
	}
}

// setJoinURL remembers the most recent alert's call link for the tray's
// Join item.
func (nc *NextCall) setJoinURL(u *url.URL) {
	nc.mu.Lock()
	nc.joinURL = u
	nc.mu.Unlock()
}

func (nc *NextCall) currentJoinURL() *url.URL {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.joinURL
}

// syncNow wakes the watcher early.
func (nc *NextCall) syncNow() {
	select {
	case nc.wakeCh <- struct{}{}:
	default:
	}
}

func (nc *NextCall) showConfigWindow() {
	// If config window already exists and is showing, just bring it to front
	if nc.configWindow != nil && nc.configWindow.window != nil {
		nc.configWindow.window.RequestFocus()
		nc.configWindow.window.Show()
		return
	}

	config, _ := nc.snapshot()
	nc.configWindow = NewConfigWindow(nc.app, config, func(newConfig *models.Config) {
		saveConfig(nc.app, newConfig)

		if err := setupAutostart(newConfig.AutoStart); err != nil {
			log.Printf("Warning: failed to setup autostart: %v", err)
		}

		nc.applyConfig(newConfig)
		nc.syncNow()
	})

	nc.configWindow.window.SetOnClosed(func() {
		nc.configWindow = nil
	})

	nc.configWindow.Show()
}

func (nc *NextCall) quit() {
	close(nc.stopCh)
	nc.app.Quit()
}
