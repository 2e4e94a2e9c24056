package scheduler

// Notifier delivers an OS-level notification. Implementations are
// fire-and-forget; failures must never influence scheduling.
type Notifier interface {
	Send(title, subtitle, body, actionURL string)
}

// Speaker speaks a phrase out loud. Fire-and-forget, failures non-fatal.
type Speaker interface {
	Say(text string)
}

// PresenceGate reports whether the user already appears to be on a call.
// Queries are side-effect-free; an unavailable probe reports false.
type PresenceGate interface {
	InUse() bool
}
