//go:build !darwin

package platform

// CameraActive always returns false on platforms without a camera probe;
// reminders are never suppressed there.
func CameraActive() bool {
	return false
}
