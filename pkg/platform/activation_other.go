//go:build !darwin

package platform

// SetActivationPolicy is a no-op where there is no Dock to hide from.
func SetActivationPolicy() {
}
