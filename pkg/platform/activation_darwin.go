//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

int
SetActivationPolicy(void) {
    [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
    return 0;
}
*/
import "C"
import "log"

// SetActivationPolicy switches the app to accessory activation so it
// lives in the menu bar without a Dock icon.
func SetActivationPolicy() {
	log.Println("Applying accessory activation policy")
	C.SetActivationPolicy()
}
