//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AVFoundation -framework CoreMediaIO -framework Foundation
#import <AVFoundation/AVFoundation.h>
#import <CoreMediaIO/CMIOHardware.h>

// 'gone' in FourCC: kCMIODevicePropertyDeviceIsRunningSomewhere
static const CMIOObjectPropertySelector kDeviceIsRunningSomewhere = 0x676f6e65;

int isCameraActive() {
    NSArray *devices = [AVCaptureDevice devicesWithMediaType:AVMediaTypeVideo];
    if (devices == nil || [devices count] == 0) {
        return 0;
    }

    CMIOObjectPropertyAddress address = {
        .mSelector = kDeviceIsRunningSomewhere,
        .mScope    = 0,
        .mElement  = 0,
    };

    for (AVCaptureDevice *device in devices) {
        CMIODeviceID connectionID = (CMIODeviceID)[device connectionID];
        UInt32 isRunning = 0;
        UInt32 dataUsed = 0;
        OSStatus result = CMIOObjectGetPropertyData(connectionID, &address,
            0, NULL, sizeof(isRunning), &dataUsed, &isRunning);
        if (result == kCMIOHardwareNoError && isRunning != 0) {
            return 1;
        }
    }
    return 0;
}
*/
import "C"

// CameraActive reports whether any video capture device is in use by some
// process, i.e. the user already appears to be on a call.
func CameraActive() bool {
	return C.isCameraActive() == 1
}
