// Package platform sends desktop notifications through the host's
// notification service.
package platform

// AppName is reported to notification services as the sending application.
const AppName = "ShinyPaint"

// Options configures how a notification is displayed.
type Options struct {
	// IconPath, when set, is an image file shown alongside the message.
	IconPath string
	// Timeout in milliseconds; zero uses the service default.
	Timeout int32
}
