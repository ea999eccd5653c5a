package scan

import "strings"

const unknown = "Unknown"

// Checks run from the most specific token to the least specific one:
// iPad and Android tablets also carry generic tokens, iOS agents say "like Mac OS X",
// Android agents say "Linux" and Edge agents say "Chrome".

func ClassifyDevice(userAgent string) DeviceType {
	ua := strings.ToLower(userAgent)
	switch {
	case containsAny(ua, "ipad", "tablet"):
		return DeviceTablet
	case containsAny(ua, "mobile", "iphone", "ipod"):
		return DeviceMobile
	case strings.Contains(ua, "android"):
		// Android without the Mobile token is a tablet.
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}

func ClassifyOS(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "windows"):
		return "Windows"
	case containsAny(ua, "iphone", "ipad", "ipod"):
		return "iOS"
	case strings.Contains(ua, "android"):
		return "Android"
	case containsAny(ua, "macintosh", "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	default:
		return unknown
	}
}

func ClassifyBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case containsAny(ua, "firefox", "fxios"):
		return "Firefox"
	case containsAny(ua, "chrome", "crios"):
		return "Chrome"
	case strings.Contains(ua, "safari"):
		return "Safari"
	default:
		return unknown
	}
}

func containsAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
