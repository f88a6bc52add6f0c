package deps

import "fmt"

// InstallHint returns the platform-appropriate instruction for installing
// ffmpeg. The goos argument takes runtime.GOOS.
func InstallHint(goos string) string {
	switch goos {
	case "darwin":
		return "For macOS: brew install ffmpeg"
	case "linux":
		return "For Ubuntu: sudo apt-get install ffmpeg"
	case "windows":
		return "For Windows: winget install ffmpeg OR scoop install ffmpeg"
	default:
		return fmt.Sprintf("Please check the ffmpeg installation guide for %s.", goos)
	}
}
