package emergency

import (
	"fmt"
	"os/exec"
	"runtime"
)

// DialTel hands a tel: URI to the system URL handler, the terminal
// equivalent of the mobile dial intent.
func DialTel(number string) error {
	uri := "tel:" + number

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch dial handler: %w", err)
	}
	// Detach; the handler owns the call from here.
	go cmd.Wait()
	return nil
}
