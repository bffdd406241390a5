// Diagnostic: attaches to the game and reports whether this build matches
// the address table, without patching anything. Run it before the trainer
// when in doubt about the game version.
package main

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/windows"

	"github.com/jacobkapitein/thps3-free-cam/config"
	"github.com/jacobkapitein/thps3-free-cam/freecam"
	"github.com/jacobkapitein/thps3-free-cam/memory"
	"github.com/jacobkapitein/thps3-free-cam/process"
)

func main() {
	fmt.Println("=== THPS3 Address Table Check ===")
	fmt.Println()

	handle, base, err := process.Attach(config.ProcessName)
	if err != nil {
		fmt.Println("attach failed:", err)
		for _, name := range process.ListCandidates("skate") {
			fmt.Println("  candidate:", name)
		}
		os.Exit(1)
	}
	defer windows.CloseHandle(handle)

	fmt.Printf("base: 0x%X\n\n", base)
	accessor := memory.NewAccessor(handle)

	// Patch site
	site := base + config.PatchCameraWrite
	live, err := accessor.ReadBytes(site, len(config.PatchExpectedBytes))
	switch {
	case err != nil:
		fmt.Printf("patch site 0x%X: unreadable (%v)\n", site, err)
	case bytes.Equal(live, config.PatchExpectedBytes):
		fmt.Printf("patch site 0x%X: % X  [OK]\n", site, live)
	default:
		fmt.Printf("patch site 0x%X: % X, want % X  [MISMATCH - wrong build]\n",
			site, live, config.PatchExpectedBytes)
	}

	// Camera chain
	writer := freecam.NewWriter(accessor, base)
	cam, err := writer.ReadEngine()
	if err != nil {
		fmt.Println("camera chain: unresolvable:", err)
		fmt.Println("(this is normal on the main menu; try again in-game)")
		os.Exit(1)
	}
	fmt.Printf("camera: X %.2f  Y %.2f  Z %.2f  yaw %.3f  pitch %.3f  [OK]\n",
		cam.Position[0], cam.Position[1], cam.Position[2], cam.Yaw, cam.Pitch)
}
