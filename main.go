package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sys/windows"

	"github.com/jacobkapitein/thps3-free-cam/config"
	"github.com/jacobkapitein/thps3-free-cam/freecam"
	"github.com/jacobkapitein/thps3-free-cam/game"
	"github.com/jacobkapitein/thps3-free-cam/hook"
	"github.com/jacobkapitein/thps3-free-cam/input"
	"github.com/jacobkapitein/thps3-free-cam/memory"
	"github.com/jacobkapitein/thps3-free-cam/patch"
	"github.com/jacobkapitein/thps3-free-cam/process"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	handle, base, err := process.Attach(config.ProcessName)
	if err != nil {
		log.Error("could not attach", "process", config.ProcessName, "err", err)
		for _, name := range process.ListCandidates("skate") {
			fmt.Println("  candidate:", name)
		}
		fmt.Println("Make sure THPS3 is running and run this tool as Administrator.")
		os.Exit(1)
	}
	log.Info("attached", "process", config.ProcessName, "base", fmt.Sprintf("0x%X", base))

	accessor := memory.NewAccessor(handle)

	camOff := patch.New(accessor, "camera write",
		base+config.PatchCameraWrite,
		config.PatchExpectedBytes, config.PatchReplacementBytes)

	sampler := input.NewSampler(input.NewScreenMouse())
	writer := freecam.NewWriter(accessor, base)
	session := freecam.NewSession(sampler, camOff, writer, log)

	frameHook := hook.New(accessor, config.FramePeriod)

	// Teardown order matters: stop the frame loop first so nothing races the
	// patch restore, then put the original bytes back, then drop the handle.
	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			frameHook.Uninstall()
			if err := session.Close(); err != nil {
				log.Error("patch restore failed", "err", err)
			}
			windows.CloseHandle(handle)
		})
	}

	if err := frameHook.Install(base+config.PatchCameraWrite, config.PatchExpectedBytes, session.Tick); err != nil {
		if errors.Is(err, hook.ErrInjectionFailed) {
			log.Error("unsupported game build, refusing to patch", "err", err)
		} else {
			log.Error("hook install failed", "err", err)
		}
		shutdown()
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		shutdown()
		os.Exit(0)
	}()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("THPS3 Free Cam")
	ebiten.SetTPS(60)

	runErr := ebiten.RunGame(game.NewGame(session, frameHook))
	shutdown()
	if runErr != nil {
		log.Error("session ended", "err", runErr)
		os.Exit(1)
	}
}
