package osutil

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/tebeka/atexit"
)

func listenEndSignalAndRunHandler() {
	end := make(chan os.Signal, 1)
	signal.Notify(end,
		syscall.SIGTERM,
		syscall.SIGINT,
	)

	<-end
	signal.Stop(end)
	// https://pkg.go.dev/os#Process.Signal
	// Sending Interrupt on Windows is not implemented.
	atexit.Exit(1)
}
