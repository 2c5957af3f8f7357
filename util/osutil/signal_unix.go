//go:build unix

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
		// https://www.gnu.org/software/libc/manual/html_node/Termination-Signals.html
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	)

	sig := <-end
	signal.Stop(end)
	atexit.Exit(128 + int(sig.(syscall.Signal)))
}
