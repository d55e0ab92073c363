package cmd

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"
)

// pauseToggler is the part of sim.Controller the stdin watcher drives.
type pauseToggler interface {
	TogglePause() bool
}

// watchPause toggles pause once per line read from r until r is exhausted.
func watchPause(r io.Reader, p pauseToggler) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if p.TogglePause() {
			logrus.Info("Paused; press Enter to resume")
		} else {
			logrus.Info("Resumed")
		}
	}
	if err := scanner.Err(); err != nil {
		logrus.Warnf("stdin watcher stopped: %v", err)
	}
}
