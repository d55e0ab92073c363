//go:build !ebiten

package viewer

import (
	"errors"

	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("viewer requires building with the 'ebiten' tag (go build -tags ebiten)")

// Run always reports that the GUI build tag is missing.
func Run(*sim.Controller, Options) error {
	return ErrNoGUI
}
