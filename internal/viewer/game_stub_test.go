//go:build !ebiten

package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_HeadlessBuild_ReportsMissingTag(t *testing.T) {
	err := Run(nil, DefaultOptions())

	assert.ErrorIs(t, err, ErrNoGUI)
}
