package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_ValuesDriveAddressSkips(t *testing.T) {
	// Sensing or paying for a cell advances the address by category+1, so
	// the numeric values are fixed.
	assert.Equal(t, 0, int(CategoryPoison))
	assert.Equal(t, 1, int(CategoryBlocked))
	assert.Equal(t, 2, int(CategoryBot))
	assert.Equal(t, 3, int(CategoryFood))
	assert.Equal(t, 4, int(CategoryEmpty))
}

func TestCellAndCategory_String(t *testing.T) {
	assert.Equal(t, "wall", CellWall.String())
	assert.Equal(t, "food", CellFood.String())
	assert.Equal(t, "unknown", Cell(9).String())
	assert.Equal(t, "blocked", CategoryBlocked.String())
	assert.Equal(t, "unknown", Category(-1).String())
	assert.Equal(t, "jump", OpJump.String())
}
