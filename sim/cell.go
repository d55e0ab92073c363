package sim

// Cell is the terrain stored at one grid coordinate. Bots are not cells;
// occupancy is answered from bot positions.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellFood
	CellPoison
	CellWall
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellFood:
		return "food"
	case CellPoison:
		return "poison"
	case CellWall:
		return "wall"
	}
	return "unknown"
}

// Category is the result of probing a cell from a bot's point of view.
// The numeric values are part of the program semantics: sensing a cell
// advances the address pointer by category+1.
type Category int

const (
	CategoryPoison  Category = 0
	CategoryBlocked Category = 1 // wall or outside the grid
	CategoryBot     Category = 2 // another live bot
	CategoryFood    Category = 3
	CategoryEmpty   Category = 4
)

func (c Category) String() string {
	switch c {
	case CategoryPoison:
		return "poison"
	case CategoryBlocked:
		return "blocked"
	case CategoryBot:
		return "bot"
	case CategoryFood:
		return "food"
	case CategoryEmpty:
		return "empty"
	}
	return "unknown"
}
