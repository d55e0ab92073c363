package sim

// OpKind is the instruction category a gene decodes to.
type OpKind uint8

const (
	OpMove  OpKind = iota // genes 0-7, terminal
	OpFire                // genes 8-15, terminal
	OpSense               // genes 16-23
	OpTurn                // genes 24-31
	OpJump                // genes 32-63
)

func (k OpKind) String() string {
	switch k {
	case OpMove:
		return "move"
	case OpFire:
		return "fire"
	case OpSense:
		return "sense"
	case OpTurn:
		return "turn"
	case OpJump:
		return "jump"
	}
	return "unknown"
}

// Terminal reports whether executing the instruction ends the bot's tick.
func (k OpKind) Terminal() bool {
	return k == OpMove || k == OpFire
}

// Directions is the size of the eight-neighborhood.
const Directions = 8

// Instruction is a decoded gene.
// Arg is the relative direction (0-7) for Move/Fire/Sense, the turn amount
// for Turn, and the raw gene (address offset) for Jump.
type Instruction struct {
	Kind OpKind
	Arg  int
}

// Decode maps a gene value to its instruction. Genes outside [0, 63] are
// folded into range first.
func Decode(gene uint8) Instruction {
	g := int(gene) % GeneValues
	switch {
	case g < 8:
		return Instruction{Kind: OpMove, Arg: g % Directions}
	case g < 16:
		return Instruction{Kind: OpFire, Arg: g % Directions}
	case g < 24:
		return Instruction{Kind: OpSense, Arg: g % Directions}
	case g < 32:
		return Instruction{Kind: OpTurn, Arg: g % Directions}
	default:
		return Instruction{Kind: OpJump, Arg: g}
	}
}

// directionDeltas maps an absolute direction to its (dx, dy) step.
// 0 is up-left and indices run clockwise; 3 and 7 are pure horizontal.
var directionDeltas = [Directions][2]int{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}

// DirectionDelta returns the (dx, dy) for an absolute direction, taken mod 8.
func DirectionDelta(dir int) (dx, dy int) {
	d := directionDeltas[((dir%Directions)+Directions)%Directions]
	return d[0], d[1]
}
