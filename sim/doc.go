// Package sim provides the core engine for botsim: genome-driven bots on a
// bounded grid, evolved generation by generation.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - world.go: the grid, wall layout, item placement and the tick loop
//   - bot.go: the per-bot interpreter (registers, Step, move/fire costs)
//   - instruction.go: gene decoding and the direction table
//   - evolution.go: selection and reproduction
//   - controller.go: one generation's lifecycle and the generation loop
//
// # Architecture
//
// The sim package owns all simulation state; sub-packages consume results:
//   - sim/trace/: pure-data generation history and summary statistics
//   - sim/report/: Reporter implementations (logging, history, charts)
//
// # Determinism
//
// Every random draw comes from a PartitionedRNG owned by the Controller, one
// stream per subsystem (evolution, items, placement, bots). The same seed and
// Config reproduce identical tick counts and populations.
package sim
