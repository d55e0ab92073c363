package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gasich27/EDUCATIONAL-PROJECT---GENETIC-ALGORITHM-ON-BOTS/sim/trace"
)

// historyColumns is the CSV header row.
var historyColumns = []string{
	"generation", "ticks", "lineage", "alive", "mutants_alive", "best_health",
	"control_alive", "control_health", "food", "poison", "food_eaten",
	"poison_eaten", "deaths",
}

// ExportHistory writes h to path, as CSV when the extension is .csv and as
// indented JSON otherwise.
func ExportHistory(h *trace.History, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return WriteHistoryCSV(h, path)
	}
	return WriteHistoryJSON(h, path)
}

// WriteHistoryJSON writes h as indented JSON.
func WriteHistoryJSON(h *trace.History, path string) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// WriteHistoryCSV writes one row per generation under historyColumns.
func WriteHistoryCSV(h *trace.History, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating history file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write(historyColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range h.Records {
		row := []string{
			strconv.Itoa(r.Generation),
			strconv.FormatInt(r.Ticks, 10),
			strconv.Itoa(r.Lineage),
			strconv.Itoa(r.Alive),
			strconv.Itoa(r.MutantsAlive),
			strconv.Itoa(r.BestHealth),
			strconv.FormatBool(r.ControlAlive),
			strconv.Itoa(r.ControlHealth),
			strconv.Itoa(r.Food),
			strconv.Itoa(r.Poison),
			strconv.Itoa(r.FoodEaten),
			strconv.Itoa(r.PoisonEaten),
			strconv.Itoa(r.Deaths),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for generation %d: %w", r.Generation, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
