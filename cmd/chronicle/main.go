// Command chronicle prints the recent history of a crowncourt database:
// the kingdom roster and the latest court events.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/talgya/crowncourt/internal/diplomacy"
	"github.com/talgya/crowncourt/internal/engine"
	"github.com/talgya/crowncourt/internal/persistence"
)

func main() {
	dbPath := flag.String("db", "data/crowncourt.db", "path to the simulation database")
	limit := flag.Int("events", 25, "number of recent events to print")
	flag.Parse()

	store, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	blob, err := store.Load(diplomacy.StateKey)
	if err != nil || len(blob) == 0 {
		fmt.Println("No saved diplomacy state found.")
		return
	}

	var st diplomacy.State
	if err := json.Unmarshal(blob, &st); err != nil {
		slog.Error("saved state is malformed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Chronicle as of %s\n\n", engine.SimDate(st.Day))

	relations := make(map[string]float64, len(st.Relations))
	for _, r := range st.Relations {
		relations[r.KingdomID] = r.Value
	}

	fmt.Println("Kingdoms:")
	for _, k := range st.Kingdoms {
		status := "active"
		if k.Destroyed {
			status = "fallen"
			if k.DestroyedDay != nil {
				status = fmt.Sprintf("fallen (%s)", engine.SimDate(*k.DestroyedDay))
			}
		}
		fmt.Printf("  %-12s %-22s ruler %-12s heirs %d  strength %2d  wealth %s  relation %+.0f  [%s]\n",
			k.Name, k.Dynasty, k.Ruler.Name, len(k.Heirs),
			k.Strength, humanize.Comma(int64(k.Wealth)), relations[k.ID], status)
	}

	records, err := store.RecentEvents(*limit)
	if err != nil {
		slog.Error("failed to read events", "error", err)
		os.Exit(1)
	}

	fmt.Println("\nRecent events:")
	for i := len(records) - 1; i >= 0; i-- {
		e := records[i]
		fmt.Printf("  %-16s %-18s %s\n", engine.SimDate(e.Day), e.Kind, e.Description)
	}
}
