// Command roireport prints the investment ledger of a saved run:
// what each property cost, the rent it earned, and the return on
// investment.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/talgya/boardwalk/internal/persistence"
)

func main() {
	dbPath := flag.String("db", "data/boardwalk.db", "path to the run database")
	runID := flag.String("run", "", "run id (defaults to the most recent run)")
	activeOnly := flag.Bool("active", false, "only show records still active at game end")
	flag.Parse()

	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	id := *runID
	if id == "" {
		id, err = db.LatestRunID()
		if err != nil {
			slog.Error("no saved runs found", "error", err)
			os.Exit(1)
		}
	}

	records, err := db.LoadLedger(id)
	if err != nil {
		slog.Error("failed to load ledger", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Investment report for run %s\n\n", id)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROPERTY\tOWNER\tTURN\tPRICE\tRENT\tROI\tSTATUS")

	totalInvested, totalRent := 0, 0
	for _, r := range records {
		if *activeOnly && r.Status != "ACTIVE" {
			continue
		}
		rent := r.RentTotal()
		totalInvested += r.PurchasedPrice
		totalRent += rent
		fmt.Fprintf(w, "%s\t%s\t%d\t$%s\t$%s\t%.1f%%\t%s\n",
			r.Property, r.Owner, r.PurchasedTurn,
			humanize.Comma(int64(r.PurchasedPrice)),
			humanize.Comma(int64(rent)),
			r.ROI()*100, r.Status)
	}
	w.Flush()

	fmt.Printf("\n%d records, $%s invested, $%s rent collected\n",
		len(records),
		humanize.Comma(int64(totalInvested)),
		humanize.Comma(int64(totalRent)))
}
