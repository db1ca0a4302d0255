// Package persistence provides SQLite-based storage for finished runs:
// final player state, turn histories, and the investment ledger.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/boardwalk/internal/game"
	"github.com/talgya/boardwalk/internal/ledger"
)

// DB wraps a SQLite connection for run persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		turns INTEGER NOT NULL,
		active_players INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS players (
		run_id TEXT NOT NULL,
		id INTEGER NOT NULL,
		name TEXT NOT NULL,
		balance INTEGER NOT NULL,
		position INTEGER NOT NULL,
		jailed INTEGER NOT NULL,
		bankrupt INTEGER NOT NULL,
		config_json TEXT NOT NULL,
		history_json TEXT NOT NULL,
		PRIMARY KEY (run_id, id)
	);

	CREATE TABLE IF NOT EXISTS investments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		property TEXT NOT NULL,
		owner TEXT NOT NULL,
		purchased_turn INTEGER NOT NULL,
		purchased_price INTEGER NOT NULL,
		status TEXT NOT NULL,
		transactions_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_investments_run ON investments(run_id);
	CREATE INDEX IF NOT EXISTS idx_players_run ON players(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun writes a finished game and its ledger in one transaction.
func (db *DB) SaveRun(g *game.Game) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	runID := g.ID.String()
	_, err = tx.Exec(
		"INSERT OR REPLACE INTO runs (id, created_at, turns, active_players) VALUES (?, ?, ?, ?)",
		runID, time.Now().UTC().Format(time.RFC3339), g.TurnCount, len(g.Players),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	savePlayer := func(bankrupt bool, id int, name string, balance, position int, jailed bool, cfg, history any) error {
		cfgJSON, _ := json.Marshal(cfg)
		histJSON, _ := json.Marshal(history)
		_, err := tx.Exec(`INSERT OR REPLACE INTO players
			(run_id, id, name, balance, position, jailed, bankrupt, config_json, history_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, id, name, balance, position, boolToInt(jailed), boolToInt(bankrupt),
			string(cfgJSON), string(histJSON),
		)
		return err
	}

	for _, p := range g.Players {
		if err := savePlayer(false, p.ID, p.Name, p.Balance, p.Position, p.Jailed, p.Config, p.TurnHistory); err != nil {
			return fmt.Errorf("insert player %s: %w", p.Name, err)
		}
	}
	for _, p := range g.Bankrupted {
		if err := savePlayer(true, p.ID, p.Name, p.Balance, p.Position, p.Jailed, p.Config, p.TurnHistory); err != nil {
			return fmt.Errorf("insert bankrupted player %s: %w", p.Name, err)
		}
	}

	if _, err := tx.Exec("DELETE FROM investments WHERE run_id = ?", runID); err != nil {
		return err
	}
	stmt, err := tx.Preparex(`INSERT INTO investments
		(run_id, property, owner, purchased_turn, purchased_price, status, transactions_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range g.Ledger.Records() {
		txJSON, _ := json.Marshal(r.Transactions)
		_, err := stmt.Exec(runID, r.Property, r.Owner, r.PurchasedTurn,
			r.PurchasedPrice, string(r.Status), string(txJSON))
		if err != nil {
			return fmt.Errorf("insert investment %s: %w", r.Property, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("run saved", "run_id", runID, "turns", g.TurnCount,
		"investments", len(g.Ledger.Records()))
	return nil
}

// LatestRunID returns the most recently saved run.
func (db *DB) LatestRunID() (string, error) {
	var id string
	err := db.conn.Get(&id, "SELECT id FROM runs ORDER BY created_at DESC LIMIT 1")
	return id, err
}

// LoadLedger reads a run's investment records.
func (db *DB) LoadLedger(runID string) ([]*ledger.Record, error) {
	rows, err := db.conn.Queryx(`SELECT property, owner, purchased_turn,
		purchased_price, status, transactions_json
		FROM investments WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ledger.Record
	for rows.Next() {
		var (
			r      ledger.Record
			status string
			txJSON string
		)
		if err := rows.Scan(&r.Property, &r.Owner, &r.PurchasedTurn,
			&r.PurchasedPrice, &status, &txJSON); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		r.Status = ledger.Status(status)
		if err := json.Unmarshal([]byte(txJSON), &r.Transactions); err != nil {
			return nil, fmt.Errorf("decode transactions for %s: %w", r.Property, err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
