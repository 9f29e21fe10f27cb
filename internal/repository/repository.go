package repository

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gdsync/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrNotFound is returned when a run does not exist
var ErrNotFound = errors.New("not found")

const runColumns = `
	id, direction, scope, local_root, remote_root, smart_sync, backup, geode_mods,
	gdh_replays, device, status, error_kind, error_message, progress, outcome, log,
	created_at, updated_at, started_at, completed_at`

// Columns added after the first schema, with their definitions
var addedColumns = []struct{ name, definition string }{
	{"geode_mods", "BOOLEAN NOT NULL DEFAULT 0"},
	{"gdh_replays", "BOOLEAN NOT NULL DEFAULT 0"},
	{"device", "TEXT"},
}

// Columns runs may be sorted by
var sortColumns = map[string]string{
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"completed_at": "completed_at",
	"status":       "status",
	"id":           "id",
}

type Repository struct {
	db *sql.DB
}

func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_journal_mode=WAL&_timeout=5000&_cache_size=2000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbPath == ":memory:" {
		// Every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}
	db.SetConnMaxLifetime(time.Hour)

	repo := &Repository{db: db}

	if err := repo.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	_, err = r.db.Exec(string(schemaSQL))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return r.migrateColumns()
}

// migrateColumns adds the columns a database created by an older version
// is missing.
func (r *Repository) migrateColumns() error {
	rows, err := r.db.Query("SELECT name FROM pragma_table_info('transfer_runs')")
	if err != nil {
		return fmt.Errorf("failed to read table info: %w", err)
	}
	existing := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan table info: %w", err)
		}
		existing[name] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating table info: %w", err)
	}

	for _, col := range addedColumns {
		if existing[col.name] {
			continue
		}
		if _, err := r.db.Exec(fmt.Sprintf("ALTER TABLE transfer_runs ADD COLUMN %s %s", col.name, col.definition)); err != nil {
			return fmt.Errorf("failed to add column %s: %w", col.name, err)
		}
		slog.Info("added database column", "table", "transfer_runs", "column", col.name)
	}
	return nil
}

// Ping checks that the database is reachable
func (r *Repository) Ping() error {
	return r.db.Ping()
}

func (r *Repository) CreateRun(run *models.TransferRun) error {
	query := `
		INSERT INTO transfer_runs (
			direction, scope, local_root, remote_root, smart_sync, backup, geode_mods,
			gdh_replays, device, status, error_kind, error_message, progress, outcome,
			log, created_at, updated_at, started_at, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	if run.UpdatedAt.IsZero() {
		run.UpdatedAt = now
	}

	result, err := r.db.Exec(query,
		run.Direction, run.Scope, run.LocalRoot, run.RemoteRoot, run.SmartSync, run.Backup,
		run.GeodeMods, run.GDHReplays, nullString(run.Device), run.Status,
		nullString(run.ErrorKind), nullString(run.ErrorMessage), run.Progress, run.Outcome,
		run.Log, run.CreatedAt, run.UpdatedAt, run.StartedAt, run.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to create transfer run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get transfer run ID: %w", err)
	}

	run.ID = id
	return nil
}

func (r *Repository) GetRun(id int64) (*models.TransferRun, error) {
	query := "SELECT " + runColumns + " FROM transfer_runs WHERE id = ?"

	run, err := scanRun(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transfer run %d %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transfer run: %w", err)
	}

	return run, nil
}

func (r *Repository) GetRuns(filter models.RunFilter) ([]*models.TransferRun, error) {
	query := "SELECT " + runColumns + " FROM transfer_runs"

	var conditions []string
	var args []interface{}

	if len(filter.Status) > 0 {
		placeholders := strings.Repeat("?,", len(filter.Status))
		placeholders = placeholders[:len(placeholders)-1] // Remove trailing comma
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", placeholders))
		for _, status := range filter.Status {
			args = append(args, status)
		}
	}

	if filter.Direction != "" {
		conditions = append(conditions, "direction = ?")
		args = append(args, filter.Direction)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Sorting
	sortBy := "created_at"
	if col, ok := sortColumns[filter.SortBy]; ok {
		sortBy = col
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id %s", sortBy, sortOrder, sortOrder)

	// Pagination
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.TransferRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer runs: %w", err)
	}

	return runs, nil
}

func (r *Repository) UpdateRun(run *models.TransferRun) error {
	query := `
		UPDATE transfer_runs SET
			device = ?, status = ?, error_kind = ?, error_message = ?, progress = ?,
			outcome = ?, log = ?, updated_at = ?, started_at = ?, completed_at = ?
		WHERE id = ?
	`

	run.UpdatedAt = time.Now()
	result, err := r.db.Exec(query,
		nullString(run.Device), run.Status, nullString(run.ErrorKind), nullString(run.ErrorMessage),
		run.Progress, run.Outcome, run.Log, run.UpdatedAt, run.StartedAt, run.CompletedAt, run.ID)
	if err != nil {
		return fmt.Errorf("failed to update transfer run: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("transfer run %d %w", run.ID, ErrNotFound)
	}

	return nil
}

func (r *Repository) DeleteRun(id int64) error {
	_, err := r.db.Exec("DELETE FROM transfer_runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transfer run: %w", err)
	}

	return nil
}

func (r *Repository) GetSummary() (*models.RunSummary, error) {
	query := `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'queued' THEN 1 ELSE 0 END), 0) as queued,
			COALESCE(SUM(CASE WHEN status = 'running' THEN 1 ELSE 0 END), 0) as running,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) as completed,
			COALESCE(SUM(CASE WHEN status = 'completed_with_errors' THEN 1 ELSE 0 END), 0) as completed_with_errors,
			COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0) as failed,
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) as cancelled
		FROM transfer_runs
	`

	var summary models.RunSummary
	err := r.db.QueryRow(query).Scan(
		&summary.TotalRuns, &summary.QueuedRuns, &summary.RunningRuns, &summary.CompletedRuns,
		&summary.CompletedWithErrorsRuns, &summary.FailedRuns, &summary.CancelledRuns)
	if err != nil {
		return nil, fmt.Errorf("failed to get run summary: %w", err)
	}

	return &summary, nil
}

func (r *Repository) GetActiveRunsCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM transfer_runs WHERE status IN ('queued', 'running')").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get active runs count: %w", err)
	}
	return count, nil
}

// CleanupOldRuns deletes finished runs completed before the cutoff
func (r *Repository) CleanupOldRuns(completedBefore time.Time) (int, error) {
	query := `
		DELETE FROM transfer_runs
		WHERE status IN ('completed', 'completed_with_errors', 'failed', 'cancelled')
		  AND completed_at < ?
	`

	result, err := r.db.Exec(query, completedBefore)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old runs: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	slog.Info("cleaned up old transfer runs", "count", rowsAffected)
	return int(rowsAffected), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*models.TransferRun, error) {
	var run models.TransferRun
	var device, errorKind, errorMessage, outcome sql.NullString
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&run.ID, &run.Direction, &run.Scope, &run.LocalRoot, &run.RemoteRoot,
		&run.SmartSync, &run.Backup, &run.GeodeMods, &run.GDHReplays, &device,
		&run.Status, &errorKind, &errorMessage,
		&run.Progress, &outcome, &run.Log, &run.CreatedAt, &run.UpdatedAt,
		&startedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	if device.Valid {
		run.Device = device.String
	}
	if errorKind.Valid {
		run.ErrorKind = errorKind.String
	}
	if errorMessage.Valid {
		run.ErrorMessage = errorMessage.String
	}
	if outcome.Valid && outcome.String != "" && outcome.String != "null" {
		run.Outcome = &models.TransferOutcome{}
		if err := json.Unmarshal([]byte(outcome.String), run.Outcome); err != nil {
			slog.Warn("failed to parse outcome, ignoring", "run_id", run.ID, "error", err)
			run.Outcome = nil
		}
	}
	if run.Log == nil {
		run.Log = models.RunLog{}
	}
	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}

	return &run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
