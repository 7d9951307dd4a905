// Package library provides the storage layer for the xtal site
// library.
//
// It implements the Store interface using SQLite with WAL mode. Sites
// are stored as one scalar row plus position-ordered atom rows, so a
// save/load round trip preserves atom display order exactly.
package library

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"xtal/internal/crystal"
	"xtal/pkg/timeutil"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrSiteNotFound is returned when loading or deleting a name that is
// not in the library.
var ErrSiteNotFound = errors.New("site not found")

// SiteRecord is a named site as stored in the library.
type SiteRecord struct {
	Name      string       `json:"name"`
	Site      crystal.Site `json:"site"`
	UpdatedAt int64        `json:"updated_at"` // Unix nanoseconds
}

// SiteSummary is a listing entry: everything needed to render the
// library without loading full atom lists.
type SiteSummary struct {
	Name      string `json:"name"`
	AtomCount int    `json:"atom_count"`
	UpdatedAt int64  `json:"updated_at"`
}

// Store defines the interface for site persistence. This abstraction
// allows for mocking in tests and potential future backends beyond
// SQLite.
type Store interface {
	// SaveSite persists a site under its name, replacing any previous
	// version wholesale.
	SaveSite(rec *SiteRecord) error
	// GetSite loads a site by name, atoms in display order.
	GetSite(name string) (*SiteRecord, error)
	// ListSites returns summaries ordered by most recently updated.
	ListSites() ([]SiteSummary, error)
	// DeleteSite removes a site and its atoms.
	DeleteSite(name string) error

	// Close gracefully shuts down the database connection.
	Close() error
}

// DBService implements the Store interface using SQLite. It manages
// the database connection, prepared statements, and thread-safe
// access through a read-write mutex.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtUpsertSite *sql.Stmt
	stmtInsertAtom *sql.Stmt
	stmtDeleteAtom *sql.Stmt
}

// NewDBService creates a new library service, initializes the schema,
// and prepares frequently-used statements.
//
// The path parameter specifies the SQLite database file location.
// Use ":memory:" for in-memory databases (useful for testing).
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtUpsertSite, err = s.db.Prepare(`
		INSERT INTO sites (name, total_occupancy, coord_x, coord_y, coord_z, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			total_occupancy = excluded.total_occupancy,
			coord_x = excluded.coord_x,
			coord_y = excluded.coord_y,
			coord_z = excluded.coord_z,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing UpsertSite: %w", err)
	}

	s.stmtInsertAtom, err = s.db.Prepare(`
		INSERT INTO site_atoms (site_name, position, symbol, occupancy, u)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertAtom: %w", err)
	}

	s.stmtDeleteAtom, err = s.db.Prepare(`
		DELETE FROM site_atoms WHERE site_name = ?
	`)
	if err != nil {
		return fmt.Errorf("preparing DeleteAtom: %w", err)
	}

	return nil
}

// SaveSite persists a site under its name. The site row is upserted
// and the atom rows are replaced wholesale in one transaction, so a
// crash cannot leave a site with a mix of old and new atoms.
func (s *DBService) SaveSite(rec *SiteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.Name == "" {
		return fmt.Errorf("saving site: name must not be empty")
	}
	if rec.UpdatedAt == 0 {
		rec.UpdatedAt = timeutil.NowNano()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	site := &rec.Site
	_, err = tx.Stmt(s.stmtUpsertSite).Exec(
		rec.Name, site.TotalOccupancy,
		site.FractionalCoords[0], site.FractionalCoords[1], site.FractionalCoords[2],
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting site %s: %w", rec.Name, err)
	}

	if _, err := tx.Stmt(s.stmtDeleteAtom).Exec(rec.Name); err != nil {
		return fmt.Errorf("clearing atoms of site %s: %w", rec.Name, err)
	}

	insert := tx.Stmt(s.stmtInsertAtom)
	for i, a := range site.Atoms {
		if _, err := insert.Exec(rec.Name, i, a.Symbol, a.Occupancy, a.U); err != nil {
			return fmt.Errorf("inserting atom %d of site %s: %w", i, rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save of site %s: %w", rec.Name, err)
	}
	return nil
}

// GetSite loads a site by name with its atoms in display order.
func (s *DBService) GetSite(name string) (*SiteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec := &SiteRecord{Name: name}
	err := s.db.QueryRow(`
		SELECT total_occupancy, coord_x, coord_y, coord_z, updated_at
		FROM sites
		WHERE name = ?
	`, name).Scan(
		&rec.Site.TotalOccupancy,
		&rec.Site.FractionalCoords[0], &rec.Site.FractionalCoords[1], &rec.Site.FractionalCoords[2],
		&rec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("loading site %s: %w", name, ErrSiteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading site %s: %w", name, err)
	}

	rows, err := s.db.Query(`
		SELECT symbol, occupancy, u
		FROM site_atoms
		WHERE site_name = ?
		ORDER BY position ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("loading atoms of site %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var a crystal.Atom
		if err := rows.Scan(&a.Symbol, &a.Occupancy, &a.U); err != nil {
			return nil, fmt.Errorf("scanning atom row of site %s: %w", name, err)
		}
		rec.Site.Atoms = append(rec.Site.Atoms, a)
	}
	return rec, rows.Err()
}

// ListSites returns summaries of all stored sites, most recently
// updated first.
func (s *DBService) ListSites() ([]SiteSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT s.name, COUNT(a.position), s.updated_at
		FROM sites s
		LEFT JOIN site_atoms a ON a.site_name = s.name
		GROUP BY s.name
		ORDER BY s.updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	defer rows.Close()

	var summaries []SiteSummary
	for rows.Next() {
		var sum SiteSummary
		if err := rows.Scan(&sum.Name, &sum.AtomCount, &sum.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning site summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeleteSite removes a site and its atom rows.
func (s *DBService) DeleteSite(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM sites WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting site %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting site %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("deleting site %s: %w", name, ErrSiteNotFound)
	}
	return nil
}

// Close gracefully shuts down the database, closing all prepared
// statements and the underlying connection.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmts := []*sql.Stmt{s.stmtUpsertSite, s.stmtInsertAtom, s.stmtDeleteAtom}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}
