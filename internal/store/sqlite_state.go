package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"directory-cli/internal/model"

	_ "modernc.org/sqlite"
)

const contactsSchema = `CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL
);`

func openSQLite(ctx context.Context, path string, readOnly bool) (*sql.DB, error) {
	if readOnly {
		// Never create an empty database for a dataset that does not exist.
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA busy_timeout=5000;",
	}
	if !readOnly {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL;", "PRAGMA synchronous=NORMAL;")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

// LoadSQLite reads the contacts table of a SQLite dataset, ordered by position.
func LoadSQLite(ctx context.Context, path string) (Contacts, error) {
	db, err := openSQLite(ctx, path, true)
	if err != nil {
		return Contacts{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, name, phone, email FROM contacts ORDER BY position, rowid`)
	if err != nil {
		return Contacts{}, fmt.Errorf("read contacts table: %w", err)
	}
	defer rows.Close()

	var cs []model.Contact
	for rows.Next() {
		var c model.Contact
		var phone, email sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &phone, &email); err != nil {
			return Contacts{}, err
		}
		c.Phone = phone.String
		c.Email = email.String
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return Contacts{}, err
	}
	if len(cs) == 0 {
		return Contacts{}, &SchemaError{Index: -1, Reason: "contacts table is empty"}
	}
	return NewContacts(cs)
}

// ExportSQLite writes contacts into a fresh contacts table at path, replacing any previous rows.
func ExportSQLite(ctx context.Context, path string, contacts Contacts) error {
	if contacts.Len() == 0 {
		return errors.New("export sqlite: no contacts")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	db, err := openSQLite(ctx, path, false)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, contactsSchema); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Replace-all: a dataset is a snapshot, not an incremental log.
	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO contacts(id, name, phone, email, position) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < contacts.Len(); i++ {
		c := contacts.At(i)
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, c.Phone, c.Email, i); err != nil {
			return fmt.Errorf("insert contact %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}
