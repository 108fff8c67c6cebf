package store

import (
	"context"
	"fmt"
	"strings"
)

// ListTabs returns all tab names in insertion order.
func (s *SQLiteStore) ListTabs(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names,
		"SELECT name FROM tabs ORDER BY rowid"); err != nil {
		return nil, fmt.Errorf("querying tabs: %w", err)
	}
	return names, nil
}

// AddTab inserts a tab. Adding an existing name is a no-op.
func (s *SQLiteStore) AddTab(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTabName
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO tabs (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("adding tab %q: %w", name, err)
	}
	return nil
}

// RenameTab renames a tab and moves its assignments to the new name.
// Renaming a tab that does not exist is a no-op.
func (s *SQLiteStore) RenameTab(ctx context.Context, oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrEmptyTabName
	}
	if oldName == newName {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM tabs WHERE name = ?", oldName); err != nil {
		return fmt.Errorf("looking up tab %q: %w", oldName, err)
	}
	if count == 0 {
		return nil
	}

	if err := tx.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM tabs WHERE name = ?", newName); err != nil {
		return fmt.Errorf("looking up tab %q: %w", newName, err)
	}
	if count > 0 {
		return fmt.Errorf("renaming tab %q to %q: %w", oldName, newName, ErrTabExists)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE tabs SET name = ? WHERE name = ?", newName, oldName); err != nil {
		return fmt.Errorf("renaming tab %q: %w", oldName, err)
	}
	// The foreign key cascades too; this keeps rows consistent either way.
	if _, err := tx.ExecContext(ctx,
		"UPDATE assignments SET tab_name = ? WHERE tab_name = ?", newName, oldName); err != nil {
		return fmt.Errorf("moving assignments to tab %q: %w", newName, err)
	}

	return tx.Commit()
}

// DeleteTab removes a tab together with all of its assignments.
func (s *SQLiteStore) DeleteTab(ctx context.Context, name string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM assignments WHERE tab_name = ?", name); err != nil {
		return fmt.Errorf("deleting assignments of tab %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM tabs WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting tab %q: %w", name, err)
	}

	return tx.Commit()
}
