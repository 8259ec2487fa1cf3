package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsPgDuplicateError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	if !IsPgDuplicateError(dup) {
		t.Error("unique violation not detected")
	}
	if !IsPgDuplicateError(fmt.Errorf("insert revision: %w", dup)) {
		t.Error("wrapped unique violation not detected")
	}
	if IsPgDuplicateError(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation misdetected as duplicate")
	}
	if IsPgDuplicateError(errors.New("plain error")) {
		t.Error("plain error misdetected as duplicate")
	}
	if IsPgDuplicateError(nil) {
		t.Error("nil misdetected as duplicate")
	}
}

func TestIsPgNoRowsError(t *testing.T) {
	if !IsPgNoRowsError(pgx.ErrNoRows) {
		t.Error("pgx.ErrNoRows not detected")
	}
	if !IsPgNoRowsError(fmt.Errorf("get project: %w", pgx.ErrNoRows)) {
		t.Error("wrapped pgx.ErrNoRows not detected")
	}
	if IsPgNoRowsError(errors.New("plain error")) {
		t.Error("plain error misdetected as no rows")
	}
}

func TestIsPgForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	if !IsPgForeignKeyError(fk) {
		t.Error("foreign key violation not detected")
	}
	if IsPgForeignKeyError(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation misdetected as foreign key")
	}
}

func TestNewTableNames(t *testing.T) {
	tests := []struct {
		prefix       string
		wantProjects string
		wantSections string
	}{
		{"dev_", "dev_projects", "dev_sections"},
		{"test_", "test_projects", "test_sections"},
		{"", "projects", "sections"},
	}
	for _, tt := range tests {
		tables := NewTableNames(tt.prefix)
		if tables.Projects != tt.wantProjects {
			t.Errorf("prefix %q: Projects = %q, want %q", tt.prefix, tables.Projects, tt.wantProjects)
		}
		if tables.Sections != tt.wantSections {
			t.Errorf("prefix %q: Sections = %q, want %q", tt.prefix, tables.Sections, tt.wantSections)
		}
	}
}
