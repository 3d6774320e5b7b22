// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package gallery

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS images (
	id          TEXT PRIMARY KEY,
	filename    TEXT NOT NULL,
	path        TEXT NOT NULL,
	uploaded_at TEXT NOT NULL,
	captured_at TEXT,
	location    TEXT NOT NULL DEFAULT '',
	tags        TEXT NOT NULL DEFAULT '[]',
	relations   TEXT NOT NULL DEFAULT '[]',
	quality     TEXT NOT NULL DEFAULT '',
	width       INTEGER NOT NULL DEFAULT 0,
	height      INTEGER NOT NULL DEFAULT 0,
	size        INTEGER NOT NULL DEFAULT 0,
	seq         INTEGER
);
CREATE INDEX IF NOT EXISTS idx_images_location ON images(location);
CREATE INDEX IF NOT EXISTS idx_images_quality ON images(quality);
`

// SQLiteStore is a Store backed by a SQLite database. It exists so the
// demonstration gallery can outlive the process; the result cache
// deliberately does not (cache persistence is out of scope).
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (and if needed creates) a SQLite-backed store
// at the given path. Use ":memory:" for an ephemeral database.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// SQLite allows one writer; a single pooled connection also keeps
	// ":memory:" databases from silently forking per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Seed inserts the given records if the table is empty. Repeated runs
// against the same database file are no-ops.
func (s *SQLiteStore) Seed(ctx context.Context, images []*Image) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM images`).Scan(&n); err != nil {
		return fmt.Errorf("count images: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, img := range images {
		tags, _ := json.Marshal(img.Tags)
		relations, _ := json.Marshal(img.Relations)
		var captured any
		if img.CapturedAt != nil {
			captured = img.CapturedAt.Format(time.RFC3339)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO images (id, filename, path, uploaded_at, captured_at, location, tags, relations, quality, width, height, size, seq)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			img.ID, img.Filename, img.Path, img.UploadedAt.Format(time.RFC3339),
			captured, img.Location, string(tags), string(relations),
			string(img.Quality), img.Width, img.Height, img.Size, i,
		)
		if err != nil {
			return fmt.Errorf("seed image %s: %w", img.ID, err)
		}
	}
	return tx.Commit()
}

// List returns all records ordered by insertion sequence.
func (s *SQLiteStore) List(ctx context.Context) ([]*Image, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, path, uploaded_at, captured_at, location, tags, relations, quality, width, height, size
		FROM images ORDER BY seq, id`)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var out []*Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// Get returns the record with the given id, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Image, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, filename, path, uploaded_at, captured_at, location, tags, relations, quality, width, height, size
		FROM images WHERE id = ?`, id)
	img, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return img, err
}

// AddTags appends each tag not already on the record.
func (s *SQLiteStore) AddTags(ctx context.Context, id string, tags []string) error {
	img, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	changed := false
	for _, tag := range tags {
		if !img.HasTag(tag) {
			img.Tags = append(img.Tags, tag)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	raw, _ := json.Marshal(img.Tags)
	_, err = s.db.ExecContext(ctx, `UPDATE images SET tags = ? WHERE id = ?`, string(raw), id)
	if err != nil {
		return fmt.Errorf("update tags for %s: %w", id, err)
	}
	return nil
}

// Delete removes the given ids. Unknown ids are ignored.
func (s *SQLiteStore) Delete(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete image %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanImage(row scanner) (*Image, error) {
	var (
		img           Image
		uploaded      string
		captured      sql.NullString
		tags, related string
		quality       string
	)
	err := row.Scan(&img.ID, &img.Filename, &img.Path, &uploaded, &captured,
		&img.Location, &tags, &related, &quality, &img.Width, &img.Height, &img.Size)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, uploaded); err == nil {
		img.UploadedAt = t
	}
	if captured.Valid {
		if t, err := time.Parse(time.RFC3339, captured.String); err == nil {
			img.CapturedAt = &t
		}
	}
	if err := json.Unmarshal([]byte(tags), &img.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for %s: %w", img.ID, err)
	}
	if err := json.Unmarshal([]byte(related), &img.Relations); err != nil {
		return nil, fmt.Errorf("decode relations for %s: %w", img.ID, err)
	}
	img.Quality = ParseQuality(quality)
	return &img, nil
}
