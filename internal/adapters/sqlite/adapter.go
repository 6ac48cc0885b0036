// Package sqlite stores materialized playlists so past runs can be
// inspected after the fact.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // driver registration

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
	"github.com/ewilliams-labs/vibeflow/internal/core/ports"
)

// Adapter implements the history repository port over SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.HistoryRepository = (*Adapter)(nil)

// NewAdapter opens the database and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close releases the database connection.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Save records a materialized playlist and its tracks. Links are written
// with explicit positions so GetByID can restore the original order.
func (a *Adapter) Save(ctx context.Context, result domain.PlaylistResult) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPlaylist := `
		INSERT INTO playlists (id, name, url, track_count) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			url=excluded.url,
			track_count=excluded.track_count;
	`
	if _, err := tx.ExecContext(ctx, queryPlaylist,
		result.PlaylistID, result.PlaylistName, result.PlaylistURL, result.TrackCount); err != nil {
		return fmt.Errorf("failed to save playlist metadata: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM playlist_tracks WHERE playlist_id = ?", result.PlaylistID); err != nil {
		return fmt.Errorf("failed to clear old tracks: %w", err)
	}

	stmtTrack, err := tx.PrepareContext(ctx, `
		INSERT INTO tracks (id, name, artists, uri, preview_url, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			artists=excluded.artists,
			uri=excluded.uri,
			preview_url=excluded.preview_url,
			duration_ms=excluded.duration_ms;
	`)
	if err != nil {
		return err
	}
	defer stmtTrack.Close()

	stmtLink, err := tx.PrepareContext(ctx, `
		INSERT INTO playlist_tracks (playlist_id, track_id, position)
		VALUES (?, ?, ?)
		ON CONFLICT(playlist_id, track_id) DO UPDATE SET position=excluded.position
	`)
	if err != nil {
		return err
	}
	defer stmtLink.Close()

	for i, t := range result.Tracks {
		artists, err := json.Marshal(t.Artists)
		if err != nil {
			return fmt.Errorf("failed to encode artists for track %s: %w", t.ID, err)
		}
		if _, err := stmtTrack.ExecContext(ctx, t.ID, t.Name, string(artists), t.URI, t.PreviewURL, t.DurationMs); err != nil {
			return fmt.Errorf("failed to save track %s: %w", t.ID, err)
		}
		if _, err := stmtLink.ExecContext(ctx, result.PlaylistID, t.ID, i); err != nil {
			return fmt.Errorf("failed to link track %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}
	return nil
}

// GetByID loads a stored playlist with its tracks in original order.
func (a *Adapter) GetByID(ctx context.Context, id string) (domain.PlaylistResult, error) {
	row := a.db.QueryRowContext(ctx,
		"SELECT id, name, url, track_count FROM playlists WHERE id = ?", id)

	var result domain.PlaylistResult
	if err := row.Scan(&result.PlaylistID, &result.PlaylistName, &result.PlaylistURL, &result.TrackCount); err != nil {
		if err == sql.ErrNoRows {
			return domain.PlaylistResult{}, domain.ErrNotFound
		}
		return domain.PlaylistResult{}, fmt.Errorf("failed to load playlist: %w", err)
	}

	tracks, err := a.loadTracks(ctx, result.PlaylistID)
	if err != nil {
		return domain.PlaylistResult{}, err
	}
	result.Tracks = tracks
	return result, nil
}

// Recent returns up to n stored playlists, newest first.
func (a *Adapter) Recent(ctx context.Context, n int) ([]domain.PlaylistResult, error) {
	rows, err := a.db.QueryContext(ctx,
		"SELECT id FROM playlists ORDER BY created_at DESC, id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan playlist id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playlists: %w", err)
	}

	results := make([]domain.PlaylistResult, 0, len(ids))
	for _, id := range ids {
		result, err := a.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (a *Adapter) loadTracks(ctx context.Context, playlistID string) ([]domain.Track, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.artists, IFNULL(t.uri, ''), IFNULL(t.preview_url, ''), IFNULL(t.duration_ms, 0)
		FROM tracks t
		JOIN playlist_tracks pt ON pt.track_id = t.id
		WHERE pt.playlist_id = ?
		ORDER BY pt.position ASC
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist tracks: %w", err)
	}
	defer rows.Close()

	tracks := []domain.Track{}
	for rows.Next() {
		var track domain.Track
		var artists string
		if err := rows.Scan(&track.ID, &track.Name, &artists, &track.URI, &track.PreviewURL, &track.DurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan playlist track: %w", err)
		}
		if artists != "" {
			if err := json.Unmarshal([]byte(artists), &track.Artists); err != nil {
				return nil, fmt.Errorf("failed to decode artists for track %s: %w", track.ID, err)
			}
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playlist tracks: %w", err)
	}
	return tracks, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS tracks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		artists TEXT,
		uri TEXT,
		preview_url TEXT,
		duration_ms INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS playlists (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		url TEXT,
		track_count INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS playlist_tracks (
		playlist_id TEXT,
		track_id TEXT,
		position INTEGER NOT NULL DEFAULT 0,
		added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (playlist_id, track_id),
		FOREIGN KEY(playlist_id) REFERENCES playlists(id) ON DELETE CASCADE,
		FOREIGN KEY(track_id) REFERENCES tracks(id) ON DELETE CASCADE
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}
	return nil
}
