package watch

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/assignwatch/assignwatch/internal/model"
)

var (
	ErrClassNotFound    = errors.New("class not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// Repository provides methods to interact with the watched_classes and
// assignment_snapshots tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new watch repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// AddClass registers a class to watch. Re-registering an existing class
// updates its title, description and student.
func (r *Repository) AddClass(ctx context.Context, c model.Class) error {
	query := `
		INSERT INTO watched_classes (
		    class_id, title, description, student_id
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (class_id) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    student_id = EXCLUDED.student_id;
    `

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Title, c.Description, c.StudentID)
	if err != nil {
		return fmt.Errorf("failed to add class: %w", err)
	}

	return nil
}

// ListClasses returns all watched classes ordered by registration time.
func (r *Repository) ListClasses(ctx context.Context) ([]model.Class, error) {
	query := `
		SELECT class_id, title, description, student_id, created_at
		FROM watched_classes
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.StudentID, &c.CreatedAt); err != nil {
			return nil, err
		}

		classes = append(classes, c)
	}

	return classes, nil
}

// RemoveClass stops watching a class and drops its cached snapshot.
func (r *Repository) RemoveClass(ctx context.Context, classID int) error {
	query := `
		DELETE FROM watched_classes
		WHERE class_id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, classID)
	if err != nil {
		return fmt.Errorf("failed to remove class: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrClassNotFound
	}

	return nil
}

// SaveSnapshot stores the latest fetched assignment list for a class.
func (r *Repository) SaveSnapshot(ctx context.Context, classID int, assignments []model.Assignment, fetchedAt time.Time) error {
	payload, err := json.Marshal(assignments)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for class %d: %w", classID, err)
	}

	query := `
		INSERT INTO assignment_snapshots (
		    class_id, payload, fetched_at
		) VALUES ($1, $2, $3)
		ON CONFLICT (class_id) DO UPDATE
		SET payload = EXCLUDED.payload,
		    fetched_at = EXCLUDED.fetched_at;
    `

	_, err = r.db.ExecContext(ctx, query, classID, payload, fetchedAt)
	if err != nil {
		return fmt.Errorf("failed to save snapshot for class %d: %w", classID, err)
	}

	return nil
}

// GetSnapshot retrieves the cached assignment list of one class.
func (r *Repository) GetSnapshot(ctx context.Context, classID int) (model.ClassAssignments, error) {
	query := `
		SELECT class_id, payload, fetched_at
		FROM assignment_snapshots
		WHERE class_id = $1;
    `

	var (
		snap    model.ClassAssignments
		payload []byte
	)

	err := r.db.QueryRowContext(ctx, query, classID).Scan(&snap.ClassID, &payload, &snap.FetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ClassAssignments{}, ErrSnapshotNotFound
		}

		return model.ClassAssignments{}, fmt.Errorf("failed to get snapshot for class %d: %w", classID, err)
	}

	if err := json.Unmarshal(payload, &snap.Assignments); err != nil {
		return model.ClassAssignments{}, fmt.Errorf("failed to unmarshal snapshot for class %d: %w", classID, err)
	}

	return snap, nil
}

// ListSnapshots retrieves the cached assignment lists of all watched classes.
func (r *Repository) ListSnapshots(ctx context.Context) ([]model.ClassAssignments, error) {
	query := `
		SELECT class_id, payload, fetched_at
		FROM assignment_snapshots
		ORDER BY class_id;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []model.ClassAssignments
	for rows.Next() {
		var (
			snap    model.ClassAssignments
			payload []byte
		)
		if err := rows.Scan(&snap.ClassID, &payload, &snap.FetchedAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(payload, &snap.Assignments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot for class %d: %w", snap.ClassID, err)
		}

		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}
