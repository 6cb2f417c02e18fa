package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventspace/internal/domain"
)

type coworkingSpaceRepository struct {
	DB *sql.DB
}

func NewCoworkingSpaceRepository(db *sql.DB) domain.CoworkingSpaceRepository {
	return &coworkingSpaceRepository{
		DB: db,
	}
}

func (r *coworkingSpaceRepository) Create(ctx context.Context, space *domain.CoworkingSpace) error {
	query := `
		INSERT INTO coworking_spaces (id, name, description, location, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		space.ID, space.Name, space.Description, space.Location,
		nullString(space.ImagePath), space.CreatedAt, space.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateSpace
		}
		return err
	}
	return nil
}

const spaceColumns = `id, name, description, location, image_path, created_at, updated_at`

func scanSpace(row interface{ Scan(...any) error }) (*domain.CoworkingSpace, error) {
	space := &domain.CoworkingSpace{}
	var imageNull sql.NullString
	err := row.Scan(
		&space.ID, &space.Name, &space.Description, &space.Location,
		&imageNull, &space.CreatedAt, &space.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageNull.Valid {
		space.ImagePath = &imageNull.String
	}
	return space, nil
}

func (r *coworkingSpaceRepository) GetByID(ctx context.Context, id string) (*domain.CoworkingSpace, error) {
	query := `
		SELECT ` + spaceColumns + `
		FROM coworking_spaces
		WHERE id = $1
	`
	space, err := scanSpace(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return space, nil
}

func (r *coworkingSpaceRepository) List(ctx context.Context) ([]*domain.CoworkingSpace, error) {
	query := `
		SELECT ` + spaceColumns + `
		FROM coworking_spaces
		ORDER BY name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	spaces := make([]*domain.CoworkingSpace, 0)
	for rows.Next() {
		space, err := scanSpace(rows)
		if err != nil {
			return nil, err
		}
		spaces = append(spaces, space)
	}
	return spaces, rows.Err()
}

func (r *coworkingSpaceRepository) Update(ctx context.Context, id string, upd domain.SpaceUpdate) (*domain.CoworkingSpace, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if upd.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *upd.Name)
		n++
	}
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", n))
		args = append(args, *upd.Location)
		n++
	}
	if upd.ImagePath != nil {
		setClauses = append(setClauses, fmt.Sprintf("image_path = $%d", n))
		args = append(args, *upd.ImagePath)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE coworking_spaces SET %s
		WHERE id = $%d
		RETURNING `+spaceColumns+`
	`, strings.Join(setClauses, ", "), n)
	space, err := scanSpace(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, domain.ErrDuplicateSpace
		}
		return nil, err
	}
	return space, nil
}

func (r *coworkingSpaceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM coworking_spaces WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
