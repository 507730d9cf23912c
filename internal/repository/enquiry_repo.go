package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/models"
)

type EnquiryRepo struct {
	pool *pgxpool.Pool
}

func NewEnquiryRepo(pool *pgxpool.Pool) *EnquiryRepo {
	return &EnquiryRepo{pool: pool}
}

// EnsureSchema creates the enquiries table on first start.
func (r *EnquiryRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS contact_enquiries (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *EnquiryRepo) Create(ctx context.Context, enquiry *models.Enquiry) error {
	query := `
		INSERT INTO contact_enquiries (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	enquiry.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		enquiry.ID, enquiry.Name, enquiry.Email, enquiry.Message,
	).Scan(&enquiry.CreatedAt)
}

// List returns the most recent enquiries, newest first.
func (r *EnquiryRepo) List(ctx context.Context, limit int) ([]models.Enquiry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `SELECT id, name, email, message, created_at
		FROM contact_enquiries ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enquiries []models.Enquiry
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}
