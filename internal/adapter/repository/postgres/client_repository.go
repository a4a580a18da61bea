package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/core-banking/internal/domain"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	const query = `
INSERT INTO clients (
	manager_id,
	status,
	tax_code,
	first_name,
	last_name,
	email,
	transaction_pin_hash
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`

	managerID := sql.NullString{String: client.ManagerID, Valid: client.ManagerID != ""}

	err := r.db.QueryRowContext(
		ctx,
		query,
		managerID,
		client.Status,
		client.TaxCode,
		client.FirstName,
		client.LastName,
		client.Email,
		client.TransactionPinHash,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return domain.Client{}, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (domain.Client, error) {
	const query = `
SELECT id, COALESCE(manager_id::text, ''), status, tax_code, first_name, last_name, email, transaction_pin_hash, is_deleted, created_at, updated_at
FROM clients
WHERE id = $1
  AND is_deleted = FALSE`

	var client domain.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID,
		&client.ManagerID,
		&client.Status,
		&client.TaxCode,
		&client.FirstName,
		&client.LastName,
		&client.Email,
		&client.TransactionPinHash,
		&client.IsDeleted,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Client{}, domain.ErrRecordNotFound
	}
	if err != nil {
		return domain.Client{}, fmt.Errorf("get client by id: %w", err)
	}

	return client, nil
}

func (r *ClientRepository) IsBlocked(ctx context.Context, id string) (bool, error) {
	const query = `SELECT status FROM clients WHERE id = $1 AND is_deleted = FALSE`

	var status domain.ClientStatus
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.ErrRecordNotFound
	}
	if err != nil {
		return false, fmt.Errorf("get client status: %w", err)
	}

	return status == domain.ClientStatusBlocked, nil
}

func (r *ClientRepository) FindIDsWithCurrentAndSavingsAccounts(ctx context.Context) ([]string, error) {
	const query = `
SELECT c.id
FROM clients c
JOIN accounts cur ON cur.client_id = c.id AND cur.type = $1 AND cur.is_deleted = FALSE
JOIN accounts sav ON sav.client_id = c.id AND sav.type = $2 AND sav.is_deleted = FALSE
WHERE c.is_deleted = FALSE
GROUP BY c.id
ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query, domain.AccountTypeCurrent, domain.AccountTypeSavings)
	if err != nil {
		return nil, fmt.Errorf("find clients with current and savings accounts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan client id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find clients with current and savings accounts: %w", err)
	}

	return ids, nil
}
