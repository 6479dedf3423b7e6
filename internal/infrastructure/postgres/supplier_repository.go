package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/dstore/dsms-api/internal/domain"
	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, address, email, contact, status, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.Address, supplier.Email, supplier.Contact,
		supplier.Status, supplier.CategoryID, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

// GetByEmail obtiene un proveedor por email (único).
func (r *SupplierRepo) GetByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *SupplierRepo) getBy(ctx context.Context, where string, arg any) (*entity.Supplier, error) {
	query := `
		SELECT id, name, address, email, contact, status, COALESCE(category_id::text, ''), created_at, updated_at
		FROM suppliers ` + where
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.Name, &s.Address, &s.Email, &s.Contact, &s.Status,
		&s.CategoryID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, address = $3, email = $4, contact = $5, status = $6, category_id = NULLIF($7, ''), updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.Address, supplier.Email, supplier.Contact,
		supplier.Status, supplier.CategoryID, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, address, email, contact, status, COALESCE(category_id::text, ''), created_at, updated_at
		FROM suppliers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Email, &s.Contact,
			&s.Status, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
