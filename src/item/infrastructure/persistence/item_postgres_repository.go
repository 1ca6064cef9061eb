package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"almacen/src/item/domain/entity"
	"almacen/src/item/domain/port"
)

// ItemPostgresRepository implementa ItemRepository usando PostgreSQL
type ItemPostgresRepository struct {
	db *sql.DB
}

// NewItemPostgresRepository crea una nueva instancia del repositorio
func NewItemPostgresRepository(db *sql.DB) port.ItemRepository {
	return &ItemPostgresRepository{
		db: db,
	}
}

// Create persiste un nuevo item y asigna su id
func (r *ItemPostgresRepository) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (nombre, precio, stock, descripcion, imagen)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.Nombre,
		item.Precio,
		item.Stock,
		nullable(item.Descripcion),
		nullable(item.Imagen),
	).Scan(&item.ID)

	if err != nil {
		return fmt.Errorf("error saving item: %w", err)
	}

	return nil
}

// FindByID busca un item por su id
func (r *ItemPostgresRepository) FindByID(ctx context.Context, itemID int64) (*entity.Item, error) {
	query := `
		SELECT id, nombre, precio, stock, descripcion, imagen
		FROM items
		WHERE id = $1
	`

	item := &entity.Item{}
	var descripcion, imagen sql.NullString
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(
		&item.ID,
		&item.Nombre,
		&item.Precio,
		&item.Stock,
		&descripcion,
		&imagen,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrItemNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error finding item: %w", err)
	}

	item.Descripcion = descripcion.String
	item.Imagen = imagen.String
	return item, nil
}

// List retorna todos los items del catálogo
func (r *ItemPostgresRepository) List(ctx context.Context) ([]*entity.Item, error) {
	query := `
		SELECT id, nombre, precio, stock, descripcion, imagen
		FROM items
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		item := &entity.Item{}
		var descripcion, imagen sql.NullString
		err := rows.Scan(
			&item.ID,
			&item.Nombre,
			&item.Precio,
			&item.Stock,
			&descripcion,
			&imagen,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning item: %w", err)
		}
		item.Descripcion = descripcion.String
		item.Imagen = imagen.String
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// Update sobreescribe los campos de un item existente
func (r *ItemPostgresRepository) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET nombre = $1, precio = $2, stock = $3, descripcion = $4, imagen = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Nombre,
		item.Precio,
		item.Stock,
		nullable(item.Descripcion),
		nullable(item.Imagen),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrItemNoEncontrado
	}

	return nil
}

// Delete elimina un item del catálogo
func (r *ItemPostgresRepository) Delete(ctx context.Context, itemID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrItemNoEncontrado
	}

	return nil
}

// Decrementar descuenta una unidad de stock; cero filas afectadas
// significa que el producto está agotado
func (r *ItemPostgresRepository) Decrementar(ctx context.Context, itemID int64) error {
	if _, err := r.FindByID(ctx, itemID); err != nil {
		return err
	}

	query := `
		UPDATE items
		SET stock = stock - 1
		WHERE id = $1 AND stock > 0
	`

	result, err := r.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("error decrementing stock: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrItemAgotado
	}

	return nil
}

// Incrementar suma una unidad de stock
func (r *ItemPostgresRepository) Incrementar(ctx context.Context, itemID int64) error {
	query := `
		UPDATE items
		SET stock = stock + 1
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("error incrementing stock: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrItemNoEncontrado
	}

	return nil
}

// nullable convierte "" en NULL para columnas opcionales
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
