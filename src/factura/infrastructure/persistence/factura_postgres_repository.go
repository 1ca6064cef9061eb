package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"almacen/src/factura/domain/entity"
	"almacen/src/factura/domain/port"

	"github.com/google/uuid"
)

// FacturaPostgresRepository implementa FacturaRepository usando PostgreSQL
type FacturaPostgresRepository struct {
	db *sql.DB
}

// NewFacturaPostgresRepository crea una nueva instancia del repositorio
func NewFacturaPostgresRepository(db *sql.DB) port.FacturaRepository {
	return &FacturaPostgresRepository{
		db: db,
	}
}

// CreateFromSolicitud emite la factura de una solicitud copiando total y
// metodo_pago del header dentro de una transacción. Una solicitud solo
// puede facturarse una vez (numero_factura y solicitud_id son únicos).
func (r *FacturaPostgresRepository) CreateFromSolicitud(ctx context.Context, solicitudID int64) (*entity.Factura, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Leer la solicitud origen
	querySolicitud := `
		SELECT cliente_id, total, metodo_pago
		FROM solicitudes
		WHERE id = $1
	`

	factura := &entity.Factura{
		SolicitudID:   solicitudID,
		Fecha:         time.Now(),
		NumeroFactura: uuid.New().String(),
		EstadoFactura: entity.EstadoFacturaPendiente,
	}
	err = tx.QueryRowContext(ctx, querySolicitud, solicitudID).Scan(
		&factura.UserID,
		&factura.Total,
		&factura.MetodoPago,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrSolicitudNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("error reading solicitud %d: %w", solicitudID, err)
	}

	// 2. Verificar que la solicitud no tenga factura previa
	var existente int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM facturas WHERE solicitud_id = $1`, solicitudID,
	).Scan(&existente)
	if err != nil {
		return nil, fmt.Errorf("error checking existing factura: %w", err)
	}
	if existente > 0 {
		return nil, entity.ErrSolicitudYaFacturada
	}

	// 3. Insertar la factura
	queryFactura := `
		INSERT INTO facturas (
			solicitud_id, user_id, fecha, total, metodo_pago, numero_factura, estado_factura
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, queryFactura,
		factura.SolicitudID,
		factura.UserID,
		factura.Fecha,
		factura.Total,
		factura.MetodoPago,
		factura.NumeroFactura,
		factura.EstadoFactura,
	).Scan(&factura.ID)
	if err != nil {
		return nil, fmt.Errorf("error saving factura: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return factura, nil
}

// FindByID busca una factura por id
func (r *FacturaPostgresRepository) FindByID(ctx context.Context, facturaID int64) (*entity.Factura, error) {
	query := `
		SELECT id, solicitud_id, user_id, fecha, total, metodo_pago, numero_factura, estado_factura
		FROM facturas
		WHERE id = $1
	`

	factura := &entity.Factura{}
	err := r.db.QueryRowContext(ctx, query, facturaID).Scan(
		&factura.ID,
		&factura.SolicitudID,
		&factura.UserID,
		&factura.Fecha,
		&factura.Total,
		&factura.MetodoPago,
		&factura.NumeroFactura,
		&factura.EstadoFactura,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrFacturaNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("error finding factura: %w", err)
	}

	return factura, nil
}

// List retorna todas las facturas, más recientes primero
func (r *FacturaPostgresRepository) List(ctx context.Context) ([]*entity.Factura, error) {
	query := `
		SELECT id, solicitud_id, user_id, fecha, total, metodo_pago, numero_factura, estado_factura
		FROM facturas
		ORDER BY fecha DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing facturas: %w", err)
	}
	defer rows.Close()

	var facturas []*entity.Factura
	for rows.Next() {
		factura := &entity.Factura{}
		err := rows.Scan(
			&factura.ID,
			&factura.SolicitudID,
			&factura.UserID,
			&factura.Fecha,
			&factura.Total,
			&factura.MetodoPago,
			&factura.NumeroFactura,
			&factura.EstadoFactura,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning factura: %w", err)
		}
		facturas = append(facturas, factura)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facturas: %w", err)
	}

	return facturas, nil
}

// UpdateEstado sobreescribe el estado de una factura
func (r *FacturaPostgresRepository) UpdateEstado(ctx context.Context, facturaID int64, estado entity.EstadoFactura) error {
	query := `
		UPDATE facturas
		SET estado_factura = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, estado, facturaID)
	if err != nil {
		return fmt.Errorf("error updating estado_factura: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrFacturaNoEncontrada
	}

	return nil
}
