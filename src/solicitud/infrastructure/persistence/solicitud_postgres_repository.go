package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"almacen/src/solicitud/domain/entity"
	"almacen/src/solicitud/domain/port"

	"github.com/shopspring/decimal"
)

// SolicitudPostgresRepository implementa SolicitudRepository usando PostgreSQL
type SolicitudPostgresRepository struct {
	db *sql.DB
}

// NewSolicitudPostgresRepository crea una nueva instancia del repositorio
func NewSolicitudPostgresRepository(db *sql.DB) port.SolicitudRepository {
	return &SolicitudPostgresRepository{
		db: db,
	}
}

// Create persiste una solicitud con sus detalles y descuenta stock (DDD Aggregate)
// Todo ocurre dentro de UNA transacción: si falla cualquier línea se revierte
// el header, los detalles insertados y todos los descuentos de stock previos.
// El procesamiento de líneas es fail-fast en el orden recibido.
func (r *SolicitudPostgresRepository) Create(ctx context.Context, solicitud *entity.Solicitud) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar solicitud inicial con estado "pendiente" y total 0
	solicitudID, err := r.insertSolicitud(ctx, tx, solicitud)
	if err != nil {
		return err
	}
	solicitud.ID = solicitudID

	// 2. Por cada línea: snapshot de precio, validar stock, insertar detalle
	//    y descontar stock. El SELECT FOR UPDATE bloquea la fila del item para
	//    que dos solicitudes concurrentes no pasen ambas la validación.
	total := decimal.Zero
	for i := range solicitud.Detalles {
		detalle := &solicitud.Detalles[i]
		detalle.SolicitudID = solicitudID

		precio, stock, err := r.getPrecioYStock(ctx, tx, detalle.ItemID)
		if err != nil {
			return err
		}

		if stock < detalle.Cantidad {
			return &entity.StockInsuficienteError{
				ItemID:     detalle.ItemID,
				Solicitado: detalle.Cantidad,
				Disponible: stock,
			}
		}

		detalle.PrecioUnitario = precio
		total = total.Add(detalle.Subtotal())

		if err := r.insertDetalle(ctx, tx, detalle); err != nil {
			return err
		}

		if err := r.decrementarStock(ctx, tx, detalle.ItemID, detalle.Cantidad); err != nil {
			return err
		}
	}

	// 3. Actualizar la solicitud con el total acumulado
	if err := r.updateTotal(ctx, tx, solicitudID, total); err != nil {
		return err
	}
	solicitud.Total = total

	// Commit transacción
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// insertSolicitud inserta el header de la solicitud y retorna su id
func (r *SolicitudPostgresRepository) insertSolicitud(ctx context.Context, tx *sql.Tx, solicitud *entity.Solicitud) (int64, error) {
	query := `
		INSERT INTO solicitudes (
			cliente_id, comentario, metodo_pago, estado, total, fecha_creacion
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING id
	`

	var comentario sql.NullString
	if solicitud.Comentario != "" {
		comentario = sql.NullString{String: solicitud.Comentario, Valid: true}
	}

	var solicitudID int64
	err := tx.QueryRowContext(ctx, query,
		solicitud.ClienteID,
		comentario,
		solicitud.MetodoPago,
		solicitud.Estado,
		solicitud.Total,
		solicitud.FechaCreacion,
	).Scan(&solicitudID)

	if err != nil {
		return 0, fmt.Errorf("error saving solicitud: %w", err)
	}

	return solicitudID, nil
}

// getPrecioYStock lee precio y stock actuales del item bloqueando la fila
func (r *SolicitudPostgresRepository) getPrecioYStock(ctx context.Context, tx *sql.Tx, itemID int64) (decimal.Decimal, int, error) {
	query := `
		SELECT precio, stock
		FROM items
		WHERE id = $1
		FOR UPDATE
	`

	var precio decimal.Decimal
	var stock int
	err := tx.QueryRowContext(ctx, query, itemID).Scan(&precio, &stock)

	if err == sql.ErrNoRows {
		return decimal.Zero, 0, &entity.ItemNoExisteError{ItemID: itemID}
	}
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("error reading item %d: %w", itemID, err)
	}

	return precio, stock, nil
}

// insertDetalle inserta una línea con su snapshot de precio_unitario
func (r *SolicitudPostgresRepository) insertDetalle(ctx context.Context, tx *sql.Tx, detalle *entity.Detalle) error {
	query := `
		INSERT INTO detalle_solicitud (
			solicitud_id, item_id, cantidad, precio_unitario
		) VALUES (
			$1, $2, $3, $4
		)
		RETURNING id
	`

	err := tx.QueryRowContext(ctx, query,
		detalle.SolicitudID,
		detalle.ItemID,
		detalle.Cantidad,
		detalle.PrecioUnitario,
	).Scan(&detalle.ID)

	if err != nil {
		return fmt.Errorf("error saving detalle for item %d: %w", detalle.ItemID, err)
	}

	return nil
}

// decrementarStock descuenta stock con guarda condicional: cero filas
// afectadas significa stock insuficiente aunque la fila esté bloqueada
func (r *SolicitudPostgresRepository) decrementarStock(ctx context.Context, tx *sql.Tx, itemID int64, cantidad int) error {
	query := `
		UPDATE items
		SET stock = stock - $1
		WHERE id = $2 AND stock >= $1
	`

	result, err := tx.ExecContext(ctx, query, cantidad, itemID)
	if err != nil {
		return fmt.Errorf("error updating stock for item %d: %w", itemID, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return &entity.StockInsuficienteError{
			ItemID:     itemID,
			Solicitado: cantidad,
		}
	}

	return nil
}

// updateTotal actualiza el total acumulado del header
func (r *SolicitudPostgresRepository) updateTotal(ctx context.Context, tx *sql.Tx, solicitudID int64, total decimal.Decimal) error {
	query := `
		UPDATE solicitudes
		SET total = $1
		WHERE id = $2
	`

	if _, err := tx.ExecContext(ctx, query, total, solicitudID); err != nil {
		return fmt.Errorf("error updating total for solicitud %d: %w", solicitudID, err)
	}

	return nil
}

// List retorna todas las solicitudes con el nombre del cliente y sus detalles
func (r *SolicitudPostgresRepository) List(ctx context.Context) ([]*entity.Solicitud, error) {
	// 1. Obtener solicitudes con JOIN a users para el nombre del cliente
	querySolicitudes := `
		SELECT s.id, s.cliente_id, u.nombre, s.comentario, s.metodo_pago,
		       s.estado, s.total, s.fecha_creacion
		FROM solicitudes s
		JOIN users u ON s.cliente_id = u.id
		ORDER BY s.fecha_creacion DESC
	`

	rows, err := r.db.QueryContext(ctx, querySolicitudes)
	if err != nil {
		return nil, fmt.Errorf("error querying solicitudes: %w", err)
	}
	defer rows.Close()

	var solicitudes []*entity.Solicitud
	for rows.Next() {
		solicitud := &entity.Solicitud{}
		var comentario sql.NullString
		err := rows.Scan(
			&solicitud.ID,
			&solicitud.ClienteID,
			&solicitud.ClienteNombre,
			&comentario,
			&solicitud.MetodoPago,
			&solicitud.Estado,
			&solicitud.Total,
			&solicitud.FechaCreacion,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning solicitud: %w", err)
		}
		solicitud.Comentario = comentario.String
		solicitudes = append(solicitudes, solicitud)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solicitudes: %w", err)
	}

	// 2. Cargar detalles de cada solicitud con el nombre del item
	queryDetalles := `
		SELECT ds.id, ds.solicitud_id, ds.item_id, i.nombre, ds.cantidad, ds.precio_unitario
		FROM detalle_solicitud ds
		JOIN items i ON ds.item_id = i.id
		WHERE ds.solicitud_id = $1
		ORDER BY ds.id
	`

	for _, solicitud := range solicitudes {
		detalleRows, err := r.db.QueryContext(ctx, queryDetalles, solicitud.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading detalles for solicitud %d: %w", solicitud.ID, err)
		}

		var detalles []entity.Detalle
		for detalleRows.Next() {
			var detalle entity.Detalle
			err := detalleRows.Scan(
				&detalle.ID,
				&detalle.SolicitudID,
				&detalle.ItemID,
				&detalle.ItemNombre,
				&detalle.Cantidad,
				&detalle.PrecioUnitario,
			)
			if err != nil {
				detalleRows.Close()
				return nil, fmt.Errorf("error scanning detalle: %w", err)
			}
			detalles = append(detalles, detalle)
		}
		detalleRows.Close()

		if err = detalleRows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating detalles: %w", err)
		}

		solicitud.Detalles = detalles
	}

	return solicitudes, nil
}

// UpdateEstado sobreescribe el estado de una solicitud.
// No hay grafo de transiciones: cualquier estado puede seguir a cualquier otro.
func (r *SolicitudPostgresRepository) UpdateEstado(ctx context.Context, solicitudID int64, estado entity.Estado) error {
	query := `
		UPDATE solicitudes
		SET estado = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, estado, solicitudID)
	if err != nil {
		return fmt.Errorf("error updating estado: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrSolicitudNoEncontrada
	}

	return nil
}
