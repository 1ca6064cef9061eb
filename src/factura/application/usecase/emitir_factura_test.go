package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"almacen/src/factura/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// solicitudFacturable simula los datos que el repo real lee de la solicitud
type solicitudFacturable struct {
	clienteID  int64
	total      decimal.Decimal
	metodoPago string
}

// fakeFacturaRepo replica la semántica del repositorio real: una factura
// por solicitud, total y metodo_pago copiados al emitir.
type fakeFacturaRepo struct {
	solicitudes map[int64]solicitudFacturable
	facturas    map[int64]*entity.Factura
	nextID      int64
}

func newFakeFacturaRepo(solicitudes map[int64]solicitudFacturable) *fakeFacturaRepo {
	return &fakeFacturaRepo{
		solicitudes: solicitudes,
		facturas:    make(map[int64]*entity.Factura),
		nextID:      1,
	}
}

func (r *fakeFacturaRepo) CreateFromSolicitud(ctx context.Context, solicitudID int64) (*entity.Factura, error) {
	s, ok := r.solicitudes[solicitudID]
	if !ok {
		return nil, entity.ErrSolicitudNoEncontrada
	}
	for _, f := range r.facturas {
		if f.SolicitudID == solicitudID {
			return nil, entity.ErrSolicitudYaFacturada
		}
	}

	factura := &entity.Factura{
		ID:            r.nextID,
		SolicitudID:   solicitudID,
		UserID:        s.clienteID,
		Fecha:         time.Now(),
		Total:         s.total,
		MetodoPago:    s.metodoPago,
		NumeroFactura: uuid.New().String(),
		EstadoFactura: entity.EstadoFacturaPendiente,
	}
	r.nextID++
	r.facturas[factura.ID] = factura
	return factura, nil
}

func (r *fakeFacturaRepo) FindByID(ctx context.Context, facturaID int64) (*entity.Factura, error) {
	f, ok := r.facturas[facturaID]
	if !ok {
		return nil, entity.ErrFacturaNoEncontrada
	}
	return f, nil
}

func (r *fakeFacturaRepo) List(ctx context.Context) ([]*entity.Factura, error) {
	out := make([]*entity.Factura, 0, len(r.facturas))
	for _, f := range r.facturas {
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFacturaRepo) UpdateEstado(ctx context.Context, facturaID int64, estado entity.EstadoFactura) error {
	f, ok := r.facturas[facturaID]
	if !ok {
		return entity.ErrFacturaNoEncontrada
	}
	f.EstadoFactura = estado
	return nil
}

func TestEmitirFactura_Exitosa(t *testing.T) {
	repo := newFakeFacturaRepo(map[int64]solicitudFacturable{
		5: {clienteID: 2, total: decimal.NewFromFloat(30.00), metodoPago: "tarjeta"},
	})
	uc := NewEmitirFacturaUseCase(repo)

	factura, err := uc.Execute(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if factura.SolicitudID != 5 || factura.UserID != 2 {
		t.Errorf("unexpected factura: %+v", factura)
	}
	if !factura.Total.Equal(decimal.NewFromFloat(30.00)) {
		t.Errorf("expected total copiado 30.00, got %s", factura.Total)
	}
	if factura.MetodoPago != "tarjeta" {
		t.Errorf("expected metodo_pago copiado, got %q", factura.MetodoPago)
	}
	if factura.EstadoFactura != entity.EstadoFacturaPendiente {
		t.Errorf("expected estado pendiente, got %s", factura.EstadoFactura)
	}
	if factura.NumeroFactura == "" {
		t.Error("expected numero_factura assigned")
	}
}

func TestEmitirFactura_SolicitudNoEncontrada(t *testing.T) {
	repo := newFakeFacturaRepo(nil)
	uc := NewEmitirFacturaUseCase(repo)

	_, err := uc.Execute(context.Background(), 99)
	if !errors.Is(err, entity.ErrSolicitudNoEncontrada) {
		t.Fatalf("expected ErrSolicitudNoEncontrada, got %v", err)
	}
}

func TestEmitirFactura_SolicitudYaFacturada(t *testing.T) {
	repo := newFakeFacturaRepo(map[int64]solicitudFacturable{
		5: {clienteID: 2, total: decimal.NewFromFloat(30.00), metodoPago: "efectivo"},
	})
	uc := NewEmitirFacturaUseCase(repo)

	if _, err := uc.Execute(context.Background(), 5); err != nil {
		t.Fatalf("setup: %v", err)
	}
	_, err := uc.Execute(context.Background(), 5)
	if !errors.Is(err, entity.ErrSolicitudYaFacturada) {
		t.Fatalf("expected ErrSolicitudYaFacturada, got %v", err)
	}
}

func TestActualizarEstadoFactura(t *testing.T) {
	repo := newFakeFacturaRepo(map[int64]solicitudFacturable{
		1: {clienteID: 1, total: decimal.NewFromFloat(10.00), metodoPago: "efectivo"},
	})
	emitida, err := NewEmitirFacturaUseCase(repo).Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	uc := NewActualizarEstadoFacturaUseCase(repo)

	t.Run("estado valido", func(t *testing.T) {
		if err := uc.Execute(context.Background(), emitida.ID, "pagada"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.facturas[emitida.ID].EstadoFactura != entity.EstadoFacturaPagada {
			t.Errorf("expected estado pagada, got %s", repo.facturas[emitida.ID].EstadoFactura)
		}
	})

	t.Run("estado invalido", func(t *testing.T) {
		err := uc.Execute(context.Background(), emitida.ID, "vencida")
		if !errors.Is(err, entity.ErrEstadoFacturaInvalido) {
			t.Fatalf("expected ErrEstadoFacturaInvalido, got %v", err)
		}
	})

	t.Run("factura inexistente", func(t *testing.T) {
		err := uc.Execute(context.Background(), 999, "pagada")
		if !errors.Is(err, entity.ErrFacturaNoEncontrada) {
			t.Fatalf("expected ErrFacturaNoEncontrada, got %v", err)
		}
	})
}
