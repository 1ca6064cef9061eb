package usecase

import (
	"context"
	"errors"
	"testing"

	"almacen/src/solicitud/application/request"
	"almacen/src/solicitud/domain/entity"

	"github.com/shopspring/decimal"
)

// fakeItem es el estado de inventario del repo fake
type fakeItem struct {
	precio decimal.Decimal
	stock  int
}

// fakeSolicitudRepo replica la semántica atómica del repositorio real:
// procesa líneas en orden, fail-fast, y ante cualquier fallo no deja
// ninguna mutación visible (las existencias solo se aplican al final).
type fakeSolicitudRepo struct {
	items       map[int64]fakeItem
	nextID      int64
	createCalls int
	updateCalls int
	solicitudes map[int64]*entity.Solicitud
}

func newFakeSolicitudRepo(items map[int64]fakeItem) *fakeSolicitudRepo {
	return &fakeSolicitudRepo{
		items:       items,
		nextID:      1,
		solicitudes: make(map[int64]*entity.Solicitud),
	}
}

func (r *fakeSolicitudRepo) Create(ctx context.Context, solicitud *entity.Solicitud) error {
	r.createCalls++

	// staging: nada se aplica hasta "commit"
	staged := make(map[int64]int)
	total := decimal.Zero

	for i := range solicitud.Detalles {
		detalle := &solicitud.Detalles[i]
		item, ok := r.items[detalle.ItemID]
		if !ok {
			return &entity.ItemNoExisteError{ItemID: detalle.ItemID}
		}
		disponible := item.stock - staged[detalle.ItemID]
		if disponible < detalle.Cantidad {
			return &entity.StockInsuficienteError{
				ItemID:     detalle.ItemID,
				Solicitado: detalle.Cantidad,
				Disponible: disponible,
			}
		}
		staged[detalle.ItemID] += detalle.Cantidad
		detalle.PrecioUnitario = item.precio
		total = total.Add(detalle.Subtotal())
	}

	// commit
	for itemID, cantidad := range staged {
		item := r.items[itemID]
		item.stock -= cantidad
		r.items[itemID] = item
	}

	solicitud.ID = r.nextID
	r.nextID++
	solicitud.Total = total
	r.solicitudes[solicitud.ID] = solicitud
	return nil
}

func (r *fakeSolicitudRepo) List(ctx context.Context) ([]*entity.Solicitud, error) {
	return nil, nil
}

func (r *fakeSolicitudRepo) UpdateEstado(ctx context.Context, solicitudID int64, estado entity.Estado) error {
	r.updateCalls++
	s, ok := r.solicitudes[solicitudID]
	if !ok {
		return entity.ErrSolicitudNoEncontrada
	}
	s.Estado = estado
	return nil
}

func TestCrearSolicitud_Exitosa(t *testing.T) {
	repo := newFakeSolicitudRepo(map[int64]fakeItem{
		1: {precio: decimal.NewFromFloat(10.00), stock: 5},
	})
	uc := NewCrearSolicitudUseCase(repo)

	resp, err := uc.Execute(context.Background(), &request.CreateSolicitudRequest{
		ClienteID:  7,
		MetodoPago: "efectivo",
		Items:      []request.ItemSolicitudRequest{{ItemID: 1, Cantidad: 3}},
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if resp.Estado != string(entity.EstadoPendiente) {
		t.Errorf("expected estado pendiente, got %s", resp.Estado)
	}
	if !resp.Total.Equal(decimal.NewFromFloat(30.00)) {
		t.Errorf("expected total 30.00, got %s", resp.Total)
	}
	if got := repo.items[1].stock; got != 2 {
		t.Errorf("expected stock 2 after decrement, got %d", got)
	}
}

func TestCrearSolicitud_TotalMultiItem(t *testing.T) {
	repo := newFakeSolicitudRepo(map[int64]fakeItem{
		1: {precio: decimal.NewFromFloat(10.00), stock: 10},
		2: {precio: decimal.NewFromFloat(2.50), stock: 10},
	})
	uc := NewCrearSolicitudUseCase(repo)

	resp, err := uc.Execute(context.Background(), &request.CreateSolicitudRequest{
		ClienteID:  1,
		MetodoPago: "tarjeta",
		Items: []request.ItemSolicitudRequest{
			{ItemID: 1, Cantidad: 2},
			{ItemID: 2, Cantidad: 4},
		},
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	// 2*10.00 + 4*2.50 = 30.00
	if !resp.Total.Equal(decimal.NewFromFloat(30.00)) {
		t.Errorf("expected total 30.00, got %s", resp.Total)
	}
	if repo.items[1].stock != 8 || repo.items[2].stock != 6 {
		t.Errorf("unexpected stocks: %d, %d", repo.items[1].stock, repo.items[2].stock)
	}
}

func TestCrearSolicitud_StockInsuficiente(t *testing.T) {
	repo := newFakeSolicitudRepo(map[int64]fakeItem{
		1: {precio: decimal.NewFromFloat(10.00), stock: 2},
	})
	uc := NewCrearSolicitudUseCase(repo)

	_, err := uc.Execute(context.Background(), &request.CreateSolicitudRequest{
		ClienteID:  1,
		MetodoPago: "efectivo",
		Items:      []request.ItemSolicitudRequest{{ItemID: 1, Cantidad: 5}},
	})

	var stockErr *entity.StockInsuficienteError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected StockInsuficienteError, got %v", err)
	}
	if stockErr.ItemID != 1 || stockErr.Solicitado != 5 || stockErr.Disponible != 2 {
		t.Errorf("unexpected error payload: %+v", stockErr)
	}
	if got := repo.items[1].stock; got != 2 {
		t.Errorf("stock must remain 2 after rejection, got %d", got)
	}
}

func TestCrearSolicitud_ItemInexistenteRevierteTodo(t *testing.T) {
	repo := newFakeSolicitudRepo(map[int64]fakeItem{
		1: {precio: decimal.NewFromFloat(10.00), stock: 5},
	})
	uc := NewCrearSolicitudUseCase(repo)

	// la segunda línea referencia un item inexistente: la primera no debe
	// dejar descuento de stock visible
	_, err := uc.Execute(context.Background(), &request.CreateSolicitudRequest{
		ClienteID:  1,
		MetodoPago: "efectivo",
		Items: []request.ItemSolicitudRequest{
			{ItemID: 1, Cantidad: 2},
			{ItemID: 999, Cantidad: 1},
		},
	})

	var noExiste *entity.ItemNoExisteError
	if !errors.As(err, &noExiste) {
		t.Fatalf("expected ItemNoExisteError, got %v", err)
	}
	if noExiste.ItemID != 999 {
		t.Errorf("expected item 999 in error, got %d", noExiste.ItemID)
	}
	if got := repo.items[1].stock; got != 5 {
		t.Errorf("stock must remain 5 after rollback, got %d", got)
	}
}

func TestCrearSolicitud_ValidacionAntesDePersistir(t *testing.T) {
	cases := []struct {
		name string
		req  request.CreateSolicitudRequest
		want error
	}{
		{
			name: "metodo de pago invalido",
			req: request.CreateSolicitudRequest{
				ClienteID:  1,
				MetodoPago: "bitcoin",
				Items:      []request.ItemSolicitudRequest{{ItemID: 1, Cantidad: 1}},
			},
			want: entity.ErrMetodoPagoInvalido,
		},
		{
			name: "sin items",
			req: request.CreateSolicitudRequest{
				ClienteID:  1,
				MetodoPago: "efectivo",
			},
			want: entity.ErrSolicitudSinItems,
		},
		{
			name: "cantidad cero",
			req: request.CreateSolicitudRequest{
				ClienteID:  1,
				MetodoPago: "efectivo",
				Items:      []request.ItemSolicitudRequest{{ItemID: 1, Cantidad: 0}},
			},
			want: entity.ErrCantidadInvalida,
		},
		{
			name: "cantidad negativa",
			req: request.CreateSolicitudRequest{
				ClienteID:  1,
				MetodoPago: "efectivo",
				Items:      []request.ItemSolicitudRequest{{ItemID: 1, Cantidad: -3}},
			},
			want: entity.ErrCantidadInvalida,
		},
		{
			name: "cliente faltante",
			req: request.CreateSolicitudRequest{
				MetodoPago: "transferencia",
				Items:      []request.ItemSolicitudRequest{{ItemID: 1, Cantidad: 1}},
			},
			want: entity.ErrClienteIDRequerido,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeSolicitudRepo(map[int64]fakeItem{
				1: {precio: decimal.NewFromFloat(1.00), stock: 100},
			})
			uc := NewCrearSolicitudUseCase(repo)

			_, err := uc.Execute(context.Background(), &tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if repo.createCalls != 0 {
				t.Errorf("repository must not be touched on validation failure")
			}
		})
	}
}

func TestCrearSolicitud_PrecioSnapshotPorLinea(t *testing.T) {
	repo := newFakeSolicitudRepo(map[int64]fakeItem{
		3: {precio: decimal.NewFromFloat(7.25), stock: 4},
	})
	uc := NewCrearSolicitudUseCase(repo)

	resp, err := uc.Execute(context.Background(), &request.CreateSolicitudRequest{
		ClienteID:  2,
		MetodoPago: "transferencia",
		Items:      []request.ItemSolicitudRequest{{ItemID: 3, Cantidad: 4}},
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	solicitud := repo.solicitudes[resp.SolicitudID]
	if len(solicitud.Detalles) != 1 {
		t.Fatalf("expected 1 detalle, got %d", len(solicitud.Detalles))
	}
	detalle := solicitud.Detalles[0]
	if !detalle.PrecioUnitario.Equal(decimal.NewFromFloat(7.25)) {
		t.Errorf("expected precio snapshot 7.25, got %s", detalle.PrecioUnitario)
	}
	if !solicitud.Total.Equal(detalle.Subtotal()) {
		t.Errorf("total %s != suma de subtotales %s", solicitud.Total, detalle.Subtotal())
	}
}
