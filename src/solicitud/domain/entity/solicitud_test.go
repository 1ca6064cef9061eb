package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEstadoIsValid(t *testing.T) {
	validos := []Estado{EstadoPendiente, EstadoAprobada, EstadoRechazada, EstadoEntregada}
	for _, e := range validos {
		if !e.IsValid() {
			t.Errorf("estado %q should be valid", e)
		}
	}

	invalidos := []Estado{"", "cancelada", "PENDIENTE", "aprobado"}
	for _, e := range invalidos {
		if e.IsValid() {
			t.Errorf("estado %q should be invalid", e)
		}
	}
}

func TestMetodoPagoIsValid(t *testing.T) {
	validos := []MetodoPago{MetodoPagoEfectivo, MetodoPagoTarjeta, MetodoPagoTransferencia}
	for _, m := range validos {
		if !m.IsValid() {
			t.Errorf("metodo %q should be valid", m)
		}
	}

	if MetodoPago("cheque").IsValid() {
		t.Error("metodo cheque should be invalid")
	}
	if MetodoPago("").IsValid() {
		t.Error("metodo vacío should be invalid")
	}
}

func TestNewDetalle(t *testing.T) {
	t.Run("valido", func(t *testing.T) {
		d, err := NewDetalle(5, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ItemID != 5 || d.Cantidad != 3 {
			t.Errorf("unexpected detalle: %+v", d)
		}
	})

	t.Run("item id invalido", func(t *testing.T) {
		if _, err := NewDetalle(0, 1); !errors.Is(err, ErrItemIDRequerido) {
			t.Errorf("expected ErrItemIDRequerido, got %v", err)
		}
	})

	t.Run("cantidad invalida", func(t *testing.T) {
		if _, err := NewDetalle(1, 0); !errors.Is(err, ErrCantidadInvalida) {
			t.Errorf("expected ErrCantidadInvalida, got %v", err)
		}
		if _, err := NewDetalle(1, -2); !errors.Is(err, ErrCantidadInvalida) {
			t.Errorf("expected ErrCantidadInvalida, got %v", err)
		}
	})
}

func TestDetalleSubtotal(t *testing.T) {
	d := Detalle{
		ItemID:         1,
		Cantidad:       4,
		PrecioUnitario: decimal.NewFromFloat(2.50),
	}
	if !d.Subtotal().Equal(decimal.NewFromFloat(10.00)) {
		t.Errorf("expected subtotal 10.00, got %s", d.Subtotal())
	}
}

func TestNewSolicitud(t *testing.T) {
	detalles := []Detalle{{ItemID: 1, Cantidad: 2}}

	t.Run("valida", func(t *testing.T) {
		s, err := NewSolicitud(1, "urgente", MetodoPagoEfectivo, detalles)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Estado != EstadoPendiente {
			t.Errorf("expected estado pendiente, got %s", s.Estado)
		}
		if !s.Total.IsZero() {
			t.Errorf("expected total cero, got %s", s.Total)
		}
		if s.TotalDetalles() != 1 {
			t.Errorf("expected 1 detalle, got %d", s.TotalDetalles())
		}
	})

	t.Run("cliente requerido", func(t *testing.T) {
		if _, err := NewSolicitud(0, "", MetodoPagoEfectivo, detalles); !errors.Is(err, ErrClienteIDRequerido) {
			t.Errorf("expected ErrClienteIDRequerido, got %v", err)
		}
	})

	t.Run("metodo de pago invalido", func(t *testing.T) {
		if _, err := NewSolicitud(1, "", MetodoPago("cripto"), detalles); !errors.Is(err, ErrMetodoPagoInvalido) {
			t.Errorf("expected ErrMetodoPagoInvalido, got %v", err)
		}
	})

	t.Run("sin items", func(t *testing.T) {
		if _, err := NewSolicitud(1, "", MetodoPagoTarjeta, nil); !errors.Is(err, ErrSolicitudSinItems) {
			t.Errorf("expected ErrSolicitudSinItems, got %v", err)
		}
	})
}

func TestErroresTipados(t *testing.T) {
	var err error = &StockInsuficienteError{ItemID: 3, Solicitado: 10, Disponible: 4}

	var stockErr *StockInsuficienteError
	if !errors.As(err, &stockErr) {
		t.Fatal("errors.As should match StockInsuficienteError")
	}
	if stockErr.Disponible != 4 {
		t.Errorf("expected disponible 4, got %d", stockErr.Disponible)
	}

	var noExiste *ItemNoExisteError
	if errors.As(err, &noExiste) {
		t.Error("errors.As should not match ItemNoExisteError")
	}
}
