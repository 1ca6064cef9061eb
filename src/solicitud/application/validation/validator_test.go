package validation

import (
	"testing"

	"almacen/src/solicitud/application/request"
)

func TestCreateSolicitudValidation(t *testing.T) {
	v := New()

	t.Run("request valida pasa", func(t *testing.T) {
		req := request.CreateSolicitudRequest{
			ClienteID:  1,
			MetodoPago: "efectivo",
			Items: []request.ItemSolicitudRequest{
				{ItemID: 1, Cantidad: 2},
				{ItemID: 2, Cantidad: 1},
			},
		}
		if err := v.Struct(req); err != nil {
			t.Errorf("expected valid request, got %v", err)
		}
	})

	t.Run("item ids duplicados rechazados", func(t *testing.T) {
		req := request.CreateSolicitudRequest{
			ClienteID:  1,
			MetodoPago: "efectivo",
			Items: []request.ItemSolicitudRequest{
				{ItemID: 7, Cantidad: 2},
				{ItemID: 7, Cantidad: 1},
			},
		}
		if err := v.Struct(req); err == nil {
			t.Error("expected duplicate item_id error")
		}
	})

	t.Run("errores se aplanan en mapa", func(t *testing.T) {
		req := request.CreateSolicitudRequest{
			ClienteID:  1,
			MetodoPago: "efectivo",
			Items: []request.ItemSolicitudRequest{
				{ItemID: 3, Cantidad: 1},
				{ItemID: 3, Cantidad: 1},
			},
		}
		err := v.Struct(req)
		if err == nil {
			t.Fatal("expected validation error")
		}
		m := ErrorsToMap(err)
		if len(m) == 0 {
			t.Error("expected at least one entry in error map")
		}
	})
}
