package validation

import (
	"fmt"

	"almacen/src/solicitud/application/request"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New retorna un validador configurado con las reglas estructurales propias
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// item_ids duplicados se rechazan acá: dos líneas del mismo item
	// descontarían stock dos veces y el error de stock insuficiente
	// quedaría ambiguo.
	v.RegisterStructValidation(createSolicitudStructValidation, request.CreateSolicitudRequest{})

	return v
}

// createSolicitudStructValidation verifica que cada item_id aparezca una sola vez
func createSolicitudStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(request.CreateSolicitudRequest)

	seen := make(map[int64]bool, len(req.Items))
	for _, it := range req.Items {
		if seen[it.ItemID] {
			sl.ReportError(req.Items, "items", "Items", "unique_item_ids",
				fmt.Sprintf("item_id %d duplicado", it.ItemID))
			return
		}
		seen[it.ItemID] = true
	}
}

// ErrorsToMap aplana los errores del validador en pares campo -> mensaje
func ErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Error()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
