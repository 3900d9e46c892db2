package entity

// Phone is a pointer so required means "present": 0 and negative numbers
// are accepted, only a missing or null field is rejected.
type Sender struct {
	Name     string `json:"Nombre"      validate:"required"`
	Phone    *int64 `json:"Telefono"    validate:"required"`
	ShipDate string `json:"Fecha_envio" validate:"required"`
	ShipTime string `json:"Hora_envio"  validate:"required"`
}
