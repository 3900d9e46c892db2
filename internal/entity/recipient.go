package entity

type Recipient struct {
	Name        string  `json:"Nombre"       validate:"required"`
	Phone       *int64  `json:"Telefono"     validate:"required"`
	ReceiveDate *string `json:"Fecha_recibe"`
	ReceiveTime *string `json:"Hora_recibe"`
}
