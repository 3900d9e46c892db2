package entity

// PackageStatus.Status is a free-text label; no enumerated set exists.
type PackageStatus struct {
	Country    string `json:"Pais"            validate:"required"`
	Address    string `json:"direccion_envio" validate:"required"`
	PostalCode *int64 `json:"codigo_postal"   validate:"required"`
	Status     string `json:"Estado_paquete"  validate:"required"`
}
