package entity

import (
	"github.com/google/uuid"
)

// Shipment keeps the wire field names of the original GestionPaquetes API:
// RecordID is the storage key, Code (id_envio) is the external lookup key.
// Code uniqueness is not enforced; avoiding collisions is the client's job.
type Shipment struct {
	RecordID  uuid.UUID      `json:"_id"`
	Sender    *Sender        `json:"Remitente"`
	Recipient *Recipient     `json:"Resecciona"`
	Package   *PackageStatus `json:"Paquete"`
	Code      string         `json:"id_envio" validate:"required"`
}
