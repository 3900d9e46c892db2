// nolint: revive,staticcheck
// swagger:meta
package httpt

import "gestionpaquetes/internal/entity"

// swagger:model ErrorResponse
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// swagger:model NotFoundResponse
type NotFoundResponse struct {
	Detail string `json:"detail"`
}

// swagger:model Shipment
type Shipment entity.Shipment

// swagger:model Sender
type Sender entity.Sender

// swagger:model Recipient
type Recipient entity.Recipient

// swagger:model PackageStatus
type PackageStatus entity.PackageStatus
