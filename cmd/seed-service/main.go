//nolint:mnd
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gestionpaquetes/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
)

func main() {
	targetAddr := flag.String(
		"addr",
		"http://localhost:8080",
		"Base URL of a running shipment-service instance",
	)
	numShipments := flag.Int("count", 1, "Number of shipments to create")
	interval := flag.Duration("interval", 1*time.Second, "Interval between create requests")

	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf(
		"Starting seeder. Will create %d shipments at '%s' every %v\n",
		*numShipments,
		*targetAddr,
		*interval,
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	shipmentsSent := 0

	createShipment(ctx, client, *targetAddr)

	shipmentsSent++
	if shipmentsSent >= *numShipments {
		log.Printf("Created all %d shipments. Exiting.\n", *numShipments)
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down seeder...")
			return
		case <-ticker.C:
			createShipment(ctx, client, *targetAddr)
			shipmentsSent++
			if shipmentsSent >= *numShipments {
				log.Printf("Created all %d shipments. Exiting.\n", *numShipments)
				return
			}
		}
	}
}

func createShipment(ctx context.Context, client *http.Client, targetAddr string) {
	shipment := generateFakeShipment()
	shipmentBytes, err := json.Marshal(shipment)
	if err != nil {
		log.Printf("Failed to marshal shipment: %v", err)
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(
		reqCtx,
		http.MethodPost,
		fmt.Sprintf("%s/newEnvio", targetAddr),
		bytes.NewReader(shipmentBytes),
	)
	if err != nil {
		log.Printf("Failed to build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Failed to create shipment: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Printf("Unexpected status %d for shipment code %s", resp.StatusCode, shipment.Code)
		return
	}

	log.Printf("Successfully created shipment code: %s", shipment.Code)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func generateFakeSender() *entity.Sender {
	return &entity.Sender{
		Name:     gofakeit.Name(),
		Phone:    int64Ptr(int64(gofakeit.IntRange(3000000000, 3999999999))),
		ShipDate: gofakeit.Date().Format("2/1/2006"),
		ShipTime: gofakeit.Date().Format("15:04"),
	}
}

func generateFakeRecipient() *entity.Recipient {
	recipient := &entity.Recipient{
		Name:  gofakeit.Name(),
		Phone: int64Ptr(int64(gofakeit.IntRange(3000000000, 3999999999))),
	}

	if gofakeit.Bool() {
		receiveDate := gofakeit.Date().Format("2/1/2006")
		receiveTime := gofakeit.Date().Format("15:04")
		recipient.ReceiveDate = &receiveDate
		recipient.ReceiveTime = &receiveTime
	}

	return recipient
}

func generateFakePackageStatus() *entity.PackageStatus {
	return &entity.PackageStatus{
		Country:    gofakeit.Country(),
		Address:    gofakeit.Address().Address,
		PostalCode: int64Ptr(int64(gofakeit.IntRange(10000000, 99999999))),
		Status:     gofakeit.RandomString([]string{"Enviado", "En transito", "Entregado"}),
	}
}

func generateFakeShipment() *entity.Shipment {
	return &entity.Shipment{
		Sender:    generateFakeSender(),
		Recipient: generateFakeRecipient(),
		Package:   generateFakePackageStatus(),
		Code:      fmt.Sprintf("ENV-%04d", gofakeit.IntRange(1, 9999)),
	}
}
