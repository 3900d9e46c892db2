package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"gestionpaquetes/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type E2ETestSuite struct {
	suite.Suite

	httpClient *http.Client
	appHost    string
	appPort    string
}

func (s *E2ETestSuite) SetupSuite() {
	s.appHost = getEnvOrDefault("APP_HOST", "localhost")
	s.appPort = getEnvOrDefault("APP_PORT", "8080")

	s.httpClient = &http.Client{
		Timeout: 10 * time.Second,
	}

	s.waitForApp()
}

func (s *E2ETestSuite) waitForApp() {
	const maxRetries = 30
	const retryDelay = 2 * time.Second
	healthURL := s.url("/health")

	for i := range maxRetries {
		req, err := http.NewRequestWithContext(context.Background(), "GET", healthURL, nil)
		if err != nil {
			s.T().Logf("Failed to create health check request: %v", err)
			time.Sleep(retryDelay)
			continue
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.T().Logf("Health check failed (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			s.T().Log("App is healthy")
			return
		} else {
			s.T().Logf("App health check status %d (attempt %d/%d)", resp.StatusCode, i+1, maxRetries)
		}
		time.Sleep(retryDelay)
	}
	s.T().Fatalf("App did not become healthy after %d attempts", maxRetries)
}

func (s *E2ETestSuite) url(path string) string {
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(s.appHost, s.appPort), path)
}

func (s *E2ETestSuite) postShipment(shipment *entity.Shipment) *entity.Shipment {
	shipmentBytes, err := json.Marshal(shipment)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		context.Background(),
		"POST",
		s.url("/newEnvio"),
		bytes.NewReader(shipmentBytes),
	)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	require.Equal(
		s.T(),
		http.StatusCreated,
		resp.StatusCode,
		"Expected status Created, got %d. Response: %s",
		resp.StatusCode,
		string(body),
	)

	var created entity.Shipment
	err = json.Unmarshal(body, &created)
	require.NoError(s.T(), err, "Failed to unmarshal response body: %s", string(body))

	return &created
}

func (s *E2ETestSuite) TestShipmentFlow() {
	shipment := generateFakeShipment()

	created := s.postShipment(shipment)
	require.NotEqual(s.T(), uuid.Nil, created.RecordID)
	require.Equal(s.T(), shipment.Code, created.Code)

	req, err := http.NewRequestWithContext(
		context.Background(),
		"GET",
		s.url("/"+shipment.Code),
		nil,
	)
	require.NoError(s.T(), err)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	s.T().Logf("Response body: %s", string(body))

	var found entity.Shipment
	err = json.Unmarshal(body, &found)
	require.NoError(s.T(), err, "Failed to unmarshal response body: %s", string(body))

	require.Equal(s.T(), created.RecordID, found.RecordID)
	require.Equal(s.T(), shipment.Code, found.Code)
	require.Equal(s.T(), shipment.Sender.Name, found.Sender.Name)
	require.Equal(s.T(), shipment.Sender.Phone, found.Sender.Phone)
	require.Equal(s.T(), shipment.Recipient.Name, found.Recipient.Name)
	require.Equal(s.T(), shipment.Package.Status, found.Package.Status)
}

func (s *E2ETestSuite) TestGetUnknownShipment() {
	code := "ENV-" + gofakeit.DigitN(9)

	req, err := http.NewRequestWithContext(
		context.Background(),
		"GET",
		s.url("/"+code),
		nil,
	)
	require.NoError(s.T(), err)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	require.Equal(s.T(), http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Contains(s.T(), string(body), code)
}

func (s *E2ETestSuite) TestCreateInvalidShipment() {
	req, err := http.NewRequestWithContext(
		context.Background(),
		"POST",
		s.url("/newEnvio"),
		bytes.NewReader([]byte(`{"Remitente": {"Nombre": "Jonathan"}}`)),
	)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	require.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *E2ETestSuite) TestListShipmentsGrows() {
	list := func() []*entity.Shipment {
		req, err := http.NewRequestWithContext(
			context.Background(),
			"GET",
			s.url("/all"),
			nil,
		)
		require.NoError(s.T(), err)

		resp, err := s.httpClient.Do(req)
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		require.Equal(s.T(), http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(s.T(), err)

		var shipments []*entity.Shipment
		err = json.Unmarshal(body, &shipments)
		require.NoError(s.T(), err, "Failed to unmarshal response body: %s", string(body))

		return shipments
	}

	before := list()
	s.postShipment(generateFakeShipment())
	after := list()

	require.Equal(s.T(), len(before)+1, len(after))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestE2E(t *testing.T) {
	if os.Getenv("E2E_TEST") == "" {
		t.Skip("Skipping E2E test; set E2E_TEST to run.")
	}
	suite.Run(t, new(E2ETestSuite))
}

func int64Ptr(v int64) *int64 {
	return &v
}

func generateFakeSender() *entity.Sender {
	return &entity.Sender{
		Name:     gofakeit.Name(),
		Phone:    int64Ptr(int64(gofakeit.IntRange(3000000000, 3199999999))),
		ShipDate: gofakeit.Date().Format("2/1/2006"),
		ShipTime: gofakeit.Date().Format("15:04"),
	}
}

func generateFakeRecipient() *entity.Recipient {
	return &entity.Recipient{
		Name:  gofakeit.Name(),
		Phone: int64Ptr(int64(gofakeit.IntRange(3000000000, 3199999999))),
	}
}

func generateFakePackageStatus() *entity.PackageStatus {
	statuses := []string{"Enviado", "En transito", "Entregado"}

	return &entity.PackageStatus{
		Country:    gofakeit.Country(),
		Address:    gofakeit.Address().Address,
		PostalCode: int64Ptr(int64(gofakeit.IntRange(10000000, 99999999))),
		Status:     statuses[gofakeit.Number(0, len(statuses)-1)],
	}
}

func generateFakeShipment() *entity.Shipment {
	return &entity.Shipment{
		Code:      "ENV-" + gofakeit.DigitN(6),
		Sender:    generateFakeSender(),
		Recipient: generateFakeRecipient(),
		Package:   generateFakePackageStatus(),
	}
}
