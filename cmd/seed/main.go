// Command seed populates a running API instance with demo plant data. It is
// intended for local development and demos, not production.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

var client = &http.Client{Timeout: 10 * time.Second}

// envelope matches the API's response shape.
type envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
}

func post(apiURL, path string, payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := client.Post(apiURL+path, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response from %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("POST %s failed with status %d: %s", path, resp.StatusCode, env.Error)
	}
	return env.Data, nil
}

var machineNames = []string{
	"Press Line A", "Press Line B", "Welding Robot 1", "Welding Robot 2",
	"Paint Booth", "CNC Mill 3", "Assembly Conveyor", "Stamping Press",
}

var componentNames = []string{
	"Hydraulic Pump", "Drive Belt", "Main Bearing", "Control Valve",
	"Servo Motor", "Coolant Filter", "Spindle", "Gearbox",
}

var conditions = []string{"good", "good", "good", "fair", "poor", "critical"}

func seedMachine(apiURL string, n int) (string, error) {
	machine := map[string]any{
		"name":          machineNames[n%len(machineNames)],
		"model":         fmt.Sprintf("HX-%d00", 1+rand.Intn(9)),
		"serial_number": fmt.Sprintf("SN-%d-%06d", time.Now().Year(), rand.Intn(1000000)),
		"location":      fmt.Sprintf("Hall %d", 1+rand.Intn(4)),
	}
	data, err := post(apiURL, "/api/machines", machine)
	if err != nil {
		return "", err
	}
	id, _ := data["machine_id"].(string)
	if id == "" {
		return "", fmt.Errorf("no machine_id in response")
	}
	log.WithFields(log.Fields{"machine_id": id, "name": machine["name"]}).Info("Created machine")
	return id, nil
}

func seedComponents(apiURL, machineID string) error {
	count := 2 + rand.Intn(4)
	for i := 0; i < count; i++ {
		component := map[string]any{
			"machine_id":     machineID,
			"name":           componentNames[rand.Intn(len(componentNames))],
			"part_number":    fmt.Sprintf("PN-%05d", rand.Intn(100000)),
			"condition":      conditions[rand.Intn(len(conditions))],
			"lifespan_hours": 5000 + rand.Intn(15000),
			"current_hours":  rand.Intn(5000),
		}
		if _, err := post(apiURL, "/api/components", component); err != nil {
			return err
		}
	}
	log.WithFields(log.Fields{"machine_id": machineID, "count": count}).Info("Created components")
	return nil
}

func seedWorkOrder(apiURL, machineID string, n int) error {
	priorities := []string{"low", "medium", "high", "critical"}
	types := []string{"preventive", "corrective", "predictive"}
	order := map[string]any{
		"order_number": fmt.Sprintf("WO-SEED-%04d", n),
		"machine_id":   machineID,
		"title":        "Scheduled inspection",
		"description":  "Seeded work order",
		"priority":     priorities[rand.Intn(len(priorities))],
		"type":         types[rand.Intn(len(types))],
	}
	_, err := post(apiURL, "/api/work-orders", order)
	return err
}

func seedSchedule(apiURL, machineID string) error {
	frequencies := []string{"daily", "weekly", "monthly", "quarterly"}
	schedule := map[string]any{
		"machine_id":     machineID,
		"title":          "Routine maintenance",
		"frequency":      frequencies[rand.Intn(len(frequencies))],
		"scheduled_date": time.Now().UTC().AddDate(0, 0, 1+rand.Intn(14)),
		"is_recurring":   rand.Intn(2) == 0,
	}
	_, err := post(apiURL, "/api/schedules", schedule)
	return err
}

func seedInventory(apiURL string, n int) error {
	categories := []string{"spare_parts", "tools", "consumables"}
	item := map[string]any{
		"part_number": fmt.Sprintf("INV-%05d", n),
		"name":        fmt.Sprintf("Spare part %d", n),
		"category":    categories[rand.Intn(len(categories))],
		"quantity":    rand.Intn(50),
		"unit":        "pcs",
		"min_stock":   5,
		"max_stock":   100,
	}
	_, err := post(apiURL, "/api/inventory", item)
	return err
}

func main() {
	apiURL := os.Getenv("SEED_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	machines := 5
	if v := os.Getenv("SEED_MACHINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			machines = n
		}
	}

	log.WithFields(log.Fields{"api_url": apiURL, "machines": machines}).Info("Seeding demo data")

	for i := 0; i < machines; i++ {
		machineID, err := seedMachine(apiURL, i)
		if err != nil {
			log.WithError(err).Fatal("Failed to seed machine")
		}
		if err := seedComponents(apiURL, machineID); err != nil {
			log.WithError(err).Fatal("Failed to seed components")
		}
		if err := seedWorkOrder(apiURL, machineID, i); err != nil {
			log.WithError(err).Fatal("Failed to seed work order")
		}
		if err := seedSchedule(apiURL, machineID); err != nil {
			log.WithError(err).Fatal("Failed to seed schedule")
		}
	}
	for i := 0; i < machines*2; i++ {
		if err := seedInventory(apiURL, i); err != nil {
			log.WithError(err).Fatal("Failed to seed inventory")
		}
	}

	log.Info("Seeding complete")
}
