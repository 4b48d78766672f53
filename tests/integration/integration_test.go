// End-to-end tests against a real MariaDB container: the full material
// lifecycle through the HTTP surface, including the departure
// notification and the owner-delete cascade.

package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gazostheque/gazostheque/internal/config"
	"github.com/gazostheque/gazostheque/internal/database"
	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/gazostheque/gazostheque/internal/server"
	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/tests/helpers"
)

type env struct {
	app   *fiber.App
	db    *gorm.DB
	token string
}

// setupEnv starts MariaDB, connects through the application's own
// database layer and builds the full route table in-process.
func setupEnv(t *testing.T) *env {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	mariadb := helpers.StartMariaDB(t)
	t.Cleanup(func() { mariadb.Terminate(t) })

	cfg := &config.Config{
		Port:              "3000",
		DBType:            "mariadb",
		DBHost:            mariadb.Host,
		DBPort:            mariadb.Port.Port(),
		DBDatabase:        helpers.MariaDBDatabase,
		DBUser:            helpers.MariaDBUser,
		DBPassword:        helpers.MariaDBPassword,
		DBConnectionLimit: 5,
		JWTSecret:         helpers.TestJWTSecret,
		UploadDir:         t.TempDir(),
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to MariaDB: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	// The embedded DDL already created the schema; AutoMigrate verifies
	// the models agree with it.
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	admin := helpers.CreateTestUser(t, db, "admin@univ.fr", models.RoleAdmin, true)
	token := helpers.BearerToken(t, &admin)

	return &env{app: server.New(cfg, db), db: db, token: token}
}

// doJSON performs an authenticated request against the in-process app.
func (e *env) doJSON(t *testing.T, method, target string, payload interface{}) *http.Response {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", e.token)

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute %s %s: %v", method, target, err)
	}
	return resp
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestMaterialLifecycleEndToEnd(t *testing.T) {
	e := setupEnv(t)

	// Promote a user to owner through the API.
	user := helpers.CreateTestUser(t, e.db, "owner@univ.fr", models.RoleUser, false)

	resp := e.doJSON(t, "POST", "/owners/", map[string]interface{}{
		"user":    user.UserID,
		"contact": "C115",
	})
	helpers.AssertStatus(t, resp, 200)
	var owner models.Owner
	helpers.ParseJSON(t, resp, &owner)

	// Register a material held by that owner.
	resp = e.doJSON(t, "POST", "/materials/create/", map[string]interface{}{
		"material_title":  "Argon B50",
		"lab_destination": models.LabLIPhy,
		"owner":           owner.OwnerID,
		"tags":            []string{"inert"},
	})
	helpers.AssertStatus(t, resp, 200)
	var material models.Material
	helpers.ParseJSON(t, resp, &material)

	// No notification yet: creation never fires the departure rule.
	if count := helpers.CountNotifications(t, e.db, user.UserID); count != 0 {
		t.Fatalf("Expected 0 notifications after create, got %d", count)
	}

	// Mark the material ready for departure.
	resp = e.doJSON(t, "PUT", "/materials/"+itoa(material.MaterialID)+"/", map[string]interface{}{
		"date_depart": time.Now().UTC().Format(time.RFC3339),
	})
	helpers.AssertStatus(t, resp, 200)

	// The owning user got notified, visible through the API.
	resp = e.doJSON(t, "GET", "/notifications/"+itoa(user.UserID)+"/", nil)
	helpers.AssertStatus(t, resp, 200)
	var notifications []models.Notification
	helpers.ParseJSON(t, resp, &notifications)
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Title != "Material Ready for Departure" {
		t.Errorf("Unexpected notification title: %q", notifications[0].Title)
	}

	// Deleting the owner cascades to the material.
	resp = e.doJSON(t, "DELETE", "/owners/"+itoa(owner.OwnerID)+"/", nil)
	helpers.AssertStatus(t, resp, 204)

	resp = e.doJSON(t, "GET", "/materials/"+itoa(material.MaterialID)+"/", nil)
	helpers.AssertStatus(t, resp, 404)
}

func TestStatsEndToEnd(t *testing.T) {
	e := setupEnv(t)

	for i := 0; i < 3; i++ {
		resp := e.doJSON(t, "POST", "/materials/create/", map[string]interface{}{
			"material_title":  "liphy",
			"lab_destination": models.LabLIPhy,
		})
		helpers.AssertStatus(t, resp, 200)
	}
	for i := 0; i < 2; i++ {
		resp := e.doJSON(t, "POST", "/materials/create/", map[string]interface{}{
			"material_title":  "ige",
			"lab_destination": models.LabIGE,
		})
		helpers.AssertStatus(t, resp, 200)
	}

	resp := e.doJSON(t, "GET", "/materials/count-by-lab", nil)
	helpers.AssertStatus(t, resp, 200)
	var counts map[string]int64
	helpers.ParseJSON(t, resp, &counts)
	if counts[models.LabLIPhy] != 3 || counts[models.LabIGE] != 2 {
		t.Errorf("Expected {LIPhy:3 IGE:2}, got %v", counts)
	}

	resp = e.doJSON(t, "GET", "/materials/count/", nil)
	helpers.AssertStatus(t, resp, 200)
	var stats services.CountStats
	helpers.ParseJSON(t, resp, &stats)
	if stats.TotalCount != 5 {
		t.Errorf("Expected total 5, got %d", stats.TotalCount)
	}
	if stats.CurrentMonthCount != 5 {
		t.Errorf("Expected 5 this month, got %d", stats.CurrentMonthCount)
	}
}
