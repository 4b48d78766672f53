package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gazostheque/gazostheque/internal/handlers"
	"github.com/gazostheque/gazostheque/internal/middleware"
	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/tests/helpers"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Owner{},
		&models.Tag{},
		&models.Material{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// asPrincipal injects an authenticated user the way RequireUser would,
// so handler tests exercise the gate without minting tokens.
func asPrincipal(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.PrincipalKey, user)
		return c.Next()
	}
}

// newMaterialApp registers the material routes behind a fixed principal.
func newMaterialApp(db *gorm.DB, principal *models.User) *fiber.App {
	app := fiber.New()
	if principal != nil {
		app.Use(asPrincipal(principal))
	}
	handler := &handlers.MaterialHandler{DB: db, Hooks: services.DefaultHookRunner(false)}
	app.Post("/materials/create/", handler.CreateMaterial)
	app.Get("/materials/", handler.ListMaterials)
	app.Get("/materials/tags", handler.ListTags)
	app.Get("/materials/search-by-tags", handler.SearchByTags)
	app.Get("/materials/:id/", handler.GetMaterial)
	app.Put("/materials/:id/", handler.UpdateMaterial)
	app.Delete("/materials/:id/", handler.DeleteMaterial)
	return app
}

// TestUpdateMaterialForbiddenForNonOwner verifies the mutation gate: a
// plain user who does not back the material's owner gets a 403 and the
// record stays untouched.
func TestUpdateMaterialForbiddenForNonOwner(t *testing.T) {
	db := setupTestDB(t)

	ownerUser := helpers.CreateTestUser(t, db, "holder@univ.fr", models.RoleUser, false)
	owner := helpers.CreateTestOwner(t, db, ownerUser.UserID)
	material := helpers.CreateTestMaterial(t, db, "Argon B50", models.LabLIPhy, &owner.OwnerID)

	outsider := helpers.CreateTestUser(t, db, "outsider@univ.fr", models.RoleUser, false)
	app := newMaterialApp(db, &outsider)

	body, _ := json.Marshal(map[string]interface{}{"team": "Hijacked"})
	req := httptest.NewRequest("PUT", "/materials/1/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 403)

	reloaded, err := services.GetMaterial(db, material.MaterialID)
	if err != nil {
		t.Fatalf("Failed to reload material: %v", err)
	}
	if reloaded.Team != "" {
		t.Errorf("Expected material to be unchanged, got team %q", reloaded.Team)
	}
}

// TestUpdateMaterialAllowedForOwner lets the user backing the owner
// edit the material.
func TestUpdateMaterialAllowedForOwner(t *testing.T) {
	db := setupTestDB(t)

	ownerUser := helpers.CreateTestUser(t, db, "holder@univ.fr", models.RoleUser, false)
	owner := helpers.CreateTestOwner(t, db, ownerUser.UserID)
	material := helpers.CreateTestMaterial(t, db, "Argon B50", models.LabLIPhy, &owner.OwnerID)

	app := newMaterialApp(db, &ownerUser)

	body, _ := json.Marshal(map[string]interface{}{"team": "Optics"})
	req := httptest.NewRequest("PUT", "/materials/1/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	reloaded, err := services.GetMaterial(db, material.MaterialID)
	if err != nil {
		t.Fatalf("Failed to reload material: %v", err)
	}
	if reloaded.Team != "Optics" {
		t.Errorf("Expected team Optics, got %q", reloaded.Team)
	}
}

// TestUpdateMaterialAllowedForAdmin covers the administrative bypass:
// staff flag or admin role both pass the gate.
func TestUpdateMaterialAllowedForAdmin(t *testing.T) {
	db := setupTestDB(t)

	ownerUser := helpers.CreateTestUser(t, db, "holder@univ.fr", models.RoleUser, false)
	owner := helpers.CreateTestOwner(t, db, ownerUser.UserID)
	helpers.CreateTestMaterial(t, db, "Argon B50", models.LabLIPhy, &owner.OwnerID)

	admin := helpers.CreateTestUser(t, db, "admin@univ.fr", models.RoleAdmin, false)
	app := newMaterialApp(db, &admin)

	body, _ := json.Marshal(map[string]interface{}{"team": "Admin edit"})
	req := httptest.NewRequest("PUT", "/materials/1/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestUpdateMaterialClearsDepartureWithNull sends an explicit JSON
// null through PUT and expects the departure date to clear, so a
// material marked for departure can be pulled back.
func TestUpdateMaterialClearsDepartureWithNull(t *testing.T) {
	db := setupTestDB(t)

	staff := helpers.CreateTestUser(t, db, "staff@univ.fr", models.RoleUser, true)
	material := helpers.CreateTestMaterial(t, db, "Argon B50", models.LabLIPhy, nil)
	depart := time.Now()
	if err := db.Model(&material).Update("date_depart", &depart).Error; err != nil {
		t.Fatalf("Failed to set departure date: %v", err)
	}

	app := newMaterialApp(db, &staff)

	req := httptest.NewRequest("PUT", "/materials/1/", bytes.NewReader([]byte(`{"date_depart": null}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	reloaded, err := services.GetMaterial(db, material.MaterialID)
	if err != nil {
		t.Fatalf("Failed to reload material: %v", err)
	}
	if reloaded.DateDepart != nil {
		t.Errorf("Expected departure date to be cleared, still %v", reloaded.DateDepart)
	}
}

// TestDeleteMaterial returns 204 with an empty body and removes the row.
func TestDeleteMaterial(t *testing.T) {
	db := setupTestDB(t)

	staff := helpers.CreateTestUser(t, db, "staff@univ.fr", models.RoleUser, true)
	material := helpers.CreateTestMaterial(t, db, "CO2 B10", models.LabIGE, nil)

	app := newMaterialApp(db, &staff)

	req := httptest.NewRequest("DELETE", "/materials/1/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 204)
	helpers.AssertNoContent(t, resp)

	if _, err := services.GetMaterial(db, material.MaterialID); err == nil {
		t.Error("Expected material to be deleted")
	}
}

// TestDeleteMaterialForbidden keeps the row when a plain user tries.
func TestDeleteMaterialForbidden(t *testing.T) {
	db := setupTestDB(t)

	plain := helpers.CreateTestUser(t, db, "plain@univ.fr", models.RoleUser, false)
	material := helpers.CreateTestMaterial(t, db, "CO2 B10", models.LabIGE, nil)

	app := newMaterialApp(db, &plain)

	req := httptest.NewRequest("DELETE", "/materials/1/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 403)

	if _, err := services.GetMaterial(db, material.MaterialID); err != nil {
		t.Errorf("Expected material to survive, got %v", err)
	}
}

// TestCreateMaterialValidation returns a 400 with a per-field error map.
func TestCreateMaterialValidation(t *testing.T) {
	db := setupTestDB(t)
	staff := helpers.CreateTestUser(t, db, "staff@univ.fr", models.RoleUser, true)
	app := newMaterialApp(db, &staff)

	body, _ := json.Marshal(map[string]interface{}{"lab_destination": "CERN"})
	req := httptest.NewRequest("POST", "/materials/create/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)

	var result struct {
		Errors map[string]string `json:"errors"`
	}
	helpers.ParseJSON(t, resp, &result)
	if result.Errors["material_title"] == "" {
		t.Error("Expected a material_title field error")
	}
	if result.Errors["lab_destination"] == "" {
		t.Error("Expected a lab_destination field error")
	}
}

// TestListMaterialsFlattensOwner checks the inventory projection: the
// owning user's identity is inlined, and owner-less rows come back
// with empty owner fields instead of being dropped.
func TestListMaterialsFlattensOwner(t *testing.T) {
	db := setupTestDB(t)

	ownerUser := models.User{
		Email:     "marie@univ.fr",
		FirstName: "Marie",
		LastName:  "Curie",
		Role:      models.RoleUser,
		IsActive:  true,
	}
	if err := db.Create(&ownerUser).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	owner := helpers.CreateTestOwner(t, db, ownerUser.UserID)
	helpers.CreateTestMaterial(t, db, "Held", models.LabLIPhy, &owner.OwnerID)
	helpers.CreateTestMaterial(t, db, "Orphan", models.LabIGE, nil)

	app := newMaterialApp(db, &ownerUser)

	req := httptest.NewRequest("GET", "/materials/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var rows []models.MaterialRow
	helpers.ParseJSON(t, resp, &rows)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	byTitle := make(map[string]models.MaterialRow, len(rows))
	for _, row := range rows {
		byTitle[row.MaterialTitle] = row
	}
	if held := byTitle["Held"]; held.OwnerFirstName != "Marie" || held.OwnerEmail != "marie@univ.fr" {
		t.Errorf("Expected flattened owner identity, got %+v", held)
	}
	if orphan := byTitle["Orphan"]; orphan.OwnerFirstName != "" || orphan.OwnerEmail != "" {
		t.Errorf("Expected empty owner fields on orphan row, got %+v", orphan)
	}
}

// TestSearchByTags requires the tag parameter and returns an empty
// array rather than null for no matches.
func TestSearchByTags(t *testing.T) {
	db := setupTestDB(t)
	staff := helpers.CreateTestUser(t, db, "staff@univ.fr", models.RoleUser, true)
	app := newMaterialApp(db, &staff)

	req := httptest.NewRequest("GET", "/materials/search-by-tags", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)

	req = httptest.NewRequest("GET", "/materials/search-by-tags?tag=inert", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var materials []models.Material
	helpers.ParseJSON(t, resp, &materials)
	if materials == nil || len(materials) != 0 {
		t.Errorf("Expected an empty array, got %v", materials)
	}
}

// TestCreateMaterialWithTags round-trips tag creation through the tag
// listing and tag search endpoints.
func TestCreateMaterialWithTags(t *testing.T) {
	db := setupTestDB(t)
	staff := helpers.CreateTestUser(t, db, "staff@univ.fr", models.RoleUser, true)
	app := newMaterialApp(db, &staff)

	body, _ := json.Marshal(map[string]interface{}{
		"material_title": "Argon B50",
		"tags":           []string{"inert", "50L"},
	})
	req := httptest.NewRequest("POST", "/materials/create/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	req = httptest.NewRequest("GET", "/materials/tags", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var names []string
	helpers.ParseJSON(t, resp, &names)
	if len(names) != 2 {
		t.Fatalf("Expected 2 tag names, got %v", names)
	}

	req = httptest.NewRequest("GET", "/materials/search-by-tags?tag=inert", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var materials []models.Material
	helpers.ParseJSON(t, resp, &materials)
	if len(materials) != 1 || materials[0].MaterialTitle != "Argon B50" {
		t.Errorf("Expected the tagged material, got %v", materials)
	}
}
