package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gazostheque/gazostheque/internal/handlers"
	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/gazostheque/gazostheque/tests/helpers"
)

func newNotificationApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	handler := &handlers.NotificationHandler{DB: db}
	app.Get("/notifications/", handler.ListNotifications)
	app.Post("/notifications/", handler.CreateNotification)
	app.Get("/notifications/important/:id/", handler.ImportantNotifications)
	app.Get("/notifications/:id/", handler.NotificationsByUser)
	return app
}

// TestCreateNotificationValidation rejects a payload missing the
// required fields with a per-field error map.
func TestCreateNotificationValidation(t *testing.T) {
	db := setupTestDB(t)
	app := newNotificationApp(db)

	body, _ := json.Marshal(map[string]interface{}{"priority": "Urgent"})
	req := httptest.NewRequest("POST", "/notifications/", bytes.NewReader(body))
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
	for _, field := range []string{"title", "priority", "user"} {
		if result.Errors[field] == "" {
			t.Errorf("Expected a %s field error, got %v", field, result.Errors)
		}
	}
}

// TestNotificationsByUserFilters returns only the addressed user's
// notifications, and the important view keeps only High priority.
func TestNotificationsByUserFilters(t *testing.T) {
	db := setupTestDB(t)
	app := newNotificationApp(db)

	alice := helpers.CreateTestUser(t, db, "alice@univ.fr", models.RoleUser, false)
	bob := helpers.CreateTestUser(t, db, "bob@univ.fr", models.RoleUser, false)

	seed := []models.Notification{
		{Type: models.NotificationTypeEvent, Title: "a-high", Priority: models.PriorityHigh, UserID: alice.UserID},
		{Type: models.NotificationTypeEvent, Title: "a-low", Priority: models.PriorityLow, UserID: alice.UserID},
		{Type: models.NotificationTypeEvent, Title: "b-high", Priority: models.PriorityHigh, UserID: bob.UserID},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("Failed to seed notification: %v", err)
		}
	}

	req := httptest.NewRequest("GET", "/notifications/1/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var notifications []models.Notification
	helpers.ParseJSON(t, resp, &notifications)
	if len(notifications) != 2 {
		t.Errorf("Expected 2 notifications for alice, got %d", len(notifications))
	}

	req = httptest.NewRequest("GET", "/notifications/important/1/", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	helpers.ParseJSON(t, resp, &notifications)
	if len(notifications) != 1 || notifications[0].Title != "a-high" {
		t.Errorf("Expected only alice's high-priority notification, got %v", notifications)
	}
}

// TestCreateNotificationDefaultsType fills in the Event type when the
// payload omits it.
func TestCreateNotificationDefaultsType(t *testing.T) {
	db := setupTestDB(t)
	app := newNotificationApp(db)

	user := helpers.CreateTestUser(t, db, "carol@univ.fr", models.RoleUser, false)

	body, _ := json.Marshal(map[string]interface{}{
		"title":    "Inspection due",
		"priority": models.PriorityHigh,
		"user":     user.UserID,
	})
	req := httptest.NewRequest("POST", "/notifications/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var created models.Notification
	helpers.ParseJSON(t, resp, &created)
	if created.Type != models.NotificationTypeEvent {
		t.Errorf("Expected Event type default, got %q", created.Type)
	}
}
