package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gazostheque/gazostheque/internal/middleware"
	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/gazostheque/gazostheque/internal/types"
	"github.com/gazostheque/gazostheque/tests/helpers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// newAuthApp wires RequireUser in front of a probe route that reports
// the principal's email.
func newAuthApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*types.CustomError); ok {
				return c.Status(e.Code).JSON(fiber.Map{"message": e.Message, "type": e.Type})
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Get("/probe", middleware.RequireUser(db), func(c *fiber.Ctx) error {
		user := middleware.Principal(c)
		return c.JSON(fiber.Map{"email": user.Email})
	})
	return app
}

func TestRequireUserRejectsMissingHeader(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	req := httptest.NewRequest("GET", "/probe", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 403)
}

func TestRequireUserRejectsMalformedToken(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 403)
}

func TestRequireUserLoadsPrincipal(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	user := helpers.CreateTestUser(t, db, "cas@univ.fr", models.RoleUser, false)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", helpers.BearerToken(t, &user))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var result map[string]string
	helpers.ParseJSON(t, resp, &result)
	if result["email"] != "cas@univ.fr" {
		t.Errorf("Expected principal email, got %v", result)
	}
}

func TestRequireUserRejectsInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp(db)

	user := helpers.CreateTestUser(t, db, "gone@univ.fr", models.RoleUser, false)
	token := helpers.BearerToken(t, &user)
	if err := db.Model(&user).Update("is_active", false).Error; err != nil {
		t.Fatalf("Failed to deactivate user: %v", err)
	}

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 403)
}
