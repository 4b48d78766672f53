package main

import (
	"fmt"
	"log"

	"github.com/gazostheque/gazostheque/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Dumps the schema GORM generates for the models, for keeping
// data/initdb in sync. Run with: go run tools/inspect_schema.go
func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Owner{},
		&models.Tag{},
		&models.Material{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal(err)
	}

	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table'").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw(fmt.Sprintf("SELECT sql FROM sqlite_master WHERE name='%s'", table)).Scan(&schema)
		fmt.Println(schema)
	}
}
