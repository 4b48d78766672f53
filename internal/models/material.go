package models

import (
	"time"
)

// Destination laboratories for a material.
const (
	LabLIPhy = "LIPhy"
	LabIGE   = "IGE"
)

// LabChoices lists the allowed lab_destination values.
var LabChoices = []string{LabLIPhy, LabIGE}

// ValidLab reports whether lab is an allowed destination. Blank is
// allowed: a material may sit unassigned.
func ValidLab(lab string) bool {
	if lab == "" {
		return true
	}
	for _, l := range LabChoices {
		if l == lab {
			return true
		}
	}
	return false
}

// Material is the tracked physical item (gas cylinder or bottle).
// The JSON field names mirror the original API so the existing
// frontend keeps working unchanged.
type Material struct {
	MaterialID    uint       `gorm:"column:material_id;primaryKey;autoIncrement" json:"material_id"`
	MaterialTitle string     `gorm:"size:100;not null" json:"material_title"`
	Team          string     `gorm:"size:100" json:"team"`
	QRCode        string     `gorm:"column:qrcode;type:text" json:"qrcode"`
	Origin        string     `gorm:"size:100" json:"origin"`
	OwnerID       *uint      `gorm:"column:owner_id" json:"owner"`
	Owner         *Owner     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	OrderCode     string     `gorm:"column:code_commande;size:100" json:"codeCommande"`
	Barcode       string     `gorm:"column:code_barres;size:100" json:"codeBarres"`
	Size          string     `gorm:"size:200" json:"size"`
	RiskLevel     string     `gorm:"column:lev_risk;size:200" json:"levRisk"`
	LabDestination string    `gorm:"size:100" json:"lab_destination"`
	DateArrivee   *time.Time `gorm:"column:date_arrivee" json:"date_arrivee"`
	DateDepart    *time.Time `gorm:"column:date_depart" json:"date_depart"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Tags []Tag `gorm:"many2many:material_tags;joinForeignKey:material_id;joinReferences:tag_id" json:"-"`
}

// TableName overrides the table name for Material
func (Material) TableName() string {
	return "materials"
}

// MaterialRow is the flattened inventory projection of the materials
// list view: material columns joined with the owning user's identity.
type MaterialRow struct {
	MaterialID     uint       `json:"material_id"`
	MaterialTitle  string     `json:"material_title"`
	Team           string     `json:"team"`
	Origin         string     `json:"origin"`
	Size           string     `json:"size"`
	DateArrivee    *time.Time `json:"date_arrivee"`
	DateDepart     *time.Time `json:"date_depart"`
	OwnerFirstName string     `json:"owner_first_name"`
	OwnerLastName  string     `json:"owner_last_name"`
	OwnerEmail     string     `json:"owner_email"`
	OwnerProfil    string     `json:"owner_profil"`
}
