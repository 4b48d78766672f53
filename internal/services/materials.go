package services

import (
	"errors"
	"time"

	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/gazostheque/gazostheque/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// MaterialInput is the create/partial-update payload for a material.
// Pointer fields distinguish "absent" from "set to zero", matching the
// original API's partial update semantics. The nullable fields (owner
// link and lifecycle dates) additionally distinguish an explicit null,
// so a departure date can be cleared through PUT.
type MaterialInput struct {
	MaterialTitle  *string            `json:"material_title"`
	Team           *string            `json:"team"`
	QRCode         *string            `json:"qrcode"`
	Origin         *string            `json:"origin"`
	OwnerID        types.NullableUint `json:"owner"`
	OrderCode      *string            `json:"codeCommande"`
	Barcode        *string            `json:"codeBarres"`
	Size           *string            `json:"size"`
	RiskLevel      *string            `json:"levRisk"`
	LabDestination *string            `json:"lab_destination"`
	DateArrivee    types.NullableTime `json:"date_arrivee"`
	DateDepart     types.NullableTime `json:"date_depart"`
	Tags           []string           `json:"tags"`
}

// apply copies the provided fields onto m.
func (in *MaterialInput) apply(m *models.Material) {
	if in.MaterialTitle != nil {
		m.MaterialTitle = *in.MaterialTitle
	}
	if in.Team != nil {
		m.Team = *in.Team
	}
	if in.QRCode != nil {
		m.QRCode = *in.QRCode
	}
	if in.Origin != nil {
		m.Origin = *in.Origin
	}
	if in.OwnerID.Set {
		m.OwnerID = in.OwnerID.Value
	}
	if in.OrderCode != nil {
		m.OrderCode = *in.OrderCode
	}
	if in.Barcode != nil {
		m.Barcode = *in.Barcode
	}
	if in.Size != nil {
		m.Size = *in.Size
	}
	if in.RiskLevel != nil {
		m.RiskLevel = *in.RiskLevel
	}
	if in.LabDestination != nil {
		m.LabDestination = *in.LabDestination
	}
	if in.DateArrivee.Set {
		m.DateArrivee = in.DateArrivee.Value
	}
	if in.DateDepart.Set {
		m.DateDepart = in.DateDepart.Value
	}
}

// validateMaterial checks the assembled record against the enumerated
// and required fields.
func validateMaterial(m *models.Material) error {
	fields := make(map[string]string)
	if m.MaterialTitle == "" {
		fields["material_title"] = "This field is required."
	}
	if !models.ValidLab(m.LabDestination) {
		fields["lab_destination"] = "Value must be one of: LIPhy, IGE."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateMaterial inserts a new material and its tags. The lifecycle
// hooks run inside the same transaction; on creation the departure
// rule never fires.
func CreateMaterial(db *gorm.DB, hooks *HookRunner, in *MaterialInput) (*models.Material, error) {
	var material models.Material
	in.apply(&material)

	if err := validateMaterial(&material); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if material.OwnerID != nil {
			var owner models.Owner
			if err := tx.First(&owner, "owner_id = ?", *material.OwnerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ValidationError{Fields: map[string]string{"owner": "Owner does not exist."}}
				}
				return err
			}
		}

		if err := tx.Create(&material).Error; err != nil {
			return err
		}

		if len(in.Tags) > 0 {
			if err := replaceTags(tx, &material, in.Tags, nil); err != nil {
				return err
			}
		}

		return hooks.Run(tx, nil, &material, true)
	})
	if err != nil {
		return nil, err
	}

	return &material, nil
}

// UpdateMaterial applies a partial update to an existing material.
// The hooks receive the pre-save state and run in the same
// transaction, so a failing fail-closed hook rolls the update back.
func UpdateMaterial(db *gorm.DB, hooks *HookRunner, id uint, in *MaterialInput) (*models.Material, error) {
	var material models.Material

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&material, "material_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		old := material
		in.apply(&material)

		if err := validateMaterial(&material); err != nil {
			return err
		}

		if in.OwnerID.Set && in.OwnerID.Value != nil {
			var owner models.Owner
			if err := tx.First(&owner, "owner_id = ?", *in.OwnerID.Value).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ValidationError{Fields: map[string]string{"owner": "Owner does not exist."}}
				}
				return err
			}
		}

		if err := tx.Save(&material).Error; err != nil {
			return err
		}

		if in.Tags != nil {
			if err := replaceTags(tx, &material, in.Tags, nil); err != nil {
				return err
			}
		}

		return hooks.Run(tx, &old, &material, false)
	})
	if err != nil {
		return nil, err
	}

	return &material, nil
}

// GetMaterial fetches a single material by id.
func GetMaterial(db *gorm.DB, id uint) (*models.Material, error) {
	var material models.Material
	if err := db.First(&material, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// DeleteMaterial removes a material. Dependent notifications are kept.
func DeleteMaterial(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Material{}, "material_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListMaterials returns the flattened inventory projection: material
// columns joined with the owning user's identity. Owner-less rows keep
// empty owner fields.
func ListMaterials(db *gorm.DB) ([]models.MaterialRow, error) {
	var rows []models.MaterialRow
	err := db.Clauses(hints.New("MAX_EXECUTION_TIME(10000)")).
		Table("materials").
		Select(`materials.material_id, materials.material_title, materials.team, materials.origin,
			materials.size, materials.date_arrivee, materials.date_depart,
			COALESCE(users.first_name, '') AS owner_first_name,
			COALESCE(users.last_name, '') AS owner_last_name,
			COALESCE(users.email, '') AS owner_email,
			COALESCE(users.profile_pic, '') AS owner_profil`).
		Joins("LEFT JOIN owners ON owners.owner_id = materials.owner_id").
		Joins("LEFT JOIN users ON users.user_id = owners.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MaterialsByOwner lists the materials held by one owner.
func MaterialsByOwner(db *gorm.DB, ownerID uint) ([]models.Material, error) {
	var materials []models.Material
	if err := db.Where("owner_id = ?", ownerID).Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// LatestMaterials returns the 4 most recently created materials.
func LatestMaterials(db *gorm.DB) ([]models.Material, error) {
	var materials []models.Material
	if err := db.Order("created_at DESC").Limit(4).Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// SearchMaterialsByTag lists materials carrying the named tag.
func SearchMaterialsByTag(db *gorm.DB, tag string) ([]models.Material, error) {
	var materials []models.Material
	err := db.
		Joins("JOIN material_tags ON material_tags.material_id = materials.material_id").
		Joins("JOIN tags ON tags.tag_id = material_tags.tag_id").
		Where("tags.name = ?", tag).
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

// MaterialEvent is one entry of a material's lifecycle timeline.
type MaterialEvent struct {
	Label       string    `json:"label"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

// MaterialEventsDetail is the full event view: the flattened material
// summary plus its timeline.
type MaterialEventsDetail struct {
	Material models.MaterialRow `json:"material"`
	Events   []MaterialEvent    `json:"events"`
}

// MaterialEvents assembles the lifecycle timeline for one material
// from its creation, arrival and departure dates.
func MaterialEvents(db *gorm.DB, id uint) (*MaterialEventsDetail, error) {
	material, err := GetMaterial(db, id)
	if err != nil {
		return nil, err
	}

	events := []MaterialEvent{
		{Label: "Created", Date: material.CreatedAt, Description: "Material registered in the inventory."},
	}
	if material.DateArrivee != nil {
		events = append(events, MaterialEvent{
			Label:       "Arrived",
			Date:        *material.DateArrivee,
			Description: "Material arrived at " + material.LabDestination + ".",
		})
	}
	if material.DateDepart != nil {
		events = append(events, MaterialEvent{
			Label:       "Ready for departure",
			Date:        *material.DateDepart,
			Description: "Material marked ready for departure.",
		})
	}

	detail := &MaterialEventsDetail{Events: events}
	detail.Material = models.MaterialRow{
		MaterialID:    material.MaterialID,
		MaterialTitle: material.MaterialTitle,
		Team:          material.Team,
		Origin:        material.Origin,
		Size:          material.Size,
		DateArrivee:   material.DateArrivee,
		DateDepart:    material.DateDepart,
	}

	if material.OwnerID != nil {
		var owner models.Owner
		if err := db.Preload("User").First(&owner, "owner_id = ?", *material.OwnerID).Error; err == nil {
			detail.Material.OwnerFirstName = owner.User.FirstName
			detail.Material.OwnerLastName = owner.User.LastName
			detail.Material.OwnerEmail = owner.User.Email
			detail.Material.OwnerProfil = owner.User.ProfilePic
		}
	}

	return detail, nil
}

// replaceTags resolves tag names to rows, creating missing ones, and
// replaces the material's tag association.
func replaceTags(tx *gorm.DB, material *models.Material, names []string, userID *uint) error {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := tx.Where("name = ?", name).
			Attrs(models.Tag{UserID: userID}).
			FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			return err
		}
		tags = append(tags, tag)
	}
	return tx.Model(material).Association("Tags").Replace(tags)
}
