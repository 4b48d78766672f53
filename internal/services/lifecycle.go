package services

import (
	"fmt"
	"log"

	"github.com/gazostheque/gazostheque/internal/models"
	"gorm.io/gorm"
)

// MaterialHook is a post-write rule run inside the same transaction as
// a material save. old is nil on creation; updated is the record as
// persisted. Returning an error aborts the save under the fail-closed
// policy.
type MaterialHook func(tx *gorm.DB, old, updated *models.Material, created bool) error

// HookRunner runs the registered material hooks after every save.
// With failOpen set, a hook error is logged and the save commits
// anyway; otherwise the error rolls the whole transaction back.
type HookRunner struct {
	hooks    []MaterialHook
	failOpen bool
}

// NewHookRunner builds a runner with the given policy and hooks.
func NewHookRunner(failOpen bool, hooks ...MaterialHook) *HookRunner {
	return &HookRunner{hooks: hooks, failOpen: failOpen}
}

// DefaultHookRunner builds the production hook set.
func DefaultHookRunner(failOpen bool) *HookRunner {
	return NewHookRunner(failOpen, NotifyOwnerOnDeparture)
}

// Run executes the hooks in registration order.
func (r *HookRunner) Run(tx *gorm.DB, old, updated *models.Material, created bool) error {
	if r == nil {
		return nil
	}
	for _, hook := range r.hooks {
		if err := hook(tx, old, updated, created); err != nil {
			if r.failOpen {
				log.Printf("material hook failed (fail-open, save kept): %v", err)
				continue
			}
			return err
		}
	}
	return nil
}

// NotifyOwnerOnDeparture creates a notification for the owning user
// whenever an already-existing material is saved with a departure date
// set. It deliberately does not diff old against updated: every
// qualifying save notifies again. A material without an owner cannot
// be notified about and fails the hook.
func NotifyOwnerOnDeparture(tx *gorm.DB, old, updated *models.Material, created bool) error {
	if created || updated.DateDepart == nil {
		return nil
	}

	if updated.OwnerID == nil {
		return fmt.Errorf("material %d has a departure date but no owner to notify", updated.MaterialID)
	}

	var owner models.Owner
	if err := tx.First(&owner, "owner_id = ?", *updated.OwnerID).Error; err != nil {
		return fmt.Errorf("resolving owner %d: %w", *updated.OwnerID, err)
	}

	notification := models.Notification{
		Type:        models.NotificationTypeEvent,
		Title:       "Material Ready for Departure",
		Priority:    models.PriorityMedium,
		Description: fmt.Sprintf("The material '%s' is marked ready for departure.", updated.MaterialTitle),
		UserID:      owner.UserID,
	}
	if err := tx.Create(&notification).Error; err != nil {
		return fmt.Errorf("creating departure notification: %w", err)
	}

	return nil
}
