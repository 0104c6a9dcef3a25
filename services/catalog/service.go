package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"condoreserve/models"
)

// Rule defaults applied when the field is omitted at creation time.
const (
	defaultMaxReservationsPerDay     = 1
	defaultCancellationDeadlineHours = 24
	defaultMaxAdvanceBookingDays     = 90
)

func (s *DefaultAreaCatalog) CreateArea(ctx context.Context, actor models.Actor, input CreateAreaInput) (*models.Area, error) {
	if !actor.Role.IsManager() {
		return nil, newError(CodePermission, "only manager roles may create areas", nil)
	}
	if input.Name == "" {
		return nil, newError(CodeValidation, "area name is required", nil)
	}

	rules, err := rulesFromPatch(defaultRules(), input.Rules)
	if err != nil {
		return nil, err
	}
	days := input.AvailableDays
	if len(days) == 0 {
		days = []int{0, 1, 2, 3, 4, 5, 6}
	}
	if err := validateDays(days); err != nil {
		return nil, err
	}
	if err := validateSlots(input.AvailableSlots); err != nil {
		return nil, err
	}

	// Reject a duplicate active name before inserting; the partial
	// unique index backstops the check.
	existing, err := s.Repo.GetActiveByName(ctx, actor.CondominiumID, input.Name)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to check area name: %w", err)
	}
	if existing != nil {
		return nil, newError(CodeDuplicateName, "an active area with this name already exists",
			map[string]any{"name": input.Name})
	}

	now := time.Now()
	area := &models.Area{
		CondominiumID:  actor.CondominiumID,
		Name:           input.Name,
		Description:    input.Description,
		Rules:          rules,
		AvailableSlots: input.AvailableSlots,
		AvailableDays:  days,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to create area: %w", err)
	}
	return area, nil
}

func (s *DefaultAreaCatalog) UpdateArea(ctx context.Context, actor models.Actor, areaID string, patch models.AreaPatch) (*models.Area, error) {
	if !actor.Role.IsManager() {
		return nil, newError(CodePermission, "only manager roles may update areas", nil)
	}

	area, err := s.Repo.GetByID(ctx, actor.CondominiumID, areaID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, newError(CodeNotFound, "area not found", map[string]any{"areaId": areaID})
		}
		return nil, fmt.Errorf("failed to load area: %w", err)
	}

	if patch.Name != nil && *patch.Name != area.Name {
		if *patch.Name == "" {
			return nil, newError(CodeValidation, "area name is required", nil)
		}
		existing, err := s.Repo.GetActiveByName(ctx, actor.CondominiumID, *patch.Name)
		if err != nil && err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to check area name: %w", err)
		}
		if existing != nil && existing.ID != area.ID {
			return nil, newError(CodeDuplicateName, "an active area with this name already exists",
				map[string]any{"name": *patch.Name})
		}
		area.Name = *patch.Name
	}
	if patch.Description != nil {
		area.Description = *patch.Description
	}
	if patch.Rules != nil {
		// Merge onto the stored values: unspecified sub-fields keep
		// what is already persisted.
		merged, err := rulesFromPatch(area.Rules, *patch.Rules)
		if err != nil {
			return nil, err
		}
		area.Rules = merged
	}
	if patch.AvailableSlots != nil {
		if err := validateSlots(*patch.AvailableSlots); err != nil {
			return nil, err
		}
		area.AvailableSlots = *patch.AvailableSlots
	}
	if patch.AvailableDays != nil {
		if err := validateDays(*patch.AvailableDays); err != nil {
			return nil, err
		}
		area.AvailableDays = *patch.AvailableDays
	}
	area.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to update area: %w", err)
	}
	return area, nil
}

func (s *DefaultAreaCatalog) DeactivateArea(ctx context.Context, actor models.Actor, areaID string) error {
	if !actor.Role.IsManager() {
		return newError(CodePermission, "only manager roles may deactivate areas", nil)
	}
	if err := s.Repo.Deactivate(ctx, actor.CondominiumID, areaID); err != nil {
		if err == mongo.ErrNoDocuments {
			return newError(CodeNotFound, "area not found", map[string]any{"areaId": areaID})
		}
		return fmt.Errorf("failed to deactivate area: %w", err)
	}
	return nil
}

func (s *DefaultAreaCatalog) GetArea(ctx context.Context, actor models.Actor, areaID string) (*models.Area, error) {
	area, err := s.Repo.GetByID(ctx, actor.CondominiumID, areaID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, newError(CodeNotFound, "area not found", map[string]any{"areaId": areaID})
		}
		return nil, fmt.Errorf("failed to load area: %w", err)
	}
	return area, nil
}

func (s *DefaultAreaCatalog) ListAreas(ctx context.Context, actor models.Actor, activeOnly bool) ([]models.Area, error) {
	areas, err := s.Repo.ListByCondominium(ctx, actor.CondominiumID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

func defaultRules() models.AreaRules {
	return models.AreaRules{
		MaxReservationsPerDay:     defaultMaxReservationsPerDay,
		CancellationDeadlineHours: defaultCancellationDeadlineHours,
		MaxAdvanceBookingDays:     defaultMaxAdvanceBookingDays,
	}
}

// rulesFromPatch merges a partial rules update onto base, validating
// the resulting values.
func rulesFromPatch(base models.AreaRules, patch models.AreaRulesPatch) (models.AreaRules, error) {
	if patch.MaxReservationsPerDay != nil {
		base.MaxReservationsPerDay = *patch.MaxReservationsPerDay
	}
	if patch.Capacity != nil {
		base.Capacity = patch.Capacity
	}
	if patch.Fee != nil {
		base.Fee = *patch.Fee
	}
	if patch.FeePercentage != nil {
		base.FeePercentage = *patch.FeePercentage
	}
	if patch.CancellationDeadlineHours != nil {
		base.CancellationDeadlineHours = *patch.CancellationDeadlineHours
	}
	if patch.MinAdvanceBookingHours != nil {
		base.MinAdvanceBookingHours = *patch.MinAdvanceBookingHours
	}
	if patch.MaxAdvanceBookingDays != nil {
		base.MaxAdvanceBookingDays = *patch.MaxAdvanceBookingDays
	}
	if patch.RequiresApproval != nil {
		base.RequiresApproval = *patch.RequiresApproval
	}

	if base.MaxReservationsPerDay < 1 {
		return base, newError(CodeValidation, "maxReservationsPerDay must be at least 1", nil)
	}
	if base.Fee < 0 {
		return base, newError(CodeValidation, "fee must not be negative", nil)
	}
	if base.FeePercentage < 0 || base.FeePercentage > 100 {
		return base, newError(CodeValidation, "feePercentage must be between 0 and 100", nil)
	}
	if base.CancellationDeadlineHours < 0 || base.MinAdvanceBookingHours < 0 || base.MaxAdvanceBookingDays < 0 {
		return base, newError(CodeValidation, "time-window rules must not be negative", nil)
	}
	return base, nil
}

func validateDays(days []int) error {
	for _, d := range days {
		if d < 0 || d > 6 {
			return newError(CodeValidation, "availableDays entries must be weekday indices 0-6",
				map[string]any{"day": d})
		}
	}
	return nil
}

func validateSlots(slots []string) error {
	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		if s == "" {
			return newError(CodeValidation, "slot labels must not be empty", nil)
		}
		if seen[s] {
			return newError(CodeValidation, "slot labels must be unique", map[string]any{"slot": s})
		}
		seen[s] = true
	}
	return nil
}
