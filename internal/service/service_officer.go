package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/models"
)

type officerService struct {
	officerRepository    store.OfficerRepository
	competencyRepository store.CompetencyRepository
	stintRepository      store.StintRepository
	remarkRepository     store.RemarkRepository

	logger *logger.Logger
}

func NewOfficerService(
	officerRepository store.OfficerRepository,
	competencyRepository store.CompetencyRepository,
	stintRepository store.StintRepository,
	remarkRepository store.RemarkRepository,
	logger *logger.Logger,
) OfficerService {
	return &officerService{
		officerRepository:    officerRepository,
		competencyRepository: competencyRepository,
		stintRepository:      stintRepository,
		remarkRepository:     remarkRepository,
		logger:               logger,
	}
}

func (o *officerService) ListOfficers(ctx context.Context) ([]models.Officer, error) {
	officers, err := o.officerRepository.ListOfficers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing officers: %w", err)
	}
	return officers, nil
}

// GetOfficer assembles the officer together with assessments, stints,
// remarks, held positions and the tiers the officer is lined up for.
func (o *officerService) GetOfficer(ctx context.Context, officerID string) (models.OfficerDetail, error) {
	officer, err := o.officerRepository.GetOfficer(ctx, officerID)
	if err != nil {
		return models.OfficerDetail{}, fmt.Errorf("error getting officer %s: %w", officerID, err)
	}

	detail := models.OfficerDetail{Officer: officer}

	if detail.Competencies, err = o.officerRepository.ListOfficerCompetencies(ctx, officerID); err != nil {
		return models.OfficerDetail{}, fmt.Errorf("error listing competencies of %s: %w", officerID, err)
	}
	if detail.Stints, err = o.officerRepository.ListOfficerStints(ctx, officerID); err != nil {
		return models.OfficerDetail{}, fmt.Errorf("error listing stints of %s: %w", officerID, err)
	}
	if detail.Remarks, err = o.remarkRepository.ListRemarks(ctx, officerID); err != nil {
		return models.OfficerDetail{}, fmt.Errorf("error listing remarks of %s: %w", officerID, err)
	}
	if detail.IncumbentOf, err = o.officerRepository.ListIncumbentPositions(ctx, officerID); err != nil {
		return models.OfficerDetail{}, fmt.Errorf("error listing positions held by %s: %w", officerID, err)
	}
	if detail.SuccessorFor, err = o.officerRepository.ListSuccessorPositions(ctx, officerID); err != nil {
		return models.OfficerDetail{}, fmt.Errorf("error listing successions of %s: %w", officerID, err)
	}

	return detail, nil
}

func (o *officerService) CreateOfficer(ctx context.Context, officer models.Officer) (models.Officer, error) {
	created, err := o.officerRepository.CreateOfficer(ctx, officer)
	if err != nil {
		return models.Officer{}, fmt.Errorf("error creating officer: %w", err)
	}
	return created, nil
}

func (o *officerService) UpdateOfficer(ctx context.Context, update models.OfficerUpdate) (models.Officer, error) {
	updated, err := o.officerRepository.UpdateOfficer(ctx, update)
	if err != nil {
		return models.Officer{}, fmt.Errorf("error updating officer %s: %w", update.OfficerID, err)
	}
	return updated, nil
}

func (o *officerService) DeleteOfficer(ctx context.Context, officerID string) error {
	if err := o.officerRepository.DeleteOfficer(ctx, officerID); err != nil {
		return fmt.Errorf("error deleting officer %s: %w", officerID, err)
	}
	return nil
}

// SetOfficerCompetency records the achieved level of a competency. The level
// may not exceed the competency's max_pl_level.
func (o *officerService) SetOfficerCompetency(ctx context.Context, competency models.OfficerCompetency) (models.OfficerCompetency, error) {
	if _, err := o.officerRepository.GetOfficer(ctx, competency.OfficerID); err != nil {
		return models.OfficerCompetency{}, fmt.Errorf("error getting officer %s: %w", competency.OfficerID, err)
	}

	hrCompetency, err := o.competencyRepository.GetCompetency(ctx, competency.CompetencyID)
	if errors.Is(err, store.ErrNotFound) {
		return models.OfficerCompetency{}, fmt.Errorf("%w: competency %d", store.ErrReferenceNotFound, competency.CompetencyID)
	}
	if err != nil {
		return models.OfficerCompetency{}, fmt.Errorf("error getting competency %d: %w", competency.CompetencyID, err)
	}

	if competency.AchievedPLLevel > hrCompetency.MaxPLLevel {
		return models.OfficerCompetency{}, fmt.Errorf("%w: %d > %d", ErrLevelExceedsMax, competency.AchievedPLLevel, hrCompetency.MaxPLLevel)
	}

	saved, err := o.officerRepository.UpsertOfficerCompetency(ctx, competency)
	if err != nil {
		return models.OfficerCompetency{}, fmt.Errorf("error saving competency of %s: %w", competency.OfficerID, err)
	}

	saved.CompetencyName = hrCompetency.CompetencyName
	saved.MaxPLLevel = hrCompetency.MaxPLLevel
	return saved, nil
}

func (o *officerService) RemoveOfficerCompetency(ctx context.Context, officerID string, competencyID int64) error {
	if err := o.officerRepository.DeleteOfficerCompetency(ctx, officerID, competencyID); err != nil {
		return fmt.Errorf("error removing competency %d of %s: %w", competencyID, officerID, err)
	}
	return nil
}

// AddOfficerStint records that the officer completed a stint. Recording the
// same stint again overwrites its completion year.
func (o *officerService) AddOfficerStint(ctx context.Context, stint models.OfficerStint) (models.OfficerStint, error) {
	if _, err := o.officerRepository.GetOfficer(ctx, stint.OfficerID); err != nil {
		return models.OfficerStint{}, fmt.Errorf("error getting officer %s: %w", stint.OfficerID, err)
	}

	ooaStint, err := o.stintRepository.GetStint(ctx, stint.StintID)
	if errors.Is(err, store.ErrNotFound) {
		return models.OfficerStint{}, fmt.Errorf("%w: stint %d", store.ErrReferenceNotFound, stint.StintID)
	}
	if err != nil {
		return models.OfficerStint{}, fmt.Errorf("error getting stint %d: %w", stint.StintID, err)
	}

	saved, err := o.officerRepository.UpsertOfficerStint(ctx, stint)
	if err != nil {
		return models.OfficerStint{}, fmt.Errorf("error saving stint of %s: %w", stint.OfficerID, err)
	}

	saved.StintName = ooaStint.StintName
	saved.StintType = ooaStint.StintType
	saved.Year = ooaStint.Year
	return saved, nil
}

func (o *officerService) RemoveOfficerStint(ctx context.Context, officerID string, stintID int64) error {
	if err := o.officerRepository.DeleteOfficerStint(ctx, officerID, stintID); err != nil {
		return fmt.Errorf("error removing stint %d of %s: %w", stintID, officerID, err)
	}
	return nil
}
