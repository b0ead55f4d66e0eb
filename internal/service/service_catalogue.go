package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/models"
)

type competencyService struct {
	competencyRepository store.CompetencyRepository

	logger *logger.Logger
}

func NewCompetencyService(competencyRepository store.CompetencyRepository, logger *logger.Logger) CompetencyService {
	return &competencyService{
		competencyRepository: competencyRepository,
		logger:               logger,
	}
}

func (c *competencyService) ListCompetencies(ctx context.Context) ([]models.HRCompetency, error) {
	competencies, err := c.competencyRepository.ListCompetencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing competencies: %w", err)
	}
	return competencies, nil
}

func (c *competencyService) GetCompetency(ctx context.Context, competencyID int64) (models.HRCompetency, error) {
	competency, err := c.competencyRepository.GetCompetency(ctx, competencyID)
	if err != nil {
		return models.HRCompetency{}, fmt.Errorf("error getting competency %d: %w", competencyID, err)
	}
	return competency, nil
}

func (c *competencyService) CreateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error) {
	created, err := c.competencyRepository.CreateCompetency(ctx, competency)
	if err != nil {
		return models.HRCompetency{}, fmt.Errorf("error creating competency: %w", err)
	}
	return created, nil
}

func (c *competencyService) UpdateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error) {
	updated, err := c.competencyRepository.UpdateCompetency(ctx, competency)
	if err != nil {
		return models.HRCompetency{}, fmt.Errorf("error updating competency %d: %w", competency.CompetencyID, err)
	}
	return updated, nil
}

func (c *competencyService) DeleteCompetency(ctx context.Context, competencyID int64) error {
	if err := c.competencyRepository.DeleteCompetency(ctx, competencyID); err != nil {
		return fmt.Errorf("error deleting competency %d: %w", competencyID, err)
	}
	return nil
}

type stintService struct {
	stintRepository store.StintRepository

	logger *logger.Logger
}

func NewStintService(stintRepository store.StintRepository, logger *logger.Logger) StintService {
	return &stintService{
		stintRepository: stintRepository,
		logger:          logger,
	}
}

func (s *stintService) ListStints(ctx context.Context) ([]models.OOAStint, error) {
	stints, err := s.stintRepository.ListStints(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing stints: %w", err)
	}
	return stints, nil
}

func (s *stintService) GetStint(ctx context.Context, stintID int64) (models.OOAStint, error) {
	stint, err := s.stintRepository.GetStint(ctx, stintID)
	if err != nil {
		return models.OOAStint{}, fmt.Errorf("error getting stint %d: %w", stintID, err)
	}
	return stint, nil
}

func (s *stintService) CreateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error) {
	created, err := s.stintRepository.CreateStint(ctx, stint)
	if err != nil {
		return models.OOAStint{}, fmt.Errorf("error creating stint: %w", err)
	}
	return created, nil
}

func (s *stintService) UpdateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error) {
	updated, err := s.stintRepository.UpdateStint(ctx, stint)
	if err != nil {
		return models.OOAStint{}, fmt.Errorf("error updating stint %d: %w", stint.StintID, err)
	}
	return updated, nil
}

func (s *stintService) DeleteStint(ctx context.Context, stintID int64) error {
	if err := s.stintRepository.DeleteStint(ctx, stintID); err != nil {
		return fmt.Errorf("error deleting stint %d: %w", stintID, err)
	}
	return nil
}
