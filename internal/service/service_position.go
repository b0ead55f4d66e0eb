package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/models"
)

type positionService struct {
	positionRepository store.PositionRepository

	logger *logger.Logger
}

func NewPositionService(positionRepository store.PositionRepository, logger *logger.Logger) PositionService {
	return &positionService{
		positionRepository: positionRepository,
		logger:             logger,
	}
}

// ListPositions returns every position with its incumbent and successors.
func (p *positionService) ListPositions(ctx context.Context) ([]models.PositionWithSuccessors, error) {
	positions, err := p.positionRepository.ListPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing positions: %w", err)
	}

	links, err := p.positionRepository.ListSuccessorLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing successors: %w", err)
	}

	grouped := groupLinksByPosition(links)
	for i := range positions {
		positions[i] = BucketSuccessors(positions[i], grouped[positions[i].PositionID])
	}

	return positions, nil
}

func (p *positionService) GetPosition(ctx context.Context, positionID string) (models.PositionWithSuccessors, error) {
	position, err := p.positionRepository.GetPosition(ctx, positionID)
	if err != nil {
		return models.PositionWithSuccessors{}, fmt.Errorf("error getting position %s: %w", positionID, err)
	}

	links, err := p.positionRepository.ListSuccessorLinks(ctx, positionID)
	if err != nil {
		return models.PositionWithSuccessors{}, fmt.Errorf("error listing successors of %s: %w", positionID, err)
	}

	return BucketSuccessors(position, links), nil
}

// CreatePosition inserts the position and then applies the requested
// successor tiers. The position is the source of truth: successor write
// failures are logged and the created position is still returned.
func (p *positionService) CreatePosition(ctx context.Context, request models.CreatePositionRequest) (models.PositionWithSuccessors, error) {
	log := logger.FromContext(ctx)

	created, err := p.positionRepository.CreatePosition(ctx, request.Position)
	if err != nil {
		return models.PositionWithSuccessors{}, fmt.Errorf("error creating position: %w", err)
	}

	tiers := request.SuccessorIDs()
	for _, tier := range models.SuccessionTypes {
		ids, ok := tiers[tier]
		if !ok {
			continue
		}
		if err = p.positionRepository.ReplaceSuccessors(ctx, created.PositionID, tier, dedupIDs(ids)); err != nil {
			log.Warn().Err(err).
				Str("position_id", created.PositionID).
				Str("succession_type", string(tier)).
				Msg("successors were not saved for created position")
		}
	}

	position, err := p.GetPosition(ctx, created.PositionID)
	if err != nil {
		log.Warn().Err(err).Str("position_id", created.PositionID).Msg("error reading created position back")
		return BucketSuccessors(models.PositionWithSuccessors{Position: created}, nil), nil
	}

	return position, nil
}

func (p *positionService) UpdatePosition(ctx context.Context, update models.PositionUpdate) (models.PositionWithSuccessors, error) {
	if _, err := p.positionRepository.UpdatePosition(ctx, update); err != nil {
		return models.PositionWithSuccessors{}, fmt.Errorf("error updating position %s: %w", update.PositionID, err)
	}

	return p.GetPosition(ctx, update.PositionID)
}

func (p *positionService) DeletePosition(ctx context.Context, positionID string) error {
	if err := p.positionRepository.DeletePosition(ctx, positionID); err != nil {
		return fmt.Errorf("error deleting position %s: %w", positionID, err)
	}
	return nil
}

// SetSuccessors replaces the tier of the position with officerIDs, leaving
// the other tiers untouched. An empty list clears the tier.
func (p *positionService) SetSuccessors(ctx context.Context, positionID string, tier models.SuccessionType, officerIDs []string) (models.PositionWithSuccessors, error) {
	if !tier.IsValid() {
		return models.PositionWithSuccessors{}, ErrInvalidSuccessionType
	}

	if err := p.positionRepository.ReplaceSuccessors(ctx, positionID, tier, dedupIDs(officerIDs)); err != nil {
		return models.PositionWithSuccessors{}, fmt.Errorf("error replacing %s successors of %s: %w", tier, positionID, err)
	}

	return p.GetPosition(ctx, positionID)
}
