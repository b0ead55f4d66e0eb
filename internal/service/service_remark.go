package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/models"
)

// remarkService exposes the append-only remark log. There is deliberately no
// edit or delete.
type remarkService struct {
	remarkRepository  store.RemarkRepository
	officerRepository store.OfficerRepository

	logger *logger.Logger
}

func NewRemarkService(remarkRepository store.RemarkRepository, officerRepository store.OfficerRepository, logger *logger.Logger) RemarkService {
	return &remarkService{
		remarkRepository:  remarkRepository,
		officerRepository: officerRepository,
		logger:            logger,
	}
}

// ListRemarks returns the officer's remarks, newest first. An unknown
// officer yields store.ErrNotFound rather than an empty list.
func (r *remarkService) ListRemarks(ctx context.Context, officerID string) ([]models.OfficerRemark, error) {
	if _, err := r.officerRepository.GetOfficer(ctx, officerID); err != nil {
		return nil, fmt.Errorf("error getting officer %s: %w", officerID, err)
	}

	remarks, err := r.remarkRepository.ListRemarks(ctx, officerID)
	if err != nil {
		return nil, fmt.Errorf("error listing remarks of %s: %w", officerID, err)
	}
	return remarks, nil
}

func (r *remarkService) AddRemark(ctx context.Context, remark models.OfficerRemark) (models.OfficerRemark, error) {
	created, err := r.remarkRepository.AddRemark(ctx, remark)
	if err != nil {
		return models.OfficerRemark{}, fmt.Errorf("error adding remark for %s: %w", remark.OfficerID, err)
	}
	return created, nil
}
