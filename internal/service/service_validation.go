package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chronos/internal/validators"
	"github.com/MKhiriev/chronos/models"
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// OfficerValidationService rejects malformed officer input before it reaches
// the wrapped OfficerService.
type OfficerValidationService struct {
	inner     OfficerService
	validator validators.Validator
}

func NewOfficerValidationService() OfficerServiceWrapper {
	return &OfficerValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *OfficerValidationService) Wrap(wrapped OfficerService) OfficerService {
	v.inner = wrapped
	return v
}

func (v *OfficerValidationService) checkOfficerID(ctx context.Context, officerID string) error {
	if err := v.validator.Validate(ctx, models.Officer{OfficerID: officerID}, validators.FieldOfficerID); err != nil {
		return validationError(err)
	}
	return nil
}

func (v *OfficerValidationService) ListOfficers(ctx context.Context) ([]models.Officer, error) {
	return v.inner.ListOfficers(ctx)
}

func (v *OfficerValidationService) GetOfficer(ctx context.Context, officerID string) (models.OfficerDetail, error) {
	if err := v.checkOfficerID(ctx, officerID); err != nil {
		return models.OfficerDetail{}, err
	}
	return v.inner.GetOfficer(ctx, officerID)
}

func (v *OfficerValidationService) CreateOfficer(ctx context.Context, officer models.Officer) (models.Officer, error) {
	if err := v.validator.Validate(ctx, officer); err != nil {
		return models.Officer{}, validationError(err)
	}
	return v.inner.CreateOfficer(ctx, officer)
}

func (v *OfficerValidationService) UpdateOfficer(ctx context.Context, update models.OfficerUpdate) (models.Officer, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Officer{}, validationError(err)
	}
	return v.inner.UpdateOfficer(ctx, update)
}

func (v *OfficerValidationService) DeleteOfficer(ctx context.Context, officerID string) error {
	if err := v.checkOfficerID(ctx, officerID); err != nil {
		return err
	}
	return v.inner.DeleteOfficer(ctx, officerID)
}

func (v *OfficerValidationService) SetOfficerCompetency(ctx context.Context, competency models.OfficerCompetency) (models.OfficerCompetency, error) {
	if err := v.validator.Validate(ctx, competency); err != nil {
		return models.OfficerCompetency{}, validationError(err)
	}
	return v.inner.SetOfficerCompetency(ctx, competency)
}

func (v *OfficerValidationService) RemoveOfficerCompetency(ctx context.Context, officerID string, competencyID int64) error {
	competency := models.OfficerCompetency{OfficerID: officerID, CompetencyID: competencyID}
	if err := v.validator.Validate(ctx, competency, validators.FieldOfficerID, validators.FieldCompetencyID); err != nil {
		return validationError(err)
	}
	return v.inner.RemoveOfficerCompetency(ctx, officerID, competencyID)
}

func (v *OfficerValidationService) AddOfficerStint(ctx context.Context, stint models.OfficerStint) (models.OfficerStint, error) {
	if err := v.validator.Validate(ctx, stint); err != nil {
		return models.OfficerStint{}, validationError(err)
	}
	return v.inner.AddOfficerStint(ctx, stint)
}

func (v *OfficerValidationService) RemoveOfficerStint(ctx context.Context, officerID string, stintID int64) error {
	stint := models.OfficerStint{OfficerID: officerID, StintID: stintID}
	if err := v.validator.Validate(ctx, stint, validators.FieldOfficerID, validators.FieldStintID); err != nil {
		return validationError(err)
	}
	return v.inner.RemoveOfficerStint(ctx, officerID, stintID)
}

// PositionValidationService rejects malformed position input before it
// reaches the wrapped PositionService.
type PositionValidationService struct {
	inner     PositionService
	validator validators.Validator
}

func NewPositionValidationService() PositionServiceWrapper {
	return &PositionValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *PositionValidationService) Wrap(wrapped PositionService) PositionService {
	v.inner = wrapped
	return v
}

func (v *PositionValidationService) checkPositionID(ctx context.Context, positionID string) error {
	if err := v.validator.Validate(ctx, models.Position{PositionID: positionID}, validators.FieldPositionID); err != nil {
		return validationError(err)
	}
	return nil
}

func (v *PositionValidationService) ListPositions(ctx context.Context) ([]models.PositionWithSuccessors, error) {
	return v.inner.ListPositions(ctx)
}

func (v *PositionValidationService) GetPosition(ctx context.Context, positionID string) (models.PositionWithSuccessors, error) {
	if err := v.checkPositionID(ctx, positionID); err != nil {
		return models.PositionWithSuccessors{}, err
	}
	return v.inner.GetPosition(ctx, positionID)
}

func (v *PositionValidationService) CreatePosition(ctx context.Context, request models.CreatePositionRequest) (models.PositionWithSuccessors, error) {
	if err := v.validator.Validate(ctx, request.Position); err != nil {
		return models.PositionWithSuccessors{}, validationError(err)
	}
	return v.inner.CreatePosition(ctx, request)
}

func (v *PositionValidationService) UpdatePosition(ctx context.Context, update models.PositionUpdate) (models.PositionWithSuccessors, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.PositionWithSuccessors{}, validationError(err)
	}
	return v.inner.UpdatePosition(ctx, update)
}

func (v *PositionValidationService) DeletePosition(ctx context.Context, positionID string) error {
	if err := v.checkPositionID(ctx, positionID); err != nil {
		return err
	}
	return v.inner.DeletePosition(ctx, positionID)
}

func (v *PositionValidationService) SetSuccessors(ctx context.Context, positionID string, tier models.SuccessionType, officerIDs []string) (models.PositionWithSuccessors, error) {
	if err := v.checkPositionID(ctx, positionID); err != nil {
		return models.PositionWithSuccessors{}, err
	}
	for _, officerID := range officerIDs {
		if err := v.validator.Validate(ctx, models.Officer{OfficerID: officerID}, validators.FieldOfficerID); err != nil {
			return models.PositionWithSuccessors{}, validationError(err)
		}
	}
	return v.inner.SetSuccessors(ctx, positionID, tier, officerIDs)
}

type CompetencyValidationService struct {
	inner     CompetencyService
	validator validators.Validator
}

func NewCompetencyValidationService() CompetencyServiceWrapper {
	return &CompetencyValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *CompetencyValidationService) Wrap(wrapped CompetencyService) CompetencyService {
	v.inner = wrapped
	return v
}

func (v *CompetencyValidationService) checkCompetencyID(ctx context.Context, competencyID int64) error {
	if err := v.validator.Validate(ctx, models.HRCompetency{CompetencyID: competencyID}, validators.FieldCompetencyID); err != nil {
		return validationError(err)
	}
	return nil
}

func (v *CompetencyValidationService) ListCompetencies(ctx context.Context) ([]models.HRCompetency, error) {
	return v.inner.ListCompetencies(ctx)
}

func (v *CompetencyValidationService) GetCompetency(ctx context.Context, competencyID int64) (models.HRCompetency, error) {
	if err := v.checkCompetencyID(ctx, competencyID); err != nil {
		return models.HRCompetency{}, err
	}
	return v.inner.GetCompetency(ctx, competencyID)
}

func (v *CompetencyValidationService) CreateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error) {
	if err := v.validator.Validate(ctx, competency); err != nil {
		return models.HRCompetency{}, validationError(err)
	}
	return v.inner.CreateCompetency(ctx, competency)
}

func (v *CompetencyValidationService) UpdateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error) {
	err := v.validator.Validate(ctx, competency,
		validators.FieldCompetencyID, validators.FieldCompetencyName, validators.FieldMaxPLLevel)
	if err != nil {
		return models.HRCompetency{}, validationError(err)
	}
	return v.inner.UpdateCompetency(ctx, competency)
}

func (v *CompetencyValidationService) DeleteCompetency(ctx context.Context, competencyID int64) error {
	if err := v.checkCompetencyID(ctx, competencyID); err != nil {
		return err
	}
	return v.inner.DeleteCompetency(ctx, competencyID)
}

type StintValidationService struct {
	inner     StintService
	validator validators.Validator
}

func NewStintValidationService() StintServiceWrapper {
	return &StintValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *StintValidationService) Wrap(wrapped StintService) StintService {
	v.inner = wrapped
	return v
}

func (v *StintValidationService) checkStintID(ctx context.Context, stintID int64) error {
	if err := v.validator.Validate(ctx, models.OOAStint{StintID: stintID}, validators.FieldStintID); err != nil {
		return validationError(err)
	}
	return nil
}

func (v *StintValidationService) ListStints(ctx context.Context) ([]models.OOAStint, error) {
	return v.inner.ListStints(ctx)
}

func (v *StintValidationService) GetStint(ctx context.Context, stintID int64) (models.OOAStint, error) {
	if err := v.checkStintID(ctx, stintID); err != nil {
		return models.OOAStint{}, err
	}
	return v.inner.GetStint(ctx, stintID)
}

func (v *StintValidationService) CreateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error) {
	if err := v.validator.Validate(ctx, stint); err != nil {
		return models.OOAStint{}, validationError(err)
	}
	return v.inner.CreateStint(ctx, stint)
}

func (v *StintValidationService) UpdateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error) {
	err := v.validator.Validate(ctx, stint,
		validators.FieldStintID, validators.FieldStintName, validators.FieldYear)
	if err != nil {
		return models.OOAStint{}, validationError(err)
	}
	return v.inner.UpdateStint(ctx, stint)
}

func (v *StintValidationService) DeleteStint(ctx context.Context, stintID int64) error {
	if err := v.checkStintID(ctx, stintID); err != nil {
		return err
	}
	return v.inner.DeleteStint(ctx, stintID)
}

type RemarkValidationService struct {
	inner     RemarkService
	validator validators.Validator
}

func NewRemarkValidationService() RemarkServiceWrapper {
	return &RemarkValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RemarkValidationService) Wrap(wrapped RemarkService) RemarkService {
	v.inner = wrapped
	return v
}

func (v *RemarkValidationService) ListRemarks(ctx context.Context, officerID string) ([]models.OfficerRemark, error) {
	if err := v.validator.Validate(ctx, models.OfficerRemark{OfficerID: officerID}, validators.FieldOfficerID); err != nil {
		return nil, validationError(err)
	}
	return v.inner.ListRemarks(ctx, officerID)
}

func (v *RemarkValidationService) AddRemark(ctx context.Context, remark models.OfficerRemark) (models.OfficerRemark, error) {
	if err := v.validator.Validate(ctx, remark); err != nil {
		return models.OfficerRemark{}, validationError(err)
	}
	return v.inner.AddRemark(ctx, remark)
}
