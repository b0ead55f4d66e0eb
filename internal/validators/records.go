package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/chronos/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldOfficerID       = "officer_id"
	FieldName            = "name"
	FieldPositionID      = "position_id"
	FieldPositionTitle   = "position_title"
	FieldIncumbentID     = "incumbent_id"
	FieldCompetencyID    = "competency_id"
	FieldCompetencyName  = "competency_name"
	FieldMaxPLLevel      = "max_pl_level"
	FieldAchievedPLLevel = "achieved_pl_level"
	FieldStintID         = "stint_id"
	FieldStintName       = "stint_name"
	FieldYear            = "year"
	FieldCompletionYear  = "completion_year"
	FieldRemarkDate      = "remark_date"
	FieldDetails         = "details"
	FieldUpdate          = "update"
)

const (
	maxIdentifierLength = 64

	// minYear and maxYear bound stint and completion years. Zero means
	// "not recorded" and is always accepted.
	minYear = 1900
	maxYear = 2100
)

// RecordValidator implements [Validator] for the succession-planning records:
// officers, positions, competencies, stints, their assignments and remarks.
//
// Both values and pointers are accepted.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator and returns it as the
// Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Officer:
		return v.validateOfficer(value, fields...)
	case *models.Officer:
		return v.validateOfficer(*value, fields...)

	case models.OfficerUpdate:
		return v.validateOfficerUpdate(value, fields...)
	case *models.OfficerUpdate:
		return v.validateOfficerUpdate(*value, fields...)

	case models.Position:
		return v.validatePosition(value, fields...)
	case *models.Position:
		return v.validatePosition(*value, fields...)

	case models.PositionUpdate:
		return v.validatePositionUpdate(value, fields...)
	case *models.PositionUpdate:
		return v.validatePositionUpdate(*value, fields...)

	case models.HRCompetency:
		return v.validateCompetency(value, fields...)
	case *models.HRCompetency:
		return v.validateCompetency(*value, fields...)

	case models.OfficerCompetency:
		return v.validateOfficerCompetency(value, fields...)
	case *models.OfficerCompetency:
		return v.validateOfficerCompetency(*value, fields...)

	case models.OOAStint:
		return v.validateStint(value, fields...)
	case *models.OOAStint:
		return v.validateStint(*value, fields...)

	case models.OfficerStint:
		return v.validateOfficerStint(value, fields...)
	case *models.OfficerStint:
		return v.validateOfficerStint(*value, fields...)

	case models.OfficerRemark:
		return v.validateRemark(value, fields...)
	case *models.OfficerRemark:
		return v.validateRemark(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func checkIdentifier(id string, blank error) error {
	if strings.TrimSpace(id) == "" {
		return blank
	}
	if len(id) > maxIdentifierLength {
		return ErrIdentifierTooLong
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidLevel(level int) bool {
	return level >= 1 && level <= models.MaxProficiencyLevel
}

func isValidYear(year int) bool {
	return year == 0 || (year >= minYear && year <= maxYear)
}

func (v *RecordValidator) validateOfficer(officer models.Officer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOfficerID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldOfficerID:
			if err := checkIdentifier(officer.OfficerID, ErrInvalidOfficerID); err != nil {
				return err
			}
		case FieldName:
			if isBlank(officer.Name) {
				return ErrInvalidOfficerName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateOfficerUpdate(update models.OfficerUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOfficerID, FieldName, FieldUpdate}
	}

	for _, f := range fields {
		switch f {
		case FieldOfficerID:
			if err := checkIdentifier(update.OfficerID, ErrInvalidOfficerID); err != nil {
				return err
			}
		case FieldName:
			if update.Name != nil && isBlank(*update.Name) {
				return ErrInvalidOfficerName
			}
		case FieldUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePosition(position models.Position, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPositionID, FieldPositionTitle, FieldIncumbentID}
	}

	for _, f := range fields {
		switch f {
		case FieldPositionID:
			if err := checkIdentifier(position.PositionID, ErrInvalidPositionID); err != nil {
				return err
			}
		case FieldPositionTitle:
			if isBlank(position.PositionTitle) {
				return ErrInvalidPositionTitle
			}
		case FieldIncumbentID:
			if position.IncumbentID != nil && isBlank(*position.IncumbentID) {
				return ErrInvalidIncumbentID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePositionUpdate(update models.PositionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPositionID, FieldPositionTitle, FieldIncumbentID, FieldUpdate}
	}

	for _, f := range fields {
		switch f {
		case FieldPositionID:
			if err := checkIdentifier(update.PositionID, ErrInvalidPositionID); err != nil {
				return err
			}
		case FieldPositionTitle:
			if update.PositionTitle != nil && isBlank(*update.PositionTitle) {
				return ErrInvalidPositionTitle
			}
		case FieldIncumbentID:
			if !update.ClearIncumbent && update.IncumbentID != nil && isBlank(*update.IncumbentID) {
				return ErrInvalidIncumbentID
			}
		case FieldUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateCompetency(competency models.HRCompetency, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompetencyName, FieldMaxPLLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldCompetencyID:
			if competency.CompetencyID <= 0 {
				return ErrInvalidCompetencyID
			}
		case FieldCompetencyName:
			if isBlank(competency.CompetencyName) {
				return ErrInvalidCompetencyName
			}
		case FieldMaxPLLevel:
			if !isValidLevel(competency.MaxPLLevel) {
				return ErrInvalidMaxPLLevel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateOfficerCompetency(competency models.OfficerCompetency, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOfficerID, FieldCompetencyID, FieldAchievedPLLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldOfficerID:
			if err := checkIdentifier(competency.OfficerID, ErrInvalidOfficerID); err != nil {
				return err
			}
		case FieldCompetencyID:
			if competency.CompetencyID <= 0 {
				return ErrInvalidCompetencyID
			}
		case FieldAchievedPLLevel:
			if !isValidLevel(competency.AchievedPLLevel) {
				return ErrInvalidAchievedLevel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateStint(stint models.OOAStint, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStintName, FieldYear}
	}

	for _, f := range fields {
		switch f {
		case FieldStintID:
			if stint.StintID <= 0 {
				return ErrInvalidStintID
			}
		case FieldStintName:
			if isBlank(stint.StintName) {
				return ErrInvalidStintName
			}
		case FieldYear:
			if !isValidYear(stint.Year) {
				return ErrInvalidYear
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateOfficerStint(stint models.OfficerStint, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOfficerID, FieldStintID, FieldCompletionYear}
	}

	for _, f := range fields {
		switch f {
		case FieldOfficerID:
			if err := checkIdentifier(stint.OfficerID, ErrInvalidOfficerID); err != nil {
				return err
			}
		case FieldStintID:
			if stint.StintID <= 0 {
				return ErrInvalidStintID
			}
		case FieldCompletionYear:
			if !isValidYear(stint.CompletionYear) {
				return ErrInvalidYear
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateRemark(remark models.OfficerRemark, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOfficerID, FieldRemarkDate, FieldDetails}
	}

	for _, f := range fields {
		switch f {
		case FieldOfficerID:
			if err := checkIdentifier(remark.OfficerID, ErrInvalidOfficerID); err != nil {
				return err
			}
		case FieldRemarkDate:
			if _, err := time.Parse(models.RemarkDateLayout, remark.RemarkDate); err != nil {
				return ErrInvalidRemarkDate
			}
		case FieldDetails:
			if isBlank(remark.Details) {
				return ErrEmptyRemarkDetails
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
