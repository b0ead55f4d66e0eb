package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOfficerID      = errors.New("officer_id is required")
	ErrInvalidOfficerName    = errors.New("officer name is required")
	ErrInvalidPositionID     = errors.New("position_id is required")
	ErrInvalidPositionTitle  = errors.New("position_title is required")
	ErrInvalidIncumbentID    = errors.New("incumbent_id cannot be blank")
	ErrInvalidCompetencyID   = errors.New("invalid competency_id")
	ErrInvalidCompetencyName = errors.New("competency_name is required")
	ErrInvalidMaxPLLevel     = errors.New("max_pl_level must be between 1 and 5")
	ErrInvalidAchievedLevel  = errors.New("achieved_pl_level must be between 1 and 5")
	ErrInvalidStintID        = errors.New("invalid stint_id")
	ErrInvalidStintName      = errors.New("stint_name is required")
	ErrInvalidYear           = errors.New("invalid year")
	ErrInvalidRemarkDate     = errors.New("remark_date must be formatted as YYYY-MM-DD")
	ErrEmptyRemarkDetails    = errors.New("remark details are required")
	ErrIdentifierTooLong     = errors.New("identifier is too long")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided for update")
)
