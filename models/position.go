package models

import "time"

// Position is a post in the organisation that has an incumbent and a
// succession plan.
type Position struct {
	// PositionID is the externally assigned identifier (e.g. "POS000123").
	PositionID    string `json:"position_id"`
	PositionTitle string `json:"position_title"`
	Agency        string `json:"agency"`
	JRGrade       string `json:"jr_grade"`

	// IncumbentID references the officer holding the position, if any.
	IncumbentID *string `json:"incumbent_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Position model.
func (p Position) TableName() string {
	return "positions"
}

// PositionUpdate carries a partial update of a position. Only non-nil
// fields are written. ClearIncumbent sets incumbent_id to NULL and takes
// precedence over IncumbentID.
type PositionUpdate struct {
	PositionID string `json:"-"`

	PositionTitle  *string `json:"position_title,omitempty"`
	Agency         *string `json:"agency,omitempty"`
	JRGrade        *string `json:"jr_grade,omitempty"`
	IncumbentID    *string `json:"incumbent_id,omitempty"`
	ClearIncumbent bool    `json:"clear_incumbent,omitempty"`
}

// IsEmpty reports whether the update does not touch any column.
func (u PositionUpdate) IsEmpty() bool {
	return u.PositionTitle == nil && u.Agency == nil && u.JRGrade == nil &&
		u.IncumbentID == nil && !u.ClearIncumbent
}

// CreatePositionRequest is the body of the position create endpoint.
// Successor arrays are optional and applied on a best-effort basis.
type CreatePositionRequest struct {
	Position

	SuccessorsImmediate      []string `json:"successors_immediate,omitempty"`
	Successors1To2Years      []string `json:"successors_1_2_years,omitempty"`
	Successors3To5Years      []string `json:"successors_3_5_years,omitempty"`
	SuccessorsMoreThan5Years []string `json:"successors_more_than_5_years,omitempty"`
}

// SuccessorIDs returns the requested successor IDs keyed by tier.
// Tiers without IDs are omitted.
func (r CreatePositionRequest) SuccessorIDs() map[SuccessionType][]string {
	tiers := make(map[SuccessionType][]string, len(SuccessionTypes))
	for _, tier := range SuccessionTypes {
		var ids []string
		switch tier {
		case SuccessionImmediate:
			ids = r.SuccessorsImmediate
		case Succession1To2Years:
			ids = r.Successors1To2Years
		case Succession3To5Years:
			ids = r.Successors3To5Years
		case SuccessionMoreThan5Years:
			ids = r.SuccessorsMoreThan5Years
		}
		if len(ids) > 0 {
			tiers[tier] = ids
		}
	}
	return tiers
}

// PositionWithSuccessors is a position augmented with its incumbent and its
// successors bucketed into the four tiers.
type PositionWithSuccessors struct {
	Position

	Incumbent *OfficerSummary `json:"incumbent"`

	SuccessorsImmediate      []OfficerSummary `json:"successors_immediate"`
	Successors1To2Years      []OfficerSummary `json:"successors_1_2_years"`
	Successors3To5Years      []OfficerSummary `json:"successors_3_5_years"`
	SuccessorsMoreThan5Years []OfficerSummary `json:"successors_more_than_5_years"`
}

// Tier returns the bucket for the given succession type.
func (p PositionWithSuccessors) Tier(tier SuccessionType) []OfficerSummary {
	switch tier {
	case SuccessionImmediate:
		return p.SuccessorsImmediate
	case Succession1To2Years:
		return p.Successors1To2Years
	case Succession3To5Years:
		return p.Successors3To5Years
	case SuccessionMoreThan5Years:
		return p.SuccessorsMoreThan5Years
	}
	return nil
}

// SetSuccessorsRequest is the body of the tier replacement endpoint.
type SetSuccessorsRequest struct {
	OfficerIDs []string `json:"officer_ids"`
}
