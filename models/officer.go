package models

import "time"

// Officer is an HR officer tracked by the succession plan.
type Officer struct {
	// OfficerID is the externally assigned unique identifier (e.g. "OFF1").
	OfficerID string `json:"officer_id"`

	Name              string `json:"name"`
	Grade             string `json:"grade"`
	MXEquivalentGrade string `json:"mx_equivalent_grade"`
	IHRPCertification string `json:"ihrp_certification"`
	HRLP              string `json:"hrlp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Officer model.
func (o Officer) TableName() string {
	return "officers"
}

// Summary projects the officer onto the short form used inside positions.
func (o Officer) Summary() OfficerSummary {
	return OfficerSummary{
		OfficerID: o.OfficerID,
		Name:      o.Name,
		Grade:     o.Grade,
	}
}

// OfficerSummary is the projection of an officer embedded in position views.
type OfficerSummary struct {
	OfficerID string `json:"officer_id"`
	Name      string `json:"name"`
	Grade     string `json:"grade"`
}

// OfficerUpdate carries a partial update of an officer.
// Only non-nil fields are written.
type OfficerUpdate struct {
	OfficerID string `json:"-"`

	Name              *string `json:"name,omitempty"`
	Grade             *string `json:"grade,omitempty"`
	MXEquivalentGrade *string `json:"mx_equivalent_grade,omitempty"`
	IHRPCertification *string `json:"ihrp_certification,omitempty"`
	HRLP              *string `json:"hrlp,omitempty"`
}

// IsEmpty reports whether the update does not touch any column.
func (u OfficerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Grade == nil && u.MXEquivalentGrade == nil &&
		u.IHRPCertification == nil && u.HRLP == nil
}

// OfficerCompetency is a competency assessment recorded for an officer.
type OfficerCompetency struct {
	OfficerID       string     `json:"officer_id"`
	CompetencyID    int64      `json:"competency_id"`
	CompetencyName  string     `json:"competency_name,omitempty"`
	MaxPLLevel      int        `json:"max_pl_level,omitempty"`
	AchievedPLLevel int        `json:"achieved_pl_level"`
	AssessedAt      *time.Time `json:"assessed_at,omitempty"`
}

// OfficerStint records that an officer completed an OOA stint.
type OfficerStint struct {
	OfficerID      string `json:"officer_id"`
	StintID        int64  `json:"stint_id"`
	StintName      string `json:"stint_name,omitempty"`
	StintType      string `json:"stint_type,omitempty"`
	Year           int    `json:"year,omitempty"`
	CompletionYear int    `json:"completion_year"`
}

// OfficerDetail is the aggregated view of one officer.
type OfficerDetail struct {
	Officer

	Competencies []OfficerCompetency `json:"competencies"`
	Stints       []OfficerStint      `json:"stints"`
	Remarks      []OfficerRemark     `json:"remarks"`

	// IncumbentOf lists positions the officer currently holds.
	IncumbentOf []Position `json:"incumbent_of"`

	// SuccessorFor lists the positions and tiers the officer is lined up for.
	SuccessorFor []SuccessorPosition `json:"successor_for"`
}
