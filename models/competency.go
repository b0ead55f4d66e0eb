package models

// MaxProficiencyLevel is the upper bound of any competency scale.
const MaxProficiencyLevel = 5

// HRCompetency is a competency against which officers are assessed.
type HRCompetency struct {
	CompetencyID   int64   `json:"competency_id"`
	CompetencyName string  `json:"competency_name"`
	Description    *string `json:"description"`

	// MaxPLLevel is the highest proficiency level of this competency (1..5).
	MaxPLLevel int `json:"max_pl_level"`
}

// TableName returns the name of the database table
// associated with the HRCompetency model.
func (c HRCompetency) TableName() string {
	return "hr_competencies"
}

// SetCompetencyRequest is the body of the officer competency endpoint.
type SetCompetencyRequest struct {
	AchievedPLLevel int `json:"achieved_pl_level"`
}
