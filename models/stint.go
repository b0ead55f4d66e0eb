package models

// OOAStint is an out-of-agency stint officers can complete.
type OOAStint struct {
	StintID   int64  `json:"stint_id"`
	StintName string `json:"stint_name"`
	StintType string `json:"stint_type"`
	Year      int    `json:"year"`
}

// TableName returns the name of the database table
// associated with the OOAStint model.
func (s OOAStint) TableName() string {
	return "ooa_stints"
}

// AddStintRequest is the body of the officer stint endpoint.
type AddStintRequest struct {
	StintID        int64 `json:"stint_id"`
	CompletionYear int   `json:"completion_year"`
}
