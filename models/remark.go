package models

import "time"

// RemarkDateLayout is the wire and storage format of OfficerRemark.RemarkDate.
const RemarkDateLayout = "2006-01-02"

// OfficerRemark is an append-only free-text log entry about an officer.
type OfficerRemark struct {
	RemarkID   int64     `json:"remark_id"`
	OfficerID  string    `json:"officer_id"`
	RemarkDate string    `json:"remark_date"`
	Place      string    `json:"place"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the OfficerRemark model.
func (r OfficerRemark) TableName() string {
	return "officer_remarks"
}
