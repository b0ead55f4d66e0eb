// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SuccessionType is the readiness tier of a successor.
type SuccessionType string

const (
	SuccessionImmediate      SuccessionType = "immediate"
	Succession1To2Years      SuccessionType = "1-2_years"
	Succession3To5Years      SuccessionType = "3-5_years"
	SuccessionMoreThan5Years SuccessionType = "more_than_5_years"
)

// SuccessionTypes lists every tier in display order.
var SuccessionTypes = []SuccessionType{
	SuccessionImmediate,
	Succession1To2Years,
	Succession3To5Years,
	SuccessionMoreThan5Years,
}

// IsValid reports whether t is one of the four known tiers.
func (t SuccessionType) IsValid() bool {
	for _, known := range SuccessionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SuccessorLink is one row of the flat position/successor join.
type SuccessorLink struct {
	PositionID     string         `json:"position_id"`
	SuccessionType SuccessionType `json:"succession_type"`
	Successor      OfficerSummary `json:"successor"`
}

// SuccessorPosition describes a position an officer is lined up for.
type SuccessorPosition struct {
	PositionID     string         `json:"position_id"`
	PositionTitle  string         `json:"position_title"`
	Agency         string         `json:"agency"`
	SuccessionType SuccessionType `json:"succession_type"`
}
