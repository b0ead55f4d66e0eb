// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of records before they reach storage:
// officer and position identifiers, catalogue names, proficiency levels,
// years and remark dates.
//
// Rules that need the database (for example an achieved level not exceeding
// the competency's max_pl_level) belong to the services, not here.
package validators

import "context"

// Validator checks value and returns the first rule it breaks. When fields
// are given only those fields are checked, otherwise a per-type default set.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
