// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/chronos/models"

// BucketSuccessors distributes the successor links of position into the four
// readiness tiers.
//
// Links of other positions and links with an unknown succession type are
// skipped. The relative order of links is kept inside every tier, and every
// tier is a non-nil slice so that it serialises as [] rather than null.
func BucketSuccessors(position models.PositionWithSuccessors, links []models.SuccessorLink) models.PositionWithSuccessors {
	position.SuccessorsImmediate = make([]models.OfficerSummary, 0)
	position.Successors1To2Years = make([]models.OfficerSummary, 0)
	position.Successors3To5Years = make([]models.OfficerSummary, 0)
	position.SuccessorsMoreThan5Years = make([]models.OfficerSummary, 0)

	for _, link := range links {
		if link.PositionID != position.PositionID {
			continue
		}

		switch link.SuccessionType {
		case models.SuccessionImmediate:
			position.SuccessorsImmediate = append(position.SuccessorsImmediate, link.Successor)
		case models.Succession1To2Years:
			position.Successors1To2Years = append(position.Successors1To2Years, link.Successor)
		case models.Succession3To5Years:
			position.Successors3To5Years = append(position.Successors3To5Years, link.Successor)
		case models.SuccessionMoreThan5Years:
			position.SuccessorsMoreThan5Years = append(position.SuccessorsMoreThan5Years, link.Successor)
		}
	}

	return position
}

// groupLinksByPosition splits a flat join into per-position slices, keeping
// the join order inside each slice.
func groupLinksByPosition(links []models.SuccessorLink) map[string][]models.SuccessorLink {
	grouped := make(map[string][]models.SuccessorLink)
	for _, link := range links {
		grouped[link.PositionID] = append(grouped[link.PositionID], link)
	}
	return grouped
}

// dedupIDs drops blank and repeated IDs; the first occurrence wins.
func dedupIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
