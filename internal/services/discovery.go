// internal/services/discovery.go
package services

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
)

// OpportunityFilters is the browse filter set. Empty values (and the sentinels
// "all"/"All") mean the corresponding filter is not applied.
type OpportunityFilters struct {
	Status         string `json:"status"`
	Expertise      string `json:"expertise"`
	TimeCommitment string `json:"time_commitment"`
	Search         string `json:"search"`
}

// OpportunityView is a listing row enriched for the requesting actor.
// MatchScore is nil unless scoring was requested, so a genuine 0% stays
// distinguishable from "not scored" in the payload.
type OpportunityView struct {
	models.Opportunity
	HasApplied bool `json:"has_applied"`
	MatchScore *int `json:"match_score,omitempty"`
}

// FilterOpportunities applies the discovery filters to a snapshot of
// opportunities and returns them newest first. It is a pure function of its
// inputs: the same snapshot, filters and actor always produce the same ordered
// result.
func FilterOpportunities(opps []models.Opportunity, actorID uuid.UUID, actorRole models.UserRole, filters OpportunityFilters) []models.Opportunity {
	result := make([]models.Opportunity, 0, len(opps))

	for _, opp := range opps {
		// Companies do not browse their own postings.
		if actorRole == models.UserRoleCompany && opp.CompanyID == actorID {
			continue
		}
		if filters.Status != "" && filters.Status != "all" &&
			string(opp.Status) != filters.Status {
			continue
		}
		if !matchesExpertise(opp.RequiredExpertise, filters.Expertise) {
			continue
		}
		if !matchesTimeCommitment(opp.TimeCommitment, filters.TimeCommitment) {
			continue
		}
		if !matchesSearch(opp, filters.Search) {
			continue
		}
		result = append(result, opp)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}

func matchesExpertise(required []string, filter string) bool {
	if filter == "" || filter == "All" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, entry := range required {
		if strings.Contains(strings.ToLower(entry), needle) {
			return true
		}
	}
	return false
}

func matchesTimeCommitment(timeCommitment, filter string) bool {
	if filter == "" || filter == "All" {
		return true
	}
	return strings.Contains(strings.ToLower(timeCommitment), strings.ToLower(filter))
}

func matchesSearch(opp models.Opportunity, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(opp.Title), needle) ||
		strings.Contains(strings.ToLower(opp.Description), needle) ||
		strings.Contains(strings.ToLower(opp.CompanyName), needle)
}

// MatchScore rates an opportunity against an LP's expertise: the share of
// required entries that overlap any of the LP's entries, as a percentage.
// Overlap is a case-insensitive substring check in either direction, so
// "Marketing" matches "Digital Marketing" and vice versa.
func MatchScore(required, lpExpertise []string) int {
	if len(required) == 0 {
		return 0
	}

	overlap := 0
	for _, req := range required {
		reqLower := strings.ToLower(req)
		for _, own := range lpExpertise {
			ownLower := strings.ToLower(own)
			if strings.Contains(reqLower, ownLower) || strings.Contains(ownLower, reqLower) {
				overlap++
				break
			}
		}
	}

	return int(math.Round(100 * float64(overlap) / math.Max(1, float64(len(required)))))
}

// SortByMatchScore orders views by descending score; ties keep their existing
// recency order. Unscored rows sort last.
func SortByMatchScore(views []OpportunityView) {
	sort.SliceStable(views, func(i, j int) bool {
		return viewScore(views[i]) > viewScore(views[j])
	})
}

func viewScore(v OpportunityView) int {
	if v.MatchScore == nil {
		return -1
	}
	return *v.MatchScore
}
