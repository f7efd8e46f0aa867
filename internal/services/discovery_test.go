// internal/services/discovery_test.go
package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
)

func makeOpportunity(companyID uuid.UUID, title string, status models.OpportunityStatus, createdAt time.Time) models.Opportunity {
	opp := models.Opportunity{
		CompanyID:         companyID,
		CompanyName:       "Acme Ventures",
		Title:             title,
		Description:       "description of " + title,
		RequiredExpertise: pq.StringArray{"Marketing", "Sales"},
		TimeCommitment:    "5 hrs/week",
		Status:            status,
	}
	opp.ID = uuid.New()
	opp.CreatedAt = createdAt
	return opp
}

func TestFilterOpportunitiesExcludesOwnPostingsForCompanies(t *testing.T) {
	companyID := uuid.New()
	otherID := uuid.New()
	now := time.Now()

	opps := []models.Opportunity{
		makeOpportunity(companyID, "Mine", models.OpportunityStatusOpen, now),
		makeOpportunity(otherID, "Theirs", models.OpportunityStatusOpen, now),
	}

	got := FilterOpportunities(opps, companyID, models.UserRoleCompany, OpportunityFilters{})
	assert.Len(t, got, 1)
	assert.Equal(t, "Theirs", got[0].Title)

	// LPs and admins see both
	got = FilterOpportunities(opps, companyID, models.UserRoleLP, OpportunityFilters{})
	assert.Len(t, got, 2)
}

func TestFilterOpportunitiesStatusFilter(t *testing.T) {
	companyID := uuid.New()
	now := time.Now()

	opps := []models.Opportunity{
		makeOpportunity(companyID, "Open", models.OpportunityStatusOpen, now),
		makeOpportunity(companyID, "Closed", models.OpportunityStatusClosed, now),
	}

	got := FilterOpportunities(opps, uuid.New(), models.UserRoleLP, OpportunityFilters{Status: "open"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Open", got[0].Title)

	// "all" is a no-filter sentinel
	got = FilterOpportunities(opps, uuid.New(), models.UserRoleLP, OpportunityFilters{Status: "all"})
	assert.Len(t, got, 2)
}

func TestFilterOpportunitiesExpertiseSubstring(t *testing.T) {
	now := time.Now()
	opp := makeOpportunity(uuid.New(), "Role", models.OpportunityStatusOpen, now)
	opp.RequiredExpertise = pq.StringArray{"Digital Marketing"}

	got := FilterOpportunities([]models.Opportunity{opp}, uuid.New(), models.UserRoleLP,
		OpportunityFilters{Expertise: "marketing"})
	assert.Len(t, got, 1)

	got = FilterOpportunities([]models.Opportunity{opp}, uuid.New(), models.UserRoleLP,
		OpportunityFilters{Expertise: "finance"})
	assert.Len(t, got, 0)

	// "All" sentinel disables the filter
	got = FilterOpportunities([]models.Opportunity{opp}, uuid.New(), models.UserRoleLP,
		OpportunityFilters{Expertise: "All"})
	assert.Len(t, got, 1)
}

func TestFilterOpportunitiesSearchSpansFields(t *testing.T) {
	now := time.Now()
	opp := makeOpportunity(uuid.New(), "Growth Advisor", models.OpportunityStatusOpen, now)

	for _, needle := range []string{"growth", "DESCRIPTION", "acme"} {
		got := FilterOpportunities([]models.Opportunity{opp}, uuid.New(), models.UserRoleLP,
			OpportunityFilters{Search: needle})
		assert.Len(t, got, 1, "search %q should match", needle)
	}

	got := FilterOpportunities([]models.Opportunity{opp}, uuid.New(), models.UserRoleLP,
		OpportunityFilters{Search: "blockchain"})
	assert.Len(t, got, 0)
}

func TestFilterOpportunitiesSortsNewestFirst(t *testing.T) {
	companyID := uuid.New()
	base := time.Now()

	opps := []models.Opportunity{
		makeOpportunity(companyID, "Oldest", models.OpportunityStatusOpen, base.Add(-2*time.Hour)),
		makeOpportunity(companyID, "Newest", models.OpportunityStatusOpen, base),
		makeOpportunity(companyID, "Middle", models.OpportunityStatusOpen, base.Add(-time.Hour)),
	}

	got := FilterOpportunities(opps, uuid.New(), models.UserRoleLP, OpportunityFilters{})
	assert.Equal(t, []string{"Newest", "Middle", "Oldest"},
		[]string{got[0].Title, got[1].Title, got[2].Title})
}

func TestFilterOpportunitiesIsDeterministic(t *testing.T) {
	companyID := uuid.New()
	now := time.Now()

	opps := []models.Opportunity{
		makeOpportunity(companyID, "A", models.OpportunityStatusOpen, now),
		makeOpportunity(companyID, "B", models.OpportunityStatusOpen, now.Add(-time.Minute)),
	}
	filters := OpportunityFilters{Status: "open"}

	first := FilterOpportunities(opps, uuid.New(), models.UserRoleLP, filters)
	second := FilterOpportunities(opps, uuid.New(), models.UserRoleLP, filters)
	assert.Equal(t, first, second)
}

func TestMatchScore(t *testing.T) {
	// Full overlap
	assert.Equal(t, 100, MatchScore([]string{"Marketing"}, []string{"Marketing"}))

	// Case-insensitive, bidirectional substring
	assert.Equal(t, 100, MatchScore([]string{"Digital Marketing"}, []string{"marketing"}))
	assert.Equal(t, 100, MatchScore([]string{"Marketing"}, []string{"Digital Marketing"}))

	// Partial overlap rounds to the nearest percent
	assert.Equal(t, 50, MatchScore([]string{"Marketing", "Finance"}, []string{"Marketing"}))
	assert.Equal(t, 67, MatchScore([]string{"A", "B", "C"}, []string{"A", "B"}))

	// No overlap and no LP expertise
	assert.Equal(t, 0, MatchScore([]string{"Finance"}, []string{"Marketing"}))
	assert.Equal(t, 0, MatchScore([]string{"Finance"}, nil))

	// No requirements means no signal
	assert.Equal(t, 0, MatchScore(nil, []string{"Marketing"}))
}

func scoreOf(n int) *int {
	return &n
}

func TestSortByMatchScoreIsStableOnTies(t *testing.T) {
	views := []OpportunityView{
		{MatchScore: scoreOf(50), Opportunity: models.Opportunity{Title: "First"}},
		{MatchScore: scoreOf(100), Opportunity: models.Opportunity{Title: "Top"}},
		{MatchScore: scoreOf(50), Opportunity: models.Opportunity{Title: "Second"}},
	}

	SortByMatchScore(views)

	assert.Equal(t, "Top", views[0].Title)
	assert.Equal(t, "First", views[1].Title)
	assert.Equal(t, "Second", views[2].Title)
}

func TestSortByMatchScorePutsUnscoredLast(t *testing.T) {
	views := []OpportunityView{
		{Opportunity: models.Opportunity{Title: "Unscored"}},
		{MatchScore: scoreOf(0), Opportunity: models.Opportunity{Title: "NoOverlap"}},
	}

	SortByMatchScore(views)

	assert.Equal(t, "NoOverlap", views[0].Title)
	assert.Equal(t, "Unscored", views[1].Title)
}

func TestOpportunityViewSerializesZeroScore(t *testing.T) {
	scored, err := json.Marshal(OpportunityView{MatchScore: scoreOf(0)})
	require.NoError(t, err)
	assert.Contains(t, string(scored), `"match_score":0`)

	unscored, err := json.Marshal(OpportunityView{})
	require.NoError(t, err)
	assert.NotContains(t, string(unscored), "match_score")
}
