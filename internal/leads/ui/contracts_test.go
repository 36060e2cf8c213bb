package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/project-solar/leadboard/internal/leads"
)

func TestToStatCardsFixedOrder(t *testing.T) {
	cards := ToStatCards(&leads.Snapshot{TotalLeads: 10, OpenLeads: 4, QualifiedLeads: 3, DisqualifiedLeads: 3})

	titles := make([]string, 0, len(cards))
	values := make([]int64, 0, len(cards))
	for _, c := range cards {
		titles = append(titles, c.Title)
		values = append(values, c.Value)
	}
	assert.Equal(t, []string{"Total Leads", "Open Leads", "Qualified Leads", "Disqualified Leads"}, titles)
	assert.Equal(t, []int64{10, 4, 3, 3}, values)
	assert.Nil(t, ToStatCards(nil))
}

func TestToBreakdownsKeepsRows(t *testing.T) {
	snap := &leads.Snapshot{
		ProgramClassification:   leads.Counts{{Label: "B", Value: 2}, {Label: "A", Value: 1}},
		UTMMediumClassification: leads.Counts{{Label: "cpc", Value: 3}},
	}
	breakdowns := ToBreakdowns(snap)

	assert.Len(t, breakdowns, 3)
	assert.Equal(t, "Leads by Program", breakdowns[0].Title)
	assert.Equal(t, snap.ProgramClassification, breakdowns[0].Rows)
	assert.Empty(t, breakdowns[1].Rows)
	assert.Equal(t, "Leads by UTM Medium", breakdowns[2].Title)
}

func TestToControlsMarksActive(t *testing.T) {
	controls := ToControls("/leads", leads.Weekly)

	assert.Len(t, controls, 3)
	assert.Equal(t, "Daily", controls[0].Label)
	assert.Equal(t, "/leads?view=monthly", controls[2].Href)
	assert.False(t, controls[0].Active)
	assert.True(t, controls[1].Active)
}
