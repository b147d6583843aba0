package pricing

// Label is the marketing name the campaign builder shows for a reach size.
// It has no effect on price.
type Label struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxReach    int    `json:"max_reach,omitempty"`
}

var labels = []Label{
	{Name: "Starter", Description: "Local visibility", MaxReach: 100},
	{Name: "Basic", Description: "Neighborhood reach", MaxReach: 250},
	{Name: "Standard", Description: "Community focus", MaxReach: 500},
	{Name: "Premium", Description: "Regional presence", MaxReach: 1000},
	{Name: "Professional", Description: "County-wide reach", MaxReach: 2500},
	{Name: "Enterprise", Description: "Multi-county reach", MaxReach: 5000},
	{Name: "Elite", Description: "National visibility", MaxReach: 10000},
}

var customLabel = Label{Name: "Custom", Description: "Maximum exposure"}

// LabelForReach returns the first label whose MaxReach covers reach.
func LabelForReach(reach int) Label {
	for _, l := range labels {
		if reach <= l.MaxReach {
			return l
		}
	}
	return customLabel
}

// Labels lists every bounded label in ascending order.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}
