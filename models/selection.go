package models

// SelectionOption is a single entry in the jurisdiction/sector/sub-sector
// picker flow. Disabled options are shown but not selectable.
type SelectionOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Selections holds the full picker data served to the frontend
type Selections struct {
	Countries  []SelectionOption            `json:"countries"`
	Sectors    map[string][]SelectionOption `json:"sectors"`
	SubSectors map[string][]SelectionOption `json:"subSectors"`
}

// DefaultSelections returns the picker data for the supported jurisdictions
func DefaultSelections() Selections {
	return Selections{
		Countries: []SelectionOption{
			{ID: "kazakhstan", Name: "Kazakhstan"},
			{ID: "kyrgyzstan", Name: "Kyrgyzstan", Disabled: true},
			{ID: "uzbekistan", Name: "Uzbekistan", Disabled: true},
		},
		Sectors: map[string][]SelectionOption{
			"kazakhstan": {
				{ID: "b2c", Name: "For Individuals (B2C)"},
				{ID: "b2b", Name: "For Business (B2B)"},
				{ID: "b2g", Name: "For Government (B2G)"},
			},
		},
		SubSectors: map[string][]SelectionOption{
			"b2c": {
				{ID: "workplace_advisor", Name: "Workplace Advisor"},
				{ID: "family_law", Name: "Family Law Assistant"},
				{ID: "consumer_rights", Name: "Consumer Rights Protector"},
			},
			"b2b": {
				{ID: "contract_advisor", Name: "Contract Advisor"},
				{ID: "corporate_assistant", Name: "Corporate Legal Assistant"},
				{ID: "ip_guard", Name: "IP Guard"},
			},
			"b2g": {
				{ID: "public_service_navigator", Name: "Public Service Navigator"},
				{ID: "regulatory_compliance", Name: "Regulatory Compliance AI"},
				{ID: "digital_notary", Name: "Digital Notary Assistant"},
			},
		},
	}
}
