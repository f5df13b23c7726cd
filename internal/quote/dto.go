// internal/quote/dto.go
package quote

import "github.com/rosterhq/api-agency/internal/pricing"

// CreateQuoteDTO is the payload for POST /quotes and POST /quotes/preview.
type CreateQuoteDTO struct {
	ClientID     uint   `json:"clientId"`
	CampaignName string `json:"campaignName"`

	Settings   pricing.Settings          `json:"settings"`
	Selections []pricing.Selection       `json:"selections"`
	Addons     []pricing.AddonSelection  `json:"addons"`
	Custom     []pricing.CustomSelection `json:"custom"`
}

// PreviewResponse carries a computed-but-unsaved quote back to the UI,
// including the talent grouping it renders.
type PreviewResponse struct {
	Items        []pricing.LineItem    `json:"items"`
	Groups       []pricing.TalentGroup `json:"groups"`
	Totals       pricing.Totals        `json:"totals"`
	ManualAddons []pricing.ManualAddon `json:"manualAddons"`
}

type statusDTO struct {
	Status string `json:"status"`
}

type revisionDTO struct {
	Note string `json:"note"`
}
