package shipping

// Quote is the result of pricing one carrier for one route.
type Quote struct {
	Method       Method `json:"method"`
	ProviderName string `json:"providerName"`
	Region       Region `json:"region"`
	Fee          int    `json:"fee"`
	ETA          ETA    `json:"eta"`
}
