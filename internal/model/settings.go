package model

// Settings is the per-user preference document.
type Settings struct {
	Theme               string `json:"theme"`
	Notifications       bool   `json:"notifications"`
	RiskTolerance       string `json:"riskTolerance"`
	DefaultTimeframe    string `json:"defaultTimeframe"`
	AutoSavePredictions bool   `json:"autoSavePredictions"`
}

// DefaultSettings is what reads return when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{
		Theme:               "light",
		Notifications:       true,
		RiskTolerance:       "medium",
		DefaultTimeframe:    "1h",
		AutoSavePredictions: true,
	}
}
