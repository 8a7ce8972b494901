package entities

// Classification is the derived result of triaging one message text.
// It is computed per call and never persisted.
type Classification struct {
	IssueType           string `json:"issue_type"`
	Action              string `json:"action"`
	System              string `json:"system"`
	Priority            string `json:"priority"`
	SuggestedResolution string `json:"suggested_resolution"`
}
