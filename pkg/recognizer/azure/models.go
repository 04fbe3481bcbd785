package azure

type operationStatus string

const (
	operationStatusSucceeded  operationStatus = "Succeeded"
	operationStatusFailed     operationStatus = "Failed"
	operationStatusRunning    operationStatus = "Running"
	operationStatusNotStarted operationStatus = "NotStarted"
)

type readOperation struct {
	Status operationStatus `json:"status"`

	Results []recognitionResult `json:"recognitionResults"`
}

type recognitionResult struct {
	Page int `json:"page"`

	Unit   string  `json:"unit"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Lines []line `json:"lines"`
}

type line struct {
	Text        string    `json:"text"`
	BoundingBox []float64 `json:"boundingBox"`

	Words []word `json:"words"`
}

type word struct {
	Text        string    `json:"text"`
	BoundingBox []float64 `json:"boundingBox"`

	Confidence string `json:"confidence,omitempty"`
}
