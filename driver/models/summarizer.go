package models

type SummarizationRequest struct {
	Inputs     string                  `json:"inputs"`
	Parameters SummarizationParameters `json:"parameters"`
}

type SummarizationParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

// SummarizationResult is one element of the inference API's array response.
type SummarizationResult struct {
	SummaryText string `json:"summary_text"`
}

type SummarizationError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}
