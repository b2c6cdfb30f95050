package fiber

type EventFilterRequest struct {
	Property string   `json:"property" example:"event_params.currency"`
	Operator string   `json:"operator" example:"IN"`
	Values   []string `json:"values"`
}

type EventsQueryRequest struct {
	Events     []string             `json:"events"`
	Start      string               `json:"start" example:"2024-01-01"`
	End        string               `json:"end" example:"2024-01-07"`
	Measure    string               `json:"measure,omitempty" example:"totals"`
	Formula    string               `json:"formula,omitempty" example:"SUM(event_value)"`
	Filters    []EventFilterRequest `json:"filters,omitempty"`
	Dimensions []string             `json:"dimensions,omitempty"`
	Interval   string               `json:"interval,omitempty" example:"day"`
}

type FunnelStepRequest struct {
	EventName string `json:"event_name" example:"purchase"`
	// Elapsed-time window relative to the previous step, in seconds.
	// window_lt_seconds defaults to 30 days when omitted.
	WindowGTSeconds int64                `json:"window_gt_seconds,omitempty"`
	WindowLTSeconds int64                `json:"window_lt_seconds,omitempty"`
	Filters         []EventFilterRequest `json:"filters,omitempty"`
}

type FunnelQueryRequest struct {
	Steps      []FunnelStepRequest `json:"steps"`
	Start      string              `json:"start" example:"2024-01-01"`
	End        string              `json:"end" example:"2024-01-07"`
	Dimensions []string            `json:"dimensions,omitempty"`
	Interval   string              `json:"interval,omitempty" example:"day"`
}

type MatrixResponse struct {
	IndexName string      `json:"index_name"`
	Index     []string    `json:"index"`
	Columns   [][]string  `json:"columns"`
	Values    [][]float64 `json:"values"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_argument"`
	Message string `json:"message,omitempty" example:"Query is invalid"`
}
