package api

// ReductionRequest is the body of POST /v1/reductions.  The input buffer is
// given either explicitly (matrix for the norms, a/b for the dot products)
// or by size (rows/cols or length plus start), in which case the server
// generates the deterministic ramp buffer itself.
type ReductionRequest struct {
	Op string `json:"op"`

	// Explicit data.
	Matrix [][]float64 `json:"matrix,omitempty"`
	A      []float64   `json:"a,omitempty"`
	B      []float64   `json:"b,omitempty"`

	// Generated data.
	Rows   int     `json:"rows,omitempty"`
	Cols   int     `json:"cols,omitempty"`
	Length int     `json:"length,omitempty"`
	Start  float64 `json:"start,omitempty"`

	BlockSize int      `json:"block_size,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty"`
}

// ReductionResponse reports one parallel reduction together with its
// sequential reference and the tolerance verdict.
type ReductionResponse struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	CreatedAt int64   `json:"created_at"`
	Op        string  `json:"op"`
	Result    float64 `json:"result"`
	Reference float64 `json:"reference"`
	Match     bool    `json:"match"`
	Tolerance float64 `json:"tolerance"`
	Workers   int     `json:"workers"`
	ElapsedUS int64   `json:"elapsed_us"`
}

// OpsResponse lists the reduction ops the server supports.
type OpsResponse struct {
	Object string   `json:"object"`
	Ops    []string `json:"ops"`
}

// HealthResponse is the /healthz body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ResponseError is the error envelope nested under "error".
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}
