package models

// MessageResponse is the JSON body used for every error and
// informational reply of the HTTP API, e.g. {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// FundsResponse wraps a list of funds.
type FundsResponse struct {
	Funds  []Fund `json:"funds"`
	Length int    `json:"length"`
}

// ServiceFeesResponse wraps a list of service fees.
type ServiceFeesResponse struct {
	ServiceFees []ServiceFee `json:"service_fees"`
	Length      int          `json:"length"`
}
