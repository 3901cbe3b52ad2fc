package cancel_session

// CancelSessionRequest HTTP request model, тело запроса опционально
type CancelSessionRequest struct {
	Reason *string `json:"reason,omitempty"`
}
