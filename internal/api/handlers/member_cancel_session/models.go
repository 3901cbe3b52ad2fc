package member_cancel_session

// MemberCancelRequest HTTP request model, тело запроса опционально
type MemberCancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}
