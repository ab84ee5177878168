package v1

// ExtractRequest is the body for an extraction call.
type ExtractRequest struct {
	Text string `json:"text" example:"spent 20 on groceries and got 500 salary"` // Free-form text describing one or more transactions
}

// ExtractResponse is returned for an extraction call. When the assistant
// cannot be reached or does not produce usable data, failed is true and
// no transactions are created.
type ExtractResponse struct {
	Error  *string               `json:"error" example:"the text field must be set"` // The error, if any occurred
	Data   []TransactionResponse `json:"data"`                                       // The created transactions
	Failed bool                  `json:"failed" example:"false"`                     // Whether the assistant call failed
}

func (t *ExtractResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

// AdviceRequest is the body for an advice call.
type AdviceRequest struct {
	Topic string `json:"topic" example:"how can I save more each month?"` // The question to ask the advisor
}

// AdviceResponse is returned for an advice call.
type AdviceResponse struct {
	Error *string `json:"error" example:"the topic field must be set"` // The error, if any occurred
	Data  *Advice `json:"data"`                                        // The advice
}

type Advice struct {
	Text     string `json:"text" example:"Track your subscriptions, they add up."` // The advisor's answer
	Fallback bool   `json:"fallback" example:"false"`                              // Whether the answer is the fixed fallback message
}
