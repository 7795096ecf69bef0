package dto

// RelayRequest is the body the relay accepts. Messages is the full conversation
// so far; Products rides along on routine generation only.
type RelayRequest struct {
	Messages []RelayTurn      `json:"messages"`
	Type     string           `json:"type"`
	Message  string           `json:"message,omitempty"`
	Products []RoutineProduct `json:"products,omitempty"`
}

type RelayTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RoutineProduct is the structured product record sent with generate_routine.
type RoutineProduct struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}
