package dto

// View is the rendered product-selection screen described as data: the renderer
// is a pure function from (catalog, filter, selection) to this structure, and
// interactions are named actions routed by the client rather than wired handlers.
type View struct {
	Category    string             `json:"category"`
	Placeholder string             `json:"placeholder,omitempty"`
	Cards       []CardView         `json:"cards"`
	Selected    []SelectedItemView `json:"selected"`
}

type CardView struct {
	Product     ProductResponse `json:"product"`
	Selected    bool            `json:"selected"`
	Description string          `json:"description"`
	Actions     []string        `json:"actions"`
}

type SelectedItemView struct {
	Id      string   `json:"id"`
	Name    string   `json:"name"`
	Actions []string `json:"actions"`
}
