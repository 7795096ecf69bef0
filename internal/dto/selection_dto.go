package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleID accepts a JSON string or number and normalizes it to a string, so
// catalogs with numeric ids and clients sending either form compare equal.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleID(n.String())
		return nil
	}
	return fmt.Errorf("id must be a string or a number, got %s", strconv.Quote(string(data)))
}

type ToggleSelectionRequest struct {
	Id FlexibleID `json:"id" validate:"required"`
}

type ToggleSelectionResponse struct {
	Id       string `json:"id"`
	Selected bool   `json:"selected"`
}

type GetSelectionResponse struct {
	Ids      []string          `json:"ids"`
	Products []ProductResponse `json:"products"`
}

type ClearSelectionResponse struct {
	Cleared int `json:"cleared"`
}
