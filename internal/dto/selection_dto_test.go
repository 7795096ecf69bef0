package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexibleIDAcceptsStringAndNumber(t *testing.T) {
	var req ToggleSelectionRequest

	assert.NoError(t, json.Unmarshal([]byte(`{"id":"42"}`), &req))
	assert.Equal(t, FlexibleID("42"), req.Id)

	assert.NoError(t, json.Unmarshal([]byte(`{"id":42}`), &req))
	assert.Equal(t, FlexibleID("42"), req.Id)
}

func TestFlexibleIDRejectsOtherShapes(t *testing.T) {
	var req ToggleSelectionRequest
	assert.Error(t, json.Unmarshal([]byte(`{"id":["42"]}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"id":{"v":1}}`), &req))
}
