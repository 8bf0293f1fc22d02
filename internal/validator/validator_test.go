package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePublish(t *testing.T, body string) *PublishAssessmentRequest {
	t.Helper()
	var req PublishAssessmentRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestPublishRequest_FlexibleValues(t *testing.T) {
	req := decodePublish(t, `{
		"studentGroups": [{"value": 2024}, {"value": "2025"}],
		"selectedSchools": [{"value": "X"}],
		"tools": {"5": true, "6": false},
		"adminId": 42,
		"startDate": "2024-01-01",
		"endDate": "2024-01-31"
	}`)

	assert.Equal(t, FlexibleInt(2024), req.StudentGroups[0].Value)
	assert.Equal(t, FlexibleInt(2025), req.StudentGroups[1].Value)
	assert.Equal(t, FlexibleString("42"), req.AdminID)
}

func TestPublishRequest_RejectsNonNumericYear(t *testing.T) {
	var req PublishAssessmentRequest
	err := json.Unmarshal([]byte(`{"studentGroups": [{"value": "first year"}]}`), &req)
	assert.Error(t, err)
}

func TestBusinessValidator_ValidatePublish(t *testing.T) {
	bv := New().GetBusinessValidator()

	t.Run("selected tools in ascending order", func(t *testing.T) {
		req := decodePublish(t, `{
			"studentGroups": [{"value": 2024}],
			"selectedSchools": [{"value": "X"}],
			"tools": {"9": true, "5": true, "6": false},
			"adminId": "admin-1",
			"startDate": "2024-01-01",
			"endDate": "2024-01-31"
		}`)
		toolIDs, errs := bv.ValidatePublish(req)
		require.Empty(t, errs)
		assert.Equal(t, []uint{5, 9}, toolIDs)
	})

	t.Run("missing dates", func(t *testing.T) {
		toolIDs, errs := bv.ValidatePublish(&PublishAssessmentRequest{})
		assert.Nil(t, toolIDs)
		assert.True(t, IsValidationError(errs))
		fields := map[string]string{}
		for _, e := range errs {
			fields[e.Field] = e.Rule
		}
		assert.Len(t, fields, 2)
		assert.Equal(t, "required", fields["startDate"])
		assert.Equal(t, "required", fields["endDate"])
	})

	t.Run("window ending before start is stored as given", func(t *testing.T) {
		req := decodePublish(t, `{"startDate": "2024-03-31", "endDate": "2024-03-01", "tools": {"5": true}}`)
		toolIDs, errs := bv.ValidatePublish(req)
		require.Empty(t, errs)
		assert.Equal(t, []uint{5}, toolIDs)
	})

	t.Run("unparsable date", func(t *testing.T) {
		req := decodePublish(t, `{"adminId": "a", "startDate": "soon", "endDate": "2024-01-31"}`)
		_, errs := bv.ValidatePublish(req)
		require.Len(t, errs, 1)
		assert.Equal(t, "date_only", errs[0].Rule)
	})

	t.Run("non numeric tool key", func(t *testing.T) {
		req := decodePublish(t, `{"adminId": "a", "startDate": "2024-01-01", "endDate": "2024-01-01", "tools": {"abc": true}}`)
		_, errs := bv.ValidatePublish(req)
		require.Len(t, errs, 1)
		assert.Equal(t, "tools", errs[0].Field)
	})

	t.Run("empty school name", func(t *testing.T) {
		req := decodePublish(t, `{"adminId": "a", "startDate": "2024-01-01", "endDate": "2024-01-02", "selectedSchools": [{"value": ""}]}`)
		_, errs := bv.ValidatePublish(req)
		require.Len(t, errs, 1)
		assert.Equal(t, "value", errs[0].Field)
	})
}
