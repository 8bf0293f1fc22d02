package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PublishAssessmentRequest assigns the selected tools to every student of the
// selected enrollment years and schools
type PublishAssessmentRequest struct {
	StudentGroups   []StudentGroupOption `json:"studentGroups" validate:"dive"`
	SelectedSchools []SchoolOption       `json:"selectedSchools" validate:"dive"`
	Tools           map[string]bool      `json:"tools"`
	AdminID         FlexibleString       `json:"adminId"`
	StartDate       string               `json:"startDate" validate:"required,date_only"`
	EndDate         string               `json:"endDate" validate:"required,date_only"`
}

// StudentGroupOption is a select option holding an enrollment year
type StudentGroupOption struct {
	Value FlexibleInt `json:"value" validate:"required"`
}

// SchoolOption is a select option holding a school name
type SchoolOption struct {
	Value string `json:"value" validate:"required"`
}

// FlexibleInt accepts 2024 as well as "2024"
type FlexibleInt int

func (i *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid integer value %s", data)
	}
	*i = FlexibleInt(n)
	return nil
}

// FlexibleString accepts "abc" as well as bare numbers
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexibleString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("invalid identifier %s", data)
	}
	*s = FlexibleString(num.String())
	return nil
}
