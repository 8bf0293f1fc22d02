package validator

import (
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
)

// BusinessValidator validates publish requests beyond struct tags
type BusinessValidator struct {
	validate *validator.Validate
}

func newBusinessValidator(validate *validator.Validate) *BusinessValidator {
	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()
	return bv
}

func (bv *BusinessValidator) registerBusinessRules() {
	_ = bv.validate.RegisterValidation("date_only", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})
}

// ValidatePublish validates a publish request and returns the selected tool ids in ascending order
func (bv *BusinessValidator) ValidatePublish(req *PublishAssessmentRequest) ([]uint, ValidationErrors) {
	var errs ValidationErrors

	if err := bv.validate.Struct(req); err != nil {
		errs = append(errs, ToValidationErrors(err)...)
	}

	toolIDs := make([]uint, 0, len(req.Tools))
	for key, selected := range req.Tools {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			errs = append(errs, ValidationError{
				Field:   "tools",
				Message: "keys must be tool ids",
				Value:   key,
				Rule:    "tool_id",
			})
			continue
		}
		if selected {
			toolIDs = append(toolIDs, uint(id))
		}
	}
	sort.Slice(toolIDs, func(i, j int) bool { return toolIDs[i] < toolIDs[j] })

	if len(errs) > 0 {
		return nil, errs
	}
	return toolIDs, nil
}
