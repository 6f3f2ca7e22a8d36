package validation

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

var (
	defaultValidator *validatorv10.Validate
	once             sync.Once
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// Tier thresholds below one person would make a destination unbookable,
	// so reject them at the boundary instead of letting the resolver paper
	// over them.
	v.RegisterStructValidation(destinationStructValidation, UpsertDestinationRequest{})

	return v
}

// Default returns the shared validator instance.
func Default() *validatorv10.Validate {
	once.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// destinationStructValidation checks the tier list shape on catalog upserts.
func destinationStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(UpsertDestinationRequest)

	for _, tier := range req.PriceTiers {
		if tier.MinPeople < 1 {
			sl.ReportError(req.PriceTiers, "priceTiers", "PriceTiers", "tier_min_people", "")
			return
		}
	}
}

// BindAndValidate binds the JSON body into out and runs validation. On
// failure it writes a 400 response and returns an error so the handler can
// short-circuit.
func BindAndValidate(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return err
	}

	if err := Default().Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"fields":  validationErrorsToMap(err),
			},
		})
		return err
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Tag()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
