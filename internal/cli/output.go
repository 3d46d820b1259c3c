package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/ugcctl/internal/api"
	"github.com/thenoetrevino/ugcctl/internal/models"
	exportservice "github.com/thenoetrevino/ugcctl/internal/services/export"
	projectservice "github.com/thenoetrevino/ugcctl/internal/services/project"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped with the matching exit code.
// baseURL feeds the connection hints.
func (f *OutputFormatter) Fail(err error, baseURL string) error {
	code, exit := Classify(err)

	suggestion := ""
	if exit == ExitError {
		if ce := api.Classify(err, baseURL); ce != nil {
			suggestion = ce.Hint
		}
	}

	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return Exit(exit, err)
}

// Usage reports a flag error (ExitValidation)
func (f *OutputFormatter) Usage(code string, err error) error {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return Exit(ExitValidation, err)
}

// Classify maps an error to an error code string and an exit code
func Classify(err error) (string, int) {
	var te *api.TransportError
	switch {
	case errors.Is(err, projectservice.ErrProjectNotFound), api.IsNotFound(err):
		return "PROJECT_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrProjectDisabled), api.IsForbidden(err):
		return "PROJECT_DISABLED", ExitValidation
	case errors.Is(err, projectservice.ErrInvalidProjectID),
		errors.Is(err, projectservice.ErrInvalidRequest),
		errors.Is(err, exportservice.ErrInvalidProjectID),
		errors.Is(err, exportservice.ErrInvalidFormat),
		api.IsBadRequest(err):
		return "VALIDATION_ERROR", ExitValidation
	case errors.As(err, &te):
		return "CONNECTION_ERROR", ExitError
	case api.StatusCode(err) != 0:
		return "API_ERROR", ExitError
	}
	return "ERROR", ExitError
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	// Default implementation - can be enhanced per data type
	fmt.Printf("%+v\n", data)
	return nil
}
