package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/thenoetrevino/ugcctl/internal/api"
	"github.com/thenoetrevino/ugcctl/internal/models"
	exportservice "github.com/thenoetrevino/ugcctl/internal/services/export"
	projectservice "github.com/thenoetrevino/ugcctl/internal/services/project"
)

// ============================================================================
// Capture helpers
// ============================================================================

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*target = w

	fn()

	_ = w.Close()
	*target = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	project := &models.Project{ID: -98349789, Name: "UGC-Paris", Enabled: true}

	output := capture(t, &os.Stdout, func() {
		f := &OutputFormatter{JSON: true}
		if err := f.Success(project); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["name"] != "UGC-Paris" {
		t.Errorf("Expected data.name to be UGC-Paris, got %v", data["name"])
	}
	if data["enabled"] != true {
		t.Errorf("Expected data.enabled to be true, got %v", data["enabled"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name       string
		data       interface{}
		wantOutput string
	}{
		{"project", &models.Project{ID: -1867723345}, "-1867723345"},
		{"export record", &models.ExportRecord{ID: 7}, "7"},
		{"no ID falls through", struct{ Name string }{"x"}, "{Name:x}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, &os.Stdout, func() {
				f := &OutputFormatter{Quiet: true}
				if err := f.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})
			if got := strings.TrimSpace(output); got != tt.wantOutput {
				t.Errorf("Expected output '%s', got '%s'", tt.wantOutput, got)
			}
		})
	}
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		f := &OutputFormatter{JSON: true}
		_ = f.ErrorWithSuggestion("PROJECT_NOT_FOUND", "project 42 not found", "Run ugcctl project list")
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != "PROJECT_NOT_FOUND" {
		t.Errorf("Expected code PROJECT_NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "Run ugcctl project list" {
		t.Errorf("Unexpected suggestion %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	output := capture(t, &os.Stderr, func() {
		f := &OutputFormatter{}
		_ = f.Error("TEST_ERROR", "Erreur lors du chargement des projets")
	})

	if !strings.Contains(output, "Error: Erreur lors du chargement des projets") {
		t.Errorf("Expected error message, got '%s'", output)
	}
	if strings.Contains(output, "Suggestion:") {
		t.Errorf("Expected no suggestion in Error() output, got '%s'", output)
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	notFound := &api.StatusError{StatusCode: http.StatusNotFound, Detail: "Project not found", Method: "GET", Path: "/api/projects/1"}

	var err error
	output := capture(t, &os.Stdout, func() {
		f := &OutputFormatter{JSON: true}
		err = f.Fail(fmt.Errorf("project 1: %w", notFound), "http://localhost:8000/api")
	})

	if ExitCodeOf(err) != ExitNotFound {
		t.Errorf("Expected exit %d, got %d", ExitNotFound, ExitCodeOf(err))
	}
	if !strings.Contains(output, `"PROJECT_NOT_FOUND"`) {
		t.Errorf("Expected PROJECT_NOT_FOUND in output, got %s", output)
	}
}

func TestOutputFormatter_Fail_ConnectionHint(t *testing.T) {
	refused := &api.TransportError{Method: "GET", Path: "/api/projects", Err: errors.New("dial tcp: connection refused")}

	var err error
	output := capture(t, &os.Stderr, func() {
		f := &OutputFormatter{}
		err = f.Fail(refused, "http://localhost:8000/api")
	})

	if ExitCodeOf(err) != ExitError {
		t.Errorf("Expected exit %d, got %d", ExitError, ExitCodeOf(err))
	}
	if !strings.Contains(output, "connection refused") {
		t.Errorf("Expected the cause in output, got %s", output)
	}
}

// ============================================================================
// Classify / exit codes
// ============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"not found sentinel", projectservice.ErrProjectNotFound, "PROJECT_NOT_FOUND", ExitNotFound},
		{"api 404", &api.StatusError{StatusCode: 404}, "PROJECT_NOT_FOUND", ExitNotFound},
		{"disabled", fmt.Errorf("p: %w", models.ErrProjectDisabled), "PROJECT_DISABLED", ExitValidation},
		{"api 403", &api.StatusError{StatusCode: 403}, "PROJECT_DISABLED", ExitValidation},
		{"bad hours", &api.StatusError{StatusCode: 400}, "VALIDATION_ERROR", ExitValidation},
		{"invalid id", projectservice.ErrInvalidProjectID, "VALIDATION_ERROR", ExitValidation},
		{"invalid format", exportservice.ErrInvalidFormat, "VALIDATION_ERROR", ExitValidation},
		{"transport", &api.TransportError{Err: errors.New("x")}, "CONNECTION_ERROR", ExitError},
		{"server", &api.StatusError{StatusCode: 500}, "API_ERROR", ExitError},
		{"other", errors.New("disk full"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := Classify(tt.err)
			if code != tt.wantCode || exit != tt.wantExit {
				t.Errorf("Classify() = (%s, %d), want (%s, %d)", code, exit, tt.wantCode, tt.wantExit)
			}
		})
	}
}

func TestExitCodeOf(t *testing.T) {
	if got := ExitCodeOf(nil); got != ExitSuccess {
		t.Errorf("ExitCodeOf(nil) = %d", got)
	}
	if got := ExitCodeOf(errors.New("plain")); got != ExitError {
		t.Errorf("ExitCodeOf(plain) = %d", got)
	}
	wrapped := fmt.Errorf("outer: %w", Exit(ExitUsage, errors.New("missing --id")))
	if got := ExitCodeOf(wrapped); got != ExitUsage {
		t.Errorf("ExitCodeOf(wrapped) = %d", got)
	}
	if Exit(ExitDataErr, nil).Error() == "" {
		t.Error("Exit with nil error needs a message")
	}
}
