package services_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"filehive/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := os.ErrPermission
	err := services.Wrap(services.ErrTransient, "organizing", "copy file", "failed to copy bytes", cause)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected ErrTransient tag, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "organizing: copy file") {
		t.Fatalf("expected stage detail in message, got %q", err.Error())
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("nil marker should default to ErrTransient, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected default detail, got %q", err.Error())
	}
}
