package service

import (
	"bytes"
	"testing"

	"github.com/Allancgx/warnings-ng-plugin/domain"
)

func TestNewProgressManager_Disabled(t *testing.T) {
	pm := NewProgressManager(false)

	if pm == nil {
		t.Fatal("NewProgressManager returned nil")
	}
	if _, ok := pm.(*NoOpProgressManager); !ok {
		t.Errorf("disabled manager should be NoOpProgressManager, got %T", pm)
	}
	if pm.IsInteractive() {
		t.Error("disabled manager should not be interactive")
	}
}

func TestNewProgressManager_EnabledInNonInteractiveEnvironment(t *testing.T) {
	// Tests run without a terminal on stderr, so even an enabled
	// manager falls back to the no-op implementation.
	t.Setenv("CI", "true")

	pm := NewProgressManager(true)

	if _, ok := pm.(*NoOpProgressManager); !ok {
		t.Errorf("expected NoOpProgressManager without a terminal, got %T", pm)
	}
}

func TestIsInteractiveEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")

	if IsInteractiveEnvironment() {
		t.Error("CI environment should not be interactive")
	}
}

func TestProgressManager_StartTask(t *testing.T) {
	var buf bytes.Buffer
	pm := &ProgressManagerImpl{writer: &buf}
	defer pm.Close()

	task := pm.StartTask("Evaluating reports", 10)
	if task == nil {
		t.Fatal("StartTask returned nil")
	}

	task.Increment(3)
	task.Describe("Evaluating reports (3/10)")
	task.Complete()

	if buf.Len() == 0 {
		t.Error("progress bar should write to the configured writer")
	}
}

func TestProgressManager_Close(t *testing.T) {
	var buf bytes.Buffer
	pm := &ProgressManagerImpl{writer: &buf}

	pm.StartTask("first", 5)
	pm.StartTask("second", 5)
	pm.Close()

	if len(pm.tasks) != 0 {
		t.Errorf("Close should clear tracked tasks, got %d", len(pm.tasks))
	}
}

func TestNoOpProgressManager(t *testing.T) {
	pm := &NoOpProgressManager{}

	task := pm.StartTask("anything", 100)
	if task == nil {
		t.Fatal("StartTask returned nil")
	}

	// None of these should panic or produce output.
	task.Increment(1)
	task.Describe("updated")
	task.Complete()
	pm.Close()

	if pm.IsInteractive() {
		t.Error("NoOpProgressManager should not be interactive")
	}
}

func TestProgressManager_ImplementsInterface(t *testing.T) {
	var _ domain.ProgressManager = &ProgressManagerImpl{}
	var _ domain.ProgressManager = &NoOpProgressManager{}
	var _ domain.TaskProgress = &TaskProgressImpl{}
	var _ domain.TaskProgress = &NoOpTaskProgress{}
}
