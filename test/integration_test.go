// ABOUTME: Integration tests for the nutri CLI.
// ABOUTME: Builds the binary and drives a full workflow against a temp store.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	nutriBinary := filepath.Join(projectRoot, "nutri")

	buildCmd := exec.Command("go", "build", "-o", nutriBinary, "./cmd/nutri")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(nutriBinary)

	// Point everything at a temp directory
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(nutriBinary, args...)
		cmd.Env = append(os.Environ(),
			"NUTRI_BACKEND=sqlite",
			"NUTRI_DATA_DIR="+tmpDir,
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"NO_COLOR=1",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Log a few meals
	output, err := run("log", "Kimchi Stew", "540", "--protein", "28", "--carbs", "45", "--fat", "18", "--sodium", "1250", "--type", "lunch")
	if err != nil {
		t.Fatalf("Failed to log meal: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Kimchi Stew") {
		t.Errorf("Expected 'Logged Kimchi Stew' in output, got: %s", output)
	}

	output, err = run("log", "Garden Salad", "180", "--protein", "4", "--type", "dinner")
	if err != nil {
		t.Fatalf("Failed to log meal: %v\n%s", err, output)
	}

	// Today's summary shows both meals
	output, err = run("today")
	if err != nil {
		t.Fatalf("Failed to show today: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Kimchi Stew") || !strings.Contains(output, "Garden Salad") {
		t.Errorf("Expected both meals in today output, got: %s", output)
	}
	if !strings.Contains(output, "720 / 2000 kcal") {
		t.Errorf("Expected calorie total in today output, got: %s", output)
	}

	// List
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Kimchi Stew") {
		t.Errorf("Expected 'Kimchi Stew' in list output, got: %s", output)
	}

	// Top foods
	output, err = run("top")
	if err != nil {
		t.Fatalf("Failed to show top foods: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Kimchi Stew") {
		t.Errorf("Expected 'Kimchi Stew' in top output, got: %s", output)
	}

	// Weekly score
	output, err = run("score")
	if err != nil {
		t.Fatalf("Failed to show score: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Weekly score:") {
		t.Errorf("Expected 'Weekly score:' in output, got: %s", output)
	}

	// Badges view works with nothing earned yet
	output, err = run("badges")
	if err != nil {
		t.Fatalf("Failed to show badges: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Streak:") {
		t.Errorf("Expected 'Streak:' in badges output, got: %s", output)
	}

	// Fasting timer round trip
	output, err = run("fast", "on")
	if err != nil {
		t.Fatalf("Failed to enable fasting: %v\n%s", err, output)
	}
	output, err = run("fast", "start")
	if err != nil {
		t.Fatalf("Failed to start fasting: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Fasting started") {
		t.Errorf("Expected 'Fasting started' in output, got: %s", output)
	}
	output, err = run("fast", "status")
	if err != nil {
		t.Fatalf("Failed to show fast status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Fasting") {
		t.Errorf("Expected 'Fasting' in status output, got: %s", output)
	}
	output, err = run("fast", "end")
	if err != nil {
		t.Fatalf("Failed to end fast: %v\n%s", err, output)
	}

	// Export, wipe the meals via delete, and import back
	exportPath := filepath.Join(tmpDir, "backup.json")
	output, err = run("export", "json", "-o", exportPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if _, err := os.Stat(exportPath); err != nil {
		t.Fatalf("Export file missing: %v", err)
	}

	output, err = run("import", exportPath)
	if err != nil {
		t.Fatalf("Failed to import: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Imported from") {
		t.Errorf("Expected 'Imported from' in output, got: %s", output)
	}

	// Stats come back grouped
	output, err = run("stats", "--period", "daily")
	if err != nil {
		t.Fatalf("Failed to show stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "720 kcal") {
		t.Errorf("Expected daily total in stats output, got: %s", output)
	}
}

func TestDeleteMeal(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	nutriBinary := filepath.Join(projectRoot, "nutri-delete-test")

	buildCmd := exec.Command("go", "build", "-o", nutriBinary, "./cmd/nutri")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(nutriBinary)

	tmpDir := t.TempDir()
	run := func(args ...string) (string, error) {
		cmd := exec.Command(nutriBinary, args...)
		cmd.Env = append(os.Environ(),
			"NUTRI_BACKEND=sqlite",
			"NUTRI_DATA_DIR="+tmpDir,
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"NO_COLOR=1",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("log", "Mistake", "9000")
	if err != nil {
		t.Fatalf("Failed to log meal: %v\n%s", err, output)
	}

	// The log output prints the id on the detail line.
	var id string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 1 && fields[1] == "9000" {
			id = fields[0]
			break
		}
	}
	if id == "" {
		t.Fatalf("Could not find meal id in output: %s", output)
	}

	output, err = run("delete", id)
	if err != nil {
		t.Fatalf("Failed to delete meal: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Deleted Mistake") {
		t.Errorf("Expected 'Deleted Mistake' in output, got: %s", output)
	}

	output, err = run("delete", "12345")
	if err == nil {
		t.Errorf("Deleting an unknown id should fail, got: %s", output)
	}
}
