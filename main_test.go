package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/superheroes/hero/config"
	"github.com/wricardo/superheroes/hero/service"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestInitializeServices(t *testing.T) {
	if _, err := os.Stat("rosters"); os.IsNotExist(err) {
		t.Skip("Skipping test - rosters directory not found")
	}

	heroes, err := initializeServices("rosters")
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if heroes == nil {
		t.Fatal("Expected hero service to be initialized")
	}

	rosters, err := heroes.ListRosters(context.Background())
	if err != nil {
		t.Fatalf("Failed to list rosters: %v", err)
	}
	if len(rosters) < 2 {
		t.Errorf("Expected bundled rosters to be valid, got %d", len(rosters))
	}
}

func TestInitializeServices_InvalidRosterDir(t *testing.T) {
	if _, err := initializeServices("/non/existent/path"); err == nil {
		t.Error("Expected error for non-existent roster directory")
	}
}

func TestDemo_Run(t *testing.T) {
	heroes, err := initializeServices("rosters")
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	var out bytes.Buffer
	if err := newDemo(heroes, &out, false).Run(context.Background(), "classic"); err != nil {
		t.Fatalf("Demo failed: %v", err)
	}

	output := out.String()
	expected := []string{
		"=== Captain Valor (base hero",
		"=== Blaze (elemental hero",
		"=== Iron Guardian (tech hero",
		"not_costumed",
		"invalid_index",
		"insufficient_energy",
		"insufficient_element_charge",
		"unknown_gadget",
		"Fire Charge: 100%",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Expected demo output to contain %q", want)
		}
	}
}

func TestDemo_DefaultRoster(t *testing.T) {
	heroes := service.NewHeroService(newEmptyRegistry(t), mustEmptyConfig(t))

	var out bytes.Buffer
	if err := newDemo(heroes, &out, false).Run(context.Background(), ""); err != nil {
		t.Fatalf("Demo failed: %v", err)
	}
	if strings.Count(out.String(), "===") != 6 {
		t.Errorf("Expected three hero sections, got output:\n%s", out.String())
	}
}

func TestDemo_JSON(t *testing.T) {
	heroes := service.NewHeroService(newEmptyRegistry(t), mustEmptyConfig(t))

	var out bytes.Buffer
	d := newDemo(heroes, &out, true)
	info, err := heroes.RecruitRoster(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to recruit: %v", err)
	}
	result, err := heroes.Transform(context.Background(), info[0].ID)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if err := d.printResult(result); err != nil {
		t.Fatalf("Failed to print result: %v", err)
	}

	var decoded service.ActionResult
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("Expected JSON output, got %v:\n%s", err, out.String())
	}
	if decoded.Action != service.ActionTransform || !decoded.Hero.InCostume {
		t.Errorf("Unexpected decoded result: %+v", decoded)
	}
}

func TestDemo_UnknownRoster(t *testing.T) {
	heroes := service.NewHeroService(newEmptyRegistry(t), mustEmptyConfig(t))

	if err := newDemo(heroes, &bytes.Buffer{}, false).Run(context.Background(), "missing"); err == nil {
		t.Error("Expected error for unknown roster")
	}
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name": "Bad", "heroes": []}`), 0644); err != nil {
		t.Fatalf("Failed to write bad roster: %v", err)
	}

	var out bytes.Buffer
	failed := validateFiles([]string{"rosters/classic.json", "rosters/storm.yaml", bad, filepath.Join(dir, "missing.json")}, &out)
	if failed != 2 {
		t.Errorf("Expected 2 failures, got %d:\n%s", failed, out.String())
	}
	if !strings.Contains(out.String(), "✓ classic.json: Classic (3 heroes)") {
		t.Errorf("Expected classic to validate, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "✗ bad.json") {
		t.Errorf("Expected bad.json to fail, got:\n%s", out.String())
	}
}

func TestListRosters(t *testing.T) {
	heroes, err := initializeServices("rosters")
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	var out bytes.Buffer
	if err := listRosters(context.Background(), heroes, &out); err != nil {
		t.Fatalf("Failed to list rosters: %v", err)
	}
	if !strings.Contains(out.String(), "classic") || !strings.Contains(out.String(), "storm") {
		t.Errorf("Expected classic and storm rosters, got:\n%s", out.String())
	}

	empty := service.NewHeroService(newEmptyRegistry(t), mustEmptyConfig(t))
	out.Reset()
	if err := listRosters(context.Background(), empty, &out); err != nil {
		t.Fatalf("Failed to list rosters: %v", err)
	}
	if !strings.Contains(out.String(), "built-in roster") {
		t.Errorf("Expected built-in roster notice, got:\n%s", out.String())
	}
}

func TestApp_Validate(t *testing.T) {
	app := newApp(&config.AppConfig{RosterDir: "rosters"})
	args := []string{"superheroes", "validate", "rosters/classic.json", "rosters/storm.yaml"}

	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("Expected bundled rosters to validate, got %v", err)
	}
}
