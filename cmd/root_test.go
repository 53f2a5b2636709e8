package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "simctl" {
		t.Errorf("Expected Use to be 'simctl', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestRootCommandRegistersAllSubcommands(t *testing.T) {
	expected := []string{
		"up", "down", "start", "stop", "restart", "ps", "logs",
		"config", "exec", "run", "build", "images", "fix-up",
		"version", "self-update",
	}
	for _, name := range expected {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Errorf("Subcommand %s not registered", name)
		}
	}
}

func TestStatusIsAnAliasForPs(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"status"})
	if err != nil {
		t.Fatalf("status not resolvable: %v", err)
	}
	if cmd != psCmd {
		t.Error("Expected 'status' to resolve to the ps command")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "simctl version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})

	if err := testCmd.Execute(); err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}
	if got := buf.String(); got != "simctl version 1.0.0\n" {
		t.Errorf("Unexpected version output: %q", got)
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"directory", "project", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent flag --%s to exist", name)
		}
	}
}
