package main

import "testing"

func TestRootHelpListsCommands(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, nil)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	for _, want := range []string{"convert", "info", "check", "config"} {
		requireContains(t, out, want)
	}
}

func TestUnknownCommandFails(t *testing.T) {
	setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"definitely-not-a-command"}); err == nil {
		t.Fatal("expected unknown command to fail")
	}
}
