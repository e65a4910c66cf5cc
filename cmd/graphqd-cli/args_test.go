package main

import "testing"

func TestVertexCreateArgCount(t *testing.T) {
	cmd := vertexCreateCmd()
	if err := cmd.Args(cmd, []string{"1", "extra"}); err == nil {
		t.Error("expected error for too many args")
	}
	if err := cmd.Args(cmd, []string{"1"}); err != nil {
		t.Errorf("expected no error for one arg, got %v", err)
	}
}

func TestVertexCreateRequiresTypeFlag(t *testing.T) {
	cmd := vertexCreateCmd()
	if f := cmd.Flags().Lookup("type"); f == nil {
		t.Fatal("expected --type flag to be registered")
	}
}

func TestVertexExactArgs1Commands(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"two args", []string{"1", "2"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cmd := vertexGetCmd()
			if err := cmd.Args(cmd, tc.args); err == nil {
				t.Errorf("%s: expected arg count error", tc.name)
			}
		})
	}
}

func TestEdgeCreateRequiredFlags(t *testing.T) {
	cmd := edgeCreateCmd()
	for _, name := range []string{"eid", "src", "dst", "type"} {
		if f := cmd.Flags().Lookup(name); f == nil {
			t.Errorf("expected --%s flag to be registered", name)
		}
	}
}

func TestEdgeGetArgCount(t *testing.T) {
	cmd := edgeGetCmd()
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("expected error for missing eid arg")
	}
	if err := cmd.Args(cmd, []string{"1"}); err != nil {
		t.Errorf("expected no error for one arg, got %v", err)
	}
}

func TestCyclesArgCount(t *testing.T) {
	cmd := newCyclesCmd()
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("expected error for missing start_vid arg")
	}
	if err := cmd.Args(cmd, []string{"1"}); err != nil {
		t.Errorf("expected no error for one arg, got %v", err)
	}
}

func TestCyclesFlagDefaults(t *testing.T) {
	cmd := newCyclesCmd()
	if v, err := cmd.Flags().GetInt("max-depth"); err != nil || v != 6 {
		t.Errorf("expected default max-depth 6, got %d (err=%v)", v, err)
	}
	if v, err := cmd.Flags().GetString("direction"); err != nil || v != "forward" {
		t.Errorf("expected default direction forward, got %q (err=%v)", v, err)
	}
	if v, err := cmd.Flags().GetInt("limit"); err != nil || v != 10 {
		t.Errorf("expected default limit 10, got %d (err=%v)", v, err)
	}
}

func TestVertexListFlagDefaults(t *testing.T) {
	cmd := vertexListCmd()
	if v, err := cmd.Flags().GetInt("limit"); err != nil || v != 0 {
		t.Errorf("expected default limit 0, got %d (err=%v)", v, err)
	}
	if v, err := cmd.Flags().GetInt("offset"); err != nil || v != 0 {
		t.Errorf("expected default offset 0, got %d (err=%v)", v, err)
	}
}

func TestEdgeListRequiresVIDFlag(t *testing.T) {
	cmd := edgeListCmd()
	if f := cmd.Flags().Lookup("vid"); f == nil {
		t.Fatal("expected --vid flag to be registered")
	}
}

func TestFormatFlagDefault(t *testing.T) {
	if flagFmt != "" && flagFmt != "json" {
		t.Skip("flagFmt mutated by another test; skip default check")
	}
}
