package classify

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

func TestClassifyPortableMakefile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "makefile", "all:\n\t@echo hi\n")

	d, err := Classify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsMakefile {
		t.Error("expected IsMakefile")
	}
	if d.BuildSystem != BuildSystemPOSIX {
		t.Errorf("build system: got %q", d.BuildSystem)
	}
	if d.MakefilePrecedence {
		t.Error("lowercase makefile should not carry MakefilePrecedence")
	}
	if !d.ShouldLint {
		t.Error("expected ShouldLint")
	}
}

func TestClassifyCapitalMakefilePrecedence(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "Makefile", "all:\n\t@echo hi\n")

	d, err := Classify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.MakefilePrecedence {
		t.Error("expected MakefilePrecedence for capitalized Makefile")
	}
}

func TestClassifyGNUMakefileIsImplementationSpecific(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "GNUmakefile", "all:\n")

	d, err := Classify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.BuildSystem != BuildSystemGNU {
		t.Errorf("build system: got %q", d.BuildSystem)
	}
	if !d.ShouldLint {
		t.Error("implementation-specific files still parse and lint, minus portable-only policies")
	}
	found := false
	for _, p := range d.ExemptPolicies {
		if p == "STRICT_POSIX" {
			found = true
		}
	}
	if !found {
		t.Error("expected STRICT_POSIX to be exempted for an implementation-specific file")
	}
}

func TestClassifyIncludeFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "config.include.mk", "CC = gcc\n")

	d, err := Classify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsIncludeFile {
		t.Error("expected IsIncludeFile")
	}
}

func TestClassifyNotAMakefile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "README.md", "# hello\n")

	d, err := Classify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsMakefile {
		t.Error("expected IsMakefile to be false")
	}
}

func TestClassifyRejectsVendorAncestor(t *testing.T) {
	dir := t.TempDir()
	vendorDir := filepath.Join(dir, "vendor", "pkg")
	if err := os.MkdirAll(vendorDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := writeFile(t, vendorDir, "makefile", "all:\n")

	d, err := Classify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsMakefile {
		t.Error("expected a vendor-ancestor file to be rejected")
	}
	if d.RejectReason == "" {
		t.Error("expected a RejectReason")
	}
}

func TestClassifyMachineGeneratedContentSignature(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "makefile", "# Code generated by buildgen. DO NOT EDIT.\nall:\n")

	d, err := Classify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsMachineGenerated {
		t.Error("expected IsMachineGenerated")
	}
	if d.ShouldLint {
		t.Error("machine-generated files should not be linted")
	}
}

func TestClassifyMachineGeneratedSiblingCMake(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "CMakeLists.txt", "project(x)\n")
	p := writeFile(t, dir, "makefile", "all:\n\t@echo hi\n")

	d, err := Classify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsMachineGenerated {
		t.Error("expected IsMachineGenerated via sibling CMakeLists.txt")
	}
	if d.BuildSystem != BuildSystemCMake {
		t.Errorf("build system: got %q", d.BuildSystem)
	}
}

func TestClassifyRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "makefile", "all:\n")
	link := filepath.Join(dir, "makefile-link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	d, err := Classify(link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsMakefile {
		t.Error("expected a symlinked path to be rejected")
	}
}
