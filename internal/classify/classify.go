// Package classify implements the filesystem-level decisions spec's
// classifier makes before a file is ever handed to the parser: is this a
// makefile at all, under which dialect, and should strict POSIX policies
// run against it.
package classify

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// BuildSystem names the build tooling a file is associated with, mirroring
// the original implementation's flavor strings.
type BuildSystem string

const (
	BuildSystemPOSIX     BuildSystem = "make"
	BuildSystemGNU       BuildSystem = "gmake"
	BuildSystemBSD       BuildSystem = "bmake"
	BuildSystemCMake     BuildSystem = "cmake"
	BuildSystemAutotools BuildSystem = "autotools"
	BuildSystemGyp       BuildSystem = "gyp"
	BuildSystemPerl      BuildSystem = "perl"
	BuildSystemUnknown   BuildSystem = ""
)

// rejectedAncestorDirs are directory names that, anywhere in a candidate's
// ancestry, disqualify it from linting outright: generated or vendored
// trees are not the user's own portability surface.
var rejectedAncestorDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// lowerFilenamesToImplementations maps exact (lowercased) filenames to a
// build system, grounded on the original's LOWER_FILENAMES_TO_IMPLEMENTATIONS.
var lowerFilenamesToImplementations = map[string]BuildSystem{
	"makefile":     BuildSystemPOSIX,
	"gnumakefile":  BuildSystemGNU,
	"bsdmakefile":  BuildSystemBSD,
}

// lowerExtensionsToImplementations maps lowercased file extensions (without
// the leading dot) to a build system.
var lowerExtensionsToImplementations = map[string]BuildSystem{
	"mk":          BuildSystemPOSIX,
	"gnumakefile": BuildSystemGNU,
	"bsdmakefile": BuildSystemBSD,
}

// lowerFilenamesToParentBuildSystems names sibling/ancestor files whose
// presence marks a makefile as the machine-generated output of some other
// build system.
var lowerFilenamesToParentBuildSystems = map[string]BuildSystem{
	"cmakelists.txt": BuildSystemCMake,
	"configure":      BuildSystemAutotools,
	".gyp":           BuildSystemGyp,
	"makefile.pl":    BuildSystemPerl,
}

// includeFilenamePattern recognizes filenames conventionally written to be
// included into other makefiles rather than invoked directly.
var includeFilenamePattern = regexp.MustCompile(`^(sys\.mk|.*\.include\.mk)$`)

// includeFileGlobs are doublestar patterns covering dialect-specific include
// file spellings beyond the plain *.include.mk/sys.mk forms.
var includeFileGlobs = []string{
	"*.include.mk",
	"*.GNUmakefile",
	"*.BSDmakefile",
}

// generatedSignatures are lines, anywhere in the first scanWindow bytes,
// that mark a file as machine-generated. These mirror the conventions most
// Go/protobuf/etc. code generators already emit, rather than a bespoke
// format.
var generatedSignatures = []*regexp.Regexp{
	regexp.MustCompile(`(?i)do not edit`),
	regexp.MustCompile(`(?i)automatically generated`),
	regexp.MustCompile(`(?im)^#\s*@generated`),
	regexp.MustCompile(`(?i)code generated by`),
	regexp.MustCompile(`(?i)generated by make`),
}

const scanWindowBytes = 64 * 1024

// policiesExemptForIncludeFiles lists the "portable only" policy codes an
// include file skips, since it is never invoked directly and conventions
// like "this project defines at least one rule" don't apply to a file
// meant only to be pulled into another.
var policiesExemptForIncludeFiles = []string{"STRICT_POSIX", "NO_RULES", "RULE_ALL"}

// Decision is the classifier's verdict on one file path.
type Decision struct {
	Path               string
	Filename           string
	IsMakefile         bool
	BuildSystem        BuildSystem
	IsMachineGenerated bool
	IsIncludeFile      bool
	MakefilePrecedence bool // true for a capitalized "Makefile", per MAKEFILE_PRECEDENCE.
	ShouldLint         bool
	ExemptPolicies     []string
	RejectReason       string // non-empty when IsMakefile is false but the path was at least a candidate.
}

// Classify inspects path (without reading its content unless a
// machine-generated content scan is needed) and returns a linting
// decision.
func Classify(path string) (*Decision, error) {
	d := &Decision{Path: path}

	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		d.RejectReason = "symlink"
		return d, nil
	}

	if rejected, name := hasRejectedAncestor(path); rejected {
		d.RejectReason = "ancestor directory " + name
		return d, nil
	}

	base := filepath.Base(path)
	d.Filename = base
	lowerBase := strings.ToLower(base)
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(base)), ".")

	implByName, nameOK := lowerFilenamesToImplementations[lowerBase]
	implByExt, extOK := lowerExtensionsToImplementations[ext]

	switch {
	case nameOK:
		d.IsMakefile = true
		d.BuildSystem = implByName
	case extOK:
		d.IsMakefile = true
		d.BuildSystem = implByExt
	default:
		d.RejectReason = "not a recognized makefile name or extension"
		return d, nil
	}

	if base == "Makefile" {
		d.MakefilePrecedence = true
	}

	d.IsIncludeFile = includeFilenamePattern.MatchString(base)
	if !d.IsIncludeFile {
		for _, pattern := range includeFileGlobs {
			if ok, _ := doublestar.Match(pattern, base); ok {
				d.IsIncludeFile = true
				break
			}
		}
	}
	if d.IsIncludeFile {
		d.ExemptPolicies = append(d.ExemptPolicies, policiesExemptForIncludeFiles...)
	}

	if d.BuildSystem != BuildSystemPOSIX {
		// Implementation-specific dialects (bmake/gmake flavored filenames)
		// still parse, but strict portable-only policies don't apply.
		d.ShouldLint = true
		d.ExemptPolicies = append(d.ExemptPolicies, "STRICT_POSIX")
		return d, nil
	}

	if gen, parent := scanParentBuildSystems(path); gen {
		d.IsMachineGenerated = true
		d.BuildSystem = parent
		d.ShouldLint = false
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if hasGeneratedSignature(data) {
		d.IsMachineGenerated = true
		d.ShouldLint = false
		return d, nil
	}

	d.ShouldLint = true
	return d, nil
}

// hasRejectedAncestor walks path's directory ancestry looking for a
// directory named .git, node_modules, or vendor.
func hasRejectedAncestor(path string) (bool, string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	dir := filepath.Dir(abs)
	for {
		name := filepath.Base(dir)
		if rejectedAncestorDirs[name] {
			return true, name
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false, ""
		}
		dir = parent
	}
}

// scanParentBuildSystems looks for sentinel files in the parent and
// grandparent directory that mark this makefile as the emitted artifact of
// another build system (cmake, autotools, gyp, perl).
func scanParentBuildSystems(path string) (bool, BuildSystem) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, BuildSystemUnknown
	}

	parent := filepath.Dir(abs)
	if bs, ok := scanDirForParentBuildSystem(parent); ok {
		return true, bs
	}

	grandparent := filepath.Dir(parent)
	if grandparent == parent {
		return false, BuildSystemUnknown
	}
	if bs, ok := scanDirForParentBuildSystem(grandparent); ok {
		return true, bs
	}

	return false, BuildSystemUnknown
}

func scanDirForParentBuildSystem(dir string) (BuildSystem, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BuildSystemUnknown, false
	}
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if bs, ok := lowerFilenamesToParentBuildSystems[name]; ok {
			return bs, true
		}
		if strings.HasSuffix(name, ".gyp") {
			return BuildSystemGyp, true
		}
	}
	return BuildSystemUnknown, false
}

// hasGeneratedSignature scans the first scanWindowBytes of data for a
// known generated-file marker.
func hasGeneratedSignature(data []byte) bool {
	window := data
	if len(window) > scanWindowBytes {
		window = window[:scanWindowBytes]
	}
	for _, re := range generatedSignatures {
		if re.Match(window) {
			return true
		}
	}
	return false
}
