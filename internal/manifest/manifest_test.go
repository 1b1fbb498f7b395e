package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soapywu/xcgen/xcodeproj"
)

func testSpec() xcodeproj.ProjectSpec {
	return xcodeproj.ProjectSpec{
		TargetName:       "TENEXiOS",
		BundleID:         "com.tenex.ios",
		DeploymentTarget: "16.0",
		Dependencies: []xcodeproj.PackageDependency{
			{
				Name:          "NDKSwift",
				RepositoryURL: "https://github.com/pablof7z/NDKSwift.git",
				Requirement:   xcodeproj.BranchRequirement("master"),
				Products:      []string{"NDKSwift"},
			},
			{
				Name:          "Nuke",
				RepositoryURL: "https://github.com/kean/Nuke.git",
				Requirement:   xcodeproj.UpToNextMajorRequirement("12.0.0"),
				Products:      []string{"Nuke", "NukeUI"},
			},
		},
	}
}

type recordedCall struct {
	dir  string
	name string
	args []string
}

// stubRunner records invocations and fails commands listed in failures.
type stubRunner struct {
	calls    []recordedCall
	failures map[string]string // command name -> stderr
}

func (r *stubRunner) Run(_ context.Context, dir, name string, args ...string) (string, string, error) {
	r.calls = append(r.calls, recordedCall{dir: dir, name: name, args: args})
	if stderr, fails := r.failures[name]; fails {
		return "", stderr, errors.New("exit status 1")
	}
	return "", "", nil
}

func TestRenderPackage(t *testing.T) {
	pkg, err := RenderPackage(testSpec())
	require.NoError(t, err)

	require.Contains(t, pkg, `name: "TENEXiOS",`)
	require.Contains(t, pkg, "platforms: [.iOS(.v16)],")
	require.Contains(t, pkg, `.package(url: "https://github.com/pablof7z/NDKSwift.git", branch: "master"),`)
	require.Contains(t, pkg, `.package(url: "https://github.com/kean/Nuke.git", from: "12.0.0")`)

	// Products matching the package name link bare; others go through
	// .product with the owning package.
	require.Contains(t, pkg, `"NDKSwift",`)
	require.Contains(t, pkg, `"Nuke",`)
	require.Contains(t, pkg, `.product(name: "NukeUI", package: "Nuke")`)
	require.NotContains(t, pkg, `.product(name: "Nuke",`)
}

func TestRenderMainStub(t *testing.T) {
	stub, err := RenderMainStub(testSpec())
	require.NoError(t, err)
	require.Contains(t, stub, "@main")
	require.Contains(t, stub, "struct TENEXiOSApp: App {")
	require.Contains(t, stub, `Text("TENEXiOS")`)
}

func TestPlatformMajor(t *testing.T) {
	require.Equal(t, "16", platformMajor("16.0"))
	require.Equal(t, "17", platformMajor("17.2"))
	require.Equal(t, "16", platformMajor("16"))
}

func TestGenerateWritesFilesAndRunsTools(t *testing.T) {
	dir := t.TempDir()
	runner := &stubRunner{}

	err := Generate(context.Background(), dir, testSpec(), runner)
	require.NoError(t, err)

	pkg, err := os.ReadFile(filepath.Join(dir, "Package.swift"))
	require.NoError(t, err)
	require.Contains(t, string(pkg), "// swift-tools-version: 5.9")

	stub, err := os.ReadFile(filepath.Join(dir, "Sources", "TENEXiOS", "main.swift"))
	require.NoError(t, err)
	require.Contains(t, string(stub), "@main")

	require.Len(t, runner.calls, 2)
	require.Equal(t, "swift", runner.calls[0].name)
	require.Equal(t, []string{"package", "generate-xcodeproj"}, runner.calls[0].args)
	require.Equal(t, dir, runner.calls[0].dir)
	require.Equal(t, "open", runner.calls[1].name)
	require.Equal(t, []string{"TENEXiOS.xcodeproj"}, runner.calls[1].args)
}

func TestGenerateSurfacesToolFailure(t *testing.T) {
	dir := t.TempDir()
	runner := &stubRunner{failures: map[string]string{
		"swift": "error: no such module 'NDKSwift'\n",
	}}

	err := Generate(context.Background(), dir, testSpec(), runner)
	require.Error(t, err)
	require.Contains(t, err.Error(), "swift package generate-xcodeproj failed")
	require.Contains(t, err.Error(), "no such module 'NDKSwift'")

	// The project is never opened after a failed synthesis.
	require.Len(t, runner.calls, 1)

	// The manifest files were still written before the tool ran.
	_, statErr := os.Stat(filepath.Join(dir, "Package.swift"))
	require.NoError(t, statErr)
}
