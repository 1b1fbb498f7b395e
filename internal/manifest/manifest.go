// Package manifest implements the second generation mode: it writes a Swift
// package manifest declaring the target as an executable with the same
// dependency set, adds a minimal entry-point stub, and delegates project
// synthesis to the external package tool.
package manifest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/soapywu/xcgen/internal/ctxlog"
	"github.com/soapywu/xcgen/xcodeproj"
)

const packageTemplate = `// swift-tools-version: 5.9
import PackageDescription

let package = Package(
    name: "{{.Name}}",
    platforms: [.iOS(.v{{.PlatformMajor}})],
    products: [
        .executable(name: "{{.Name}}", targets: ["{{.Name}}"])
    ],
    dependencies: [
{{- range $i, $d := .Dependencies}}
        .package(url: "{{$d.URL}}", {{$d.Constraint}}){{if not $d.Last}},{{end}}
{{- end}}
    ],
    targets: [
        .executableTarget(
            name: "{{.Name}}",
            dependencies: [
{{- range $i, $p := .Products}}
                {{$p.Expr}}{{if not $p.Last}},{{end}}
{{- end}}
            ],
            path: "Sources/{{.Name}}"
        ),
        .testTarget(
            name: "{{.Name}}Tests",
            dependencies: ["{{.Name}}"],
            path: "Tests/{{.Name}}Tests"
        )
    ]
)
`

const mainStubTemplate = `import SwiftUI

@main
struct {{.Name}}App: App {
    var body: some Scene {
        WindowGroup {
            Text("{{.Name}}")
        }
    }
}
`

type dependencyView struct {
	URL        string
	Constraint string
	Last       bool
}

type productView struct {
	Expr string
	Last bool
}

type manifestView struct {
	Name          string
	PlatformMajor string
	Dependencies  []dependencyView
	Products      []productView
}

// RenderPackage produces the Package.swift contents for the spec.
func RenderPackage(spec xcodeproj.ProjectSpec) (string, error) {
	view := manifestView{
		Name:          spec.TargetName,
		PlatformMajor: platformMajor(spec.DeploymentTarget),
	}
	for _, dep := range spec.Dependencies {
		constraint := fmt.Sprintf("from: %q", dep.Requirement.MinimumVersion)
		if dep.Requirement.Kind == xcodeproj.RequirementBranch {
			constraint = fmt.Sprintf("branch: %q", dep.Requirement.Branch)
		}
		view.Dependencies = append(view.Dependencies, dependencyView{
			URL:        dep.RepositoryURL,
			Constraint: constraint,
		})
		for _, product := range dep.Products {
			expr := fmt.Sprintf("%q", product)
			if product != dep.Name {
				expr = fmt.Sprintf(".product(name: %q, package: %q)", product, dep.Name)
			}
			view.Products = append(view.Products, productView{Expr: expr})
		}
	}
	if len(view.Dependencies) > 0 {
		view.Dependencies[len(view.Dependencies)-1].Last = true
	}
	if len(view.Products) > 0 {
		view.Products[len(view.Products)-1].Last = true
	}
	return renderTemplate("package", packageTemplate, view)
}

// RenderMainStub produces the minimal entry-point source file.
func RenderMainStub(spec xcodeproj.ProjectSpec) (string, error) {
	return renderTemplate("main", mainStubTemplate, struct{ Name string }{spec.TargetName})
}

func renderTemplate(name, tmpl string, data interface{}) (string, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.String(), nil
}

// platformMajor maps a deployment target like "16.0" to the .iOS(.vNN)
// platform component.
func platformMajor(deploymentTarget string) string {
	if major, _, found := strings.Cut(deploymentTarget, "."); found {
		return major
	}
	return deploymentTarget
}

// Generate writes Package.swift and the entry-point stub into dir, runs the
// external package tool to synthesize the project, and asks the host to
// open the result. The external tool's failure is surfaced with its stderr;
// nothing is opened in that case.
//
// Both files are overwritten unconditionally, mirroring the reference
// behavior. Manually added sources are not preserved by this mode.
func Generate(ctx context.Context, dir string, spec xcodeproj.ProjectSpec, runner Runner) error {
	logger := ctxlog.FromContext(ctx)

	pkg, err := RenderPackage(spec)
	if err != nil {
		return err
	}
	stub, err := RenderMainStub(spec)
	if err != nil {
		return err
	}

	manifestPath := filepath.Join(dir, "Package.swift")
	if err := os.WriteFile(manifestPath, []byte(pkg), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	sourcesDir := filepath.Join(dir, "Sources", spec.TargetName)
	if err := os.MkdirAll(sourcesDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", sourcesDir, err)
	}
	stubPath := filepath.Join(sourcesDir, "main.swift")
	if err := os.WriteFile(stubPath, []byte(stub), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", stubPath, err)
	}

	logger.Info("Running swift package generate-xcodeproj", "dir", dir)
	_, stderr, err := runner.Run(ctx, dir, "swift", "package", "generate-xcodeproj")
	if err != nil {
		return fmt.Errorf("swift package generate-xcodeproj failed: %w: %s", err, strings.TrimSpace(stderr))
	}

	projectPath := spec.TargetName + ".xcodeproj"
	logger.Info("Opening generated project", "path", projectPath)
	if _, stderr, err := runner.Run(ctx, dir, "open", projectPath); err != nil {
		return fmt.Errorf("failed to open %s: %w: %s", projectPath, err, strings.TrimSpace(stderr))
	}
	return nil
}
