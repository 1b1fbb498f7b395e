package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/soapywu/xcgen/internal/publish"
	"github.com/soapywu/xcgen/xcodeproj"
)

func printProjectSummary(out io.Writer, spec xcodeproj.ProjectSpec, res publish.Result) {
	green := color.New(color.FgGreen)
	green.Fprintf(out, "Created %s.xcodeproj with package dependencies\n", spec.TargetName)
	if res.BackedUp {
		fmt.Fprintf(out, "Previous project moved to %s\n", res.BackupDir)
	}
	printDependencyList(out, spec)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Open %s.xcodeproj in Xcode\n", spec.TargetName)
	fmt.Fprintln(out, "  2. Add your Swift files to the project")
	fmt.Fprintln(out, "  3. Set your Development Team in Signing & Capabilities")
	fmt.Fprintln(out, "  4. Build and run")
}

func printManifestWarning(out io.Writer, spec xcodeproj.ProjectSpec) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(out, "Manifest mode overwrites Package.swift and Sources/%s/main.swift\n", spec.TargetName)
}

func printManifestSummary(out io.Writer, spec xcodeproj.ProjectSpec) {
	green := color.New(color.FgGreen)
	green.Fprintf(out, "Generated %s.xcodeproj from Package.swift\n", spec.TargetName)
	printDependencyList(out, spec)
}

func printDependencyList(out io.Writer, spec xcodeproj.ProjectSpec) {
	fmt.Fprintln(out, "Included packages:")
	for _, dep := range spec.Dependencies {
		fmt.Fprintf(out, "  - %s (%s)\n", dep.Name, requirementDescription(dep.Requirement))
		for _, product := range dep.Products {
			if product != dep.Name {
				fmt.Fprintf(out, "  - %s\n", product)
			}
		}
	}
}

func requirementDescription(req xcodeproj.Requirement) string {
	if req.Kind == xcodeproj.RequirementBranch {
		return req.Branch + " branch"
	}
	return req.MinimumVersion + "+"
}
