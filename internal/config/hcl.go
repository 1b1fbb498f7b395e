package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/soapywu/xcgen/xcodeproj"
)

// hclDescriptorFile is the top-level structure of a descriptor file.
type hclDescriptorFile struct {
	Project *hclProject `hcl:"project,block"`
}

type hclProject struct {
	Name             string           `hcl:"name,label"`
	BundleID         string           `hcl:"bundle_id"`
	DeploymentTarget *string          `hcl:"deployment_target,optional"`
	Dependencies     []*hclDependency `hcl:"dependency,block"`
}

type hclDependency struct {
	Name     string    `hcl:"name,label"`
	URL      string    `hcl:"url"`
	Branch   *string   `hcl:"branch,optional"`
	From     *string   `hcl:"from,optional"`
	Products *[]string `hcl:"products,optional"`
}

// evalContext exposes the built-in constants to descriptor expressions, so
// a descriptor can write `deployment_target = defaults.deployment_target`
// instead of repeating literals.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"target":            cty.StringVal(DefaultTargetName),
				"bundle_id":         cty.StringVal(DefaultBundleID),
				"deployment_target": cty.StringVal(DefaultDeploymentTarget),
			}),
		},
	}
}

// Load parses an HCL project descriptor into a ProjectSpec. The descriptor
// replaces the built-in specification wholesale; there is no merging.
func Load(path string) (xcodeproj.ProjectSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return xcodeproj.ProjectSpec{}, fmt.Errorf("failed to parse descriptor %s: %w", path, diags)
	}

	var parsed hclDescriptorFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return xcodeproj.ProjectSpec{}, fmt.Errorf("failed to decode descriptor %s: %w", path, diags)
	}
	if parsed.Project == nil {
		return xcodeproj.ProjectSpec{}, fmt.Errorf("descriptor %s has no project block", path)
	}

	spec := xcodeproj.ProjectSpec{
		TargetName:       parsed.Project.Name,
		BundleID:         parsed.Project.BundleID,
		DeploymentTarget: DefaultDeploymentTarget,
	}
	if parsed.Project.DeploymentTarget != nil {
		spec.DeploymentTarget = *parsed.Project.DeploymentTarget
	}

	for _, dep := range parsed.Project.Dependencies {
		requirement, err := dependencyRequirement(dep)
		if err != nil {
			return xcodeproj.ProjectSpec{}, fmt.Errorf("descriptor %s: %w", path, err)
		}
		products := []string{dep.Name}
		if dep.Products != nil {
			products = *dep.Products
		}
		spec.Dependencies = append(spec.Dependencies, xcodeproj.PackageDependency{
			Name:          dep.Name,
			RepositoryURL: dep.URL,
			Requirement:   requirement,
			Products:      products,
		})
	}

	if err := spec.Validate(); err != nil {
		return xcodeproj.ProjectSpec{}, fmt.Errorf("descriptor %s: %w", path, err)
	}
	return spec, nil
}

func dependencyRequirement(dep *hclDependency) (xcodeproj.Requirement, error) {
	switch {
	case dep.Branch != nil && dep.From != nil:
		return xcodeproj.Requirement{}, fmt.Errorf("dependency %s: branch and from are mutually exclusive", dep.Name)
	case dep.Branch != nil:
		return xcodeproj.BranchRequirement(*dep.Branch), nil
	case dep.From != nil:
		return xcodeproj.UpToNextMajorRequirement(*dep.From), nil
	default:
		return xcodeproj.Requirement{}, fmt.Errorf("dependency %s: either branch or from is required", dep.Name)
	}
}
