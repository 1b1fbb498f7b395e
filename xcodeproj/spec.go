package xcodeproj

import (
	"errors"
	"fmt"
)

// RequirementKind selects how a package dependency is pinned.
type RequirementKind string

const (
	// RequirementBranch tracks a branch head.
	RequirementBranch RequirementKind = "branch"
	// RequirementUpToNextMajor accepts any version below the next major.
	RequirementUpToNextMajor RequirementKind = "upToNextMajorVersion"
)

// Requirement is a package version constraint. Exactly one of Branch or
// MinimumVersion is set, matching Kind.
type Requirement struct {
	Kind           RequirementKind
	Branch         string
	MinimumVersion string
}

// BranchRequirement pins a dependency to a branch head.
func BranchRequirement(branch string) Requirement {
	return Requirement{Kind: RequirementBranch, Branch: branch}
}

// UpToNextMajorRequirement accepts versions from min up to the next major.
func UpToNextMajorRequirement(min string) Requirement {
	return Requirement{Kind: RequirementUpToNextMajor, MinimumVersion: min}
}

// PackageDependency declares one remote package and the products the app
// target links from it. A dependency contributes exactly one package
// reference to the document regardless of how many products it exposes.
type PackageDependency struct {
	Name          string
	RepositoryURL string
	Requirement   Requirement
	Products      []string
}

// Setting is one buildSettings entry. Value is a string or []string;
// values carry their pbxproj quoting verbatim.
type Setting struct {
	Key   string
	Value interface{}
}

// ProjectSpec is the immutable input to generation: the application target,
// its package dependencies, and the knobs the fixed buildSettings tables
// are parameterized on. Generation is a pure function of this value plus
// an identifier allocator.
type ProjectSpec struct {
	TargetName       string
	BundleID         string
	DeploymentTarget string
	Dependencies     []PackageDependency

	// ExtraTargetSettings is appended to both target-scope variants,
	// sorted in with the fixed table.
	ExtraTargetSettings []Setting
}

// Validate rejects specs that cannot produce a coherent document.
func (s ProjectSpec) Validate() error {
	if s.TargetName == "" {
		return errors.New("target name missing")
	}
	if s.BundleID == "" {
		return errors.New("bundle identifier missing")
	}
	seen := make(map[string]struct{}, len(s.Dependencies))
	for _, dep := range s.Dependencies {
		if dep.Name == "" {
			return errors.New("dependency name missing")
		}
		if _, dup := seen[dep.Name]; dup {
			return fmt.Errorf("dependency %s declared twice", dep.Name)
		}
		seen[dep.Name] = struct{}{}
		if dep.RepositoryURL == "" {
			return fmt.Errorf("dependency %s: repository URL missing", dep.Name)
		}
		if len(dep.Products) == 0 {
			return fmt.Errorf("dependency %s: no products declared", dep.Name)
		}
		switch dep.Requirement.Kind {
		case RequirementBranch:
			if dep.Requirement.Branch == "" {
				return fmt.Errorf("dependency %s: branch requirement without a branch", dep.Name)
			}
		case RequirementUpToNextMajor:
			if dep.Requirement.MinimumVersion == "" {
				return fmt.Errorf("dependency %s: version requirement without a minimum version", dep.Name)
			}
		default:
			return fmt.Errorf("dependency %s: unknown requirement kind %q", dep.Name, dep.Requirement.Kind)
		}
	}
	return nil
}

// products returns every linked product across all dependencies, in
// declaration order.
func (s ProjectSpec) products() []productRef {
	var out []productRef
	for di, dep := range s.Dependencies {
		for _, name := range dep.Products {
			out = append(out, productRef{depIndex: di, name: name})
		}
	}
	return out
}

type productRef struct {
	depIndex int
	name     string
}
