// Package config holds the built-in project specification and the optional
// HCL descriptor loader that overrides it.
package config

import "github.com/soapywu/xcgen/xcodeproj"

// Built-in constants for the TENEX iOS client. Running xcgen with no
// descriptor file generates exactly this project.
const (
	DefaultTargetName       = "TENEXiOS"
	DefaultBundleID         = "com.tenex.ios"
	DefaultDeploymentTarget = "16.0"
)

// Default returns the fixed specification the tool was built around: the
// application target plus NDKSwift (branch master) and Nuke (12.0.0 up to
// next major, linking both Nuke and NukeUI).
func Default() xcodeproj.ProjectSpec {
	return xcodeproj.ProjectSpec{
		TargetName:       DefaultTargetName,
		BundleID:         DefaultBundleID,
		DeploymentTarget: DefaultDeploymentTarget,
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
		ExtraTargetSettings: []xcodeproj.Setting{
			{Key: "INFOPLIST_KEY_NSMicrophoneUsageDescription", Value: `"TENEX needs access to your microphone for voice task creation"`},
		},
	}
}
