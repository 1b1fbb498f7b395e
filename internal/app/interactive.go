package app

import "github.com/charmbracelet/huh"

// chooseMode asks which generation mode to run, preselecting the one from
// the command line.
func chooseMode(defaultMode string) (string, error) {
	mode := defaultMode
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Generation mode").
				Options(
					huh.NewOption("Write project.pbxproj directly", ModeProject),
					huh.NewOption("Write Package.swift and run swift package generate-xcodeproj", ModeManifest),
				).
				Value(&mode),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return mode, nil
}

// confirmReplace asks before an existing project directory is moved to the
// backup location. The non-interactive path backs up unconditionally.
func confirmReplace(path string) (bool, error) {
	replace := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(path + " exists. Back it up and regenerate?").
				Value(&replace),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return replace, nil
}
