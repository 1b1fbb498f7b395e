// Package publish realizes a rendered project descriptor on disk under the
// fixed <Target>.xcodeproj layout, moving any previous output aside first.
package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/soapywu/xcgen/internal/ctxlog"
)

const (
	projectFileName   = "project.pbxproj"
	workspaceDataDir  = "project.xcworkspace/xcshareddata"
	workspaceSettings = "WorkspaceSettings.xcsettings"
	backupSuffix      = ".backup"
)

// Result reports where the publisher put things.
type Result struct {
	ProjectDir string
	BackupDir  string
	BackedUp   bool
}

// Publish writes the descriptor document and workspace settings under
// dir/<targetName>.xcodeproj. An existing output directory is renamed to
// <targetName>.xcodeproj.backup before anything new is created; a stale
// backup is removed first. The sequence is ordered, not atomic: a failure
// leaves either the untouched original, the backed-up state, or the fully
// written new state, and is always returned to the caller.
func Publish(ctx context.Context, dir, targetName, document, settings string) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	container := filepath.Join(dir, targetName+".xcodeproj")
	backup := container + backupSuffix
	res := Result{ProjectDir: container, BackupDir: backup}

	if _, err := os.Stat(container); err == nil {
		if err := os.RemoveAll(backup); err != nil {
			return res, fmt.Errorf("failed to remove stale backup %s: %w", backup, err)
		}
		if err := os.Rename(container, backup); err != nil {
			return res, fmt.Errorf("failed to back up %s: %w", container, err)
		}
		res.BackedUp = true
		logger.Info("Backed up previous project", "from", container, "to", backup)
	} else if !os.IsNotExist(err) {
		return res, fmt.Errorf("failed to inspect %s: %w", container, err)
	}

	sharedData := filepath.Join(container, workspaceDataDir)
	if err := os.MkdirAll(sharedData, 0755); err != nil {
		return res, fmt.Errorf("failed to create %s: %w", sharedData, err)
	}

	projectPath := filepath.Join(container, projectFileName)
	if err := os.WriteFile(projectPath, []byte(document), 0644); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", projectPath, err)
	}

	settingsPath := filepath.Join(sharedData, workspaceSettings)
	if err := os.WriteFile(settingsPath, []byte(settings), 0644); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", settingsPath, err)
	}

	logger.Info("Wrote project descriptor", "path", projectPath)
	return res, nil
}
