package publish

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPublishFresh(t *testing.T) {
	dir := t.TempDir()

	res, err := Publish(context.Background(), dir, "Demo", "document-v1", "settings-v1")
	require.NoError(t, err)
	require.False(t, res.BackedUp)
	require.Equal(t, filepath.Join(dir, "Demo.xcodeproj"), res.ProjectDir)

	require.Equal(t, "document-v1",
		readFile(t, filepath.Join(res.ProjectDir, "project.pbxproj")))
	require.Equal(t, "settings-v1",
		readFile(t, filepath.Join(res.ProjectDir, "project.xcworkspace/xcshareddata/WorkspaceSettings.xcsettings")))

	_, err = os.Stat(res.BackupDir)
	require.True(t, os.IsNotExist(err), "no backup expected on a fresh publish")
}

func TestPublishBacksUpPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	_, err := Publish(ctx, dir, "Demo", "document-v1", "settings-v1")
	require.NoError(t, err)

	// Plant a sentinel next to the descriptor so we can prove the whole
	// container moved, not just the descriptor file.
	container := filepath.Join(dir, "Demo.xcodeproj")
	sentinel := filepath.Join(container, "xcuserdata")
	require.NoError(t, os.WriteFile(sentinel, []byte("user state"), 0644))

	res, err := Publish(ctx, dir, "Demo", "document-v2", "settings-v2")
	require.NoError(t, err)
	require.True(t, res.BackedUp)

	require.Equal(t, "document-v2", readFile(t, filepath.Join(container, "project.pbxproj")))
	require.Equal(t, "document-v1", readFile(t, filepath.Join(res.BackupDir, "project.pbxproj")))
	require.Equal(t, "user state", readFile(t, filepath.Join(res.BackupDir, "xcuserdata")))

	_, err = os.Stat(filepath.Join(container, "xcuserdata"))
	require.True(t, os.IsNotExist(err), "sentinel should have moved with the backup")
}

func TestPublishReplacesStaleBackup(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	for i, doc := range []string{"document-v1", "document-v2", "document-v3"} {
		res, err := Publish(ctx, dir, "Demo", doc, "settings")
		require.NoError(t, err)
		require.Equal(t, i > 0, res.BackedUp)
	}

	// Only the immediately previous output survives as the backup.
	backup := filepath.Join(dir, "Demo.xcodeproj.backup")
	require.Equal(t, "document-v2", readFile(t, filepath.Join(backup, "project.pbxproj")))
	require.Equal(t, "document-v3",
		readFile(t, filepath.Join(dir, "Demo.xcodeproj", "project.pbxproj")))
}
