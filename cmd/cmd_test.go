package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/playtrack/internal/progress"
)

// run executes the CLI against dbPath and returns combined output.
func run(t *testing.T, dbPath, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--db", dbPath, "--log-level", "silent"}, args...))
	err := root.Execute()
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	return filepath.Join(t.TempDir(), "progress.db")
}

func TestFirstLaunchWelcome(t *testing.T) {
	db := testDB(t)

	out, err := run(t, db, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to playtrack!")

	out, err = run(t, db, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back,")
	assert.NotContains(t, out, "Welcome to playtrack!")
}

func TestCompleteAndStats(t *testing.T) {
	db := testDB(t)

	out, err := run(t, db, "", "complete", "Binary Game", "--score", "8", "--percentage", "0.8")
	require.NoError(t, err)
	assert.Contains(t, out, "Achievement unlocked:")
	assert.Contains(t, out, "Completed Binary Game")
	assert.Contains(t, out, "Pro")

	out, err = run(t, db, "", "complete", "Binary Game", "--score", "3", "--percentage", "0.3")
	require.NoError(t, err)
	assert.NotContains(t, out, "Achievement unlocked:")

	out, err = run(t, db, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Binary Game")
	assert.Contains(t, out, "30%")
	assert.Equal(t, 1, strings.Count(out, "Completed Binary Game"))
}

func TestCompleteRejectsOutOfRangePercentage(t *testing.T) {
	db := testDB(t)

	_, err := run(t, db, "", "complete", "Binary Game", "--score", "8", "--percentage", "80")
	assert.Error(t, err)
}

func TestAutoAdjustAndLevelOverride(t *testing.T) {
	db := testDB(t)

	out, err := run(t, db, "", "auto-adjust")
	require.NoError(t, err)
	assert.Contains(t, out, "auto-adjust: on")

	_, err = run(t, db, "", "auto-adjust", "off")
	require.NoError(t, err)

	_, err = run(t, db, "", "level", "set", "Color Game", "pro")
	require.NoError(t, err)

	_, err = run(t, db, "", "complete", "Color Game", "--score", "1", "--percentage", "0.1")
	require.NoError(t, err)

	out, err = run(t, db, "", "level", "get", "Color Game")
	require.NoError(t, err)
	assert.Contains(t, out, "Pro")

	_, err = run(t, db, "", "level", "set", "Color Game", "legend")
	assert.Error(t, err)
}

func TestProfileSetAndShow(t *testing.T) {
	db := testDB(t)

	_, err := run(t, db, "", "profile", "set", "--name", "Ada", "--age", "9", "--color", "teal")
	require.NoError(t, err)

	_, err = run(t, db, "", "profile", "set", "--age", "10")
	require.NoError(t, err)

	out, err := run(t, db, "", "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "Teal")

	_, err = run(t, db, "", "profile", "set", "--color", "chartreuse")
	assert.Error(t, err)

	_, err = run(t, db, "", "profile", "set")
	assert.Error(t, err)
}

func TestResetRequiresConfirmation(t *testing.T) {
	db := testDB(t)

	_, err := run(t, db, "", "complete", "Binary Game", "--score", "8", "--percentage", "0.8")
	require.NoError(t, err)

	out, err := run(t, db, "no\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = run(t, db, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed Binary Game")

	out, err = run(t, db, "yes\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress reset.")

	out, err = run(t, db, "", "stats")
	require.NoError(t, err)
	assert.NotContains(t, out, "Completed Binary Game")
	assert.Contains(t, out, "None yet.")
}

func TestExportImport(t *testing.T) {
	src := testDB(t)
	_, err := run(t, src, "", "complete", "Pixel Art Game", "--score", "5", "--percentage", "0.9")
	require.NoError(t, err)

	exportPath := filepath.Join(t.TempDir(), "progress.json")
	_, err = run(t, src, "", "export", "--out", exportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Pixel Art Game": "pro"`)

	dst := filepath.Join(t.TempDir(), "other.db")
	out, err := run(t, dst, "", "import", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress imported.")

	out, err = run(t, dst, "", "level", "get", "Pixel Art Game")
	require.NoError(t, err)
	assert.Contains(t, out, "Pro")

	_, err = run(t, dst, `{"version": 7}`, "import", "-")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, testDB(t), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "playtrack")
}

func TestKnownGamesIncludesPerformanceOnlyGames(t *testing.T) {
	p := progress.Profile{
		ExperienceLevels:   map[string]progress.ExperienceLevel{"Binary Game": progress.Rookie},
		Percentages:        map[string]float64{"Pixel Art Game": 0.5},
		PerformanceHistory: map[string]float64{"Sorting Game": 0.9},
	}

	assert.Equal(t, []string{"Binary Game", "Pixel Art Game", "Sorting Game"}, knownGames(p))
	assert.Contains(t, renderStats(p), "Sorting Game")
}

func TestLevelSetUsageListsLevels(t *testing.T) {
	assert.Equal(t, "rookie|pro", levelChoices())
}
