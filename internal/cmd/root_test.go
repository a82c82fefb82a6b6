package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := Root()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}, args...))

	err := root.Execute()

	return out.String(), err
}

func TestPlayCommand(t *testing.T) {
	// When: the players fill the left column for x
	out, err := execute(t, "0\n1\n3\n2\n6\n", "play")

	// Then: player 1 wins
	require.NoError(t, err)
	assert.Contains(t, out, "Player 1 wins!")
}

func TestPlayCommand_ConfiguredMarks(t *testing.T) {
	t.Setenv("FIRST_MARK", "A")
	t.Setenv("SECOND_MARK", "B")

	out, err := execute(t, "4\n", "play")

	require.NoError(t, err)
	assert.Contains(t, out, "Player 1 (A) > ")
	assert.Contains(t, out, "Player 2 (B) > ")
}

func TestReplayCommand(t *testing.T) {
	t.Run("From a file", func(t *testing.T) {
		// Given: a script with the classic draw
		path := filepath.Join(t.TempDir(), "draw.yml")
		require.NoError(t, os.WriteFile(path, []byte("moves: [0, 1, 2, 4, 3, 5, 7, 6, 8]\n"), 0o600))

		// When: replaying it
		out, err := execute(t, "", "replay", path)

		// Then: the tie is printed as YAML
		require.NoError(t, err)
		assert.Contains(t, out, "status: tie")
		assert.Contains(t, out, "moves: 9")
	})

	t.Run("From stdin", func(t *testing.T) {
		out, err := execute(t, "moves: [0, 3, 1, 4, 2]\n", "replay", "-")

		require.NoError(t, err)
		assert.Contains(t, out, "status: win")
		assert.Contains(t, out, "line: [0, 1, 2]")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := execute(t, "", "replay", filepath.Join(t.TempDir(), "nope.yml"))

		assert.Error(t, err)
	})

	t.Run("Requires an argument", func(t *testing.T) {
		_, err := execute(t, "", "replay")

		assert.Error(t, err)
	})
}
