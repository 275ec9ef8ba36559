package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
// This keeps the shared rootCmd out of generation tests.
func resetRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wavectl",
		Short: "Wave project connections from the terminal",
	}
	return cmd
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic bash completion structure
	assert.Contains(t, output, "# bash completion for wavectl")
	assert.Contains(t, output, "__wavectl_debug")
	assert.Contains(t, output, "complete -o default -F __start_wavectl wavectl")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic zsh completion structure
	assert.Contains(t, output, "#compdef wavectl")
	assert.Contains(t, output, "_wavectl()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic fish completion structure
	assert.Contains(t, output, "fish completion for wavectl")
	assert.Contains(t, output, "complete -c wavectl")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenPowerShellCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic powershell completion structure (case insensitive check)
	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	// Test using the real rootCmd which has all commands registered
	// Cobra uses dynamic completion - it calls the binary with __completeNoDesc
	// to get completions at runtime, so we verify the completion script contains
	// the necessary infrastructure to call back into the binary

	var buf bytes.Buffer
	err := rootCmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify the completion script has the dynamic completion infrastructure
	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "__start_wavectl", "should have start function")
	assert.Contains(t, output, "_wavectl_root_command", "should have root command function")

	// Every registered command gets its own function in the static script
	assert.Contains(t, output, "_wavectl_panel()")
	assert.Contains(t, output, "_wavectl_status()")
	assert.Contains(t, output, "_wavectl_doctor()")
	assert.Contains(t, output, "_wavectl_completion()")
}

func TestCompletionBashSyntaxValid(t *testing.T) {
	cmd := resetRootCmd()

	// Add some commands
	cmd.AddCommand(&cobra.Command{Use: "panel", Short: "Live connections panel"})
	cmd.AddCommand(&cobra.Command{Use: "status", Short: "One-shot connection check"})

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Basic syntax checks - ensure no obvious errors
	// Check balanced braces
	openBraces := strings.Count(output, "{")
	closeBraces := strings.Count(output, "}")
	assert.Equal(t, openBraces, closeBraces, "braces should be balanced")

	// Should have the main function defined
	assert.Contains(t, output, "__start_wavectl()")

	// Verify it contains the expected completion setup
	assert.Contains(t, output, "complete -o default -F __start_wavectl wavectl")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	// Verify the completion command has correct valid args
	assert.Contains(t, completionCmd.ValidArgs, "bash")
	assert.Contains(t, completionCmd.ValidArgs, "zsh")
	assert.Contains(t, completionCmd.ValidArgs, "fish")
	assert.Contains(t, completionCmd.ValidArgs, "powershell")
	assert.Len(t, completionCmd.ValidArgs, 4)
}
