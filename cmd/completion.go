package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for timers.

Bash:
  source <(timers completion bash)
  timers completion bash > ~/.local/share/bash-completion/completions/timers

Zsh:
  mkdir -p ~/.zsh/completion
  timers completion zsh > ~/.zsh/completion/_timers
  # Add to ~/.zshrc: fpath=(~/.zsh/completion $fpath); autoload -Uz compinit && compinit

Fish:
  timers completion fish > ~/.config/fish/completions/timers.fish

PowerShell:
  timers completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes the completion script for shell to the command output.
// It does not open storage.
func generateCompletion(cmd *cobra.Command, shell string) {
	out := cmd.OutOrStdout()
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(out)
	case "zsh":
		err = rootCmd.GenZshCompletion(out)
	case "fish":
		err = rootCmd.GenFishCompletion(out, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(out)
	}

	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: Failed to generate %s completion: %v\n", shell, err)
	}
}
