package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/ui/output"
	"go.trai.ch/toolres/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <command> [args...]",
		Short: "Print the executable and arguments that run a command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			asJSON, _ := cmd.Flags().GetBool("json")

			name := args[0]
			spec, ok, err := c.app.Resolve(cmd.Context(), name, args[1:], project)
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", domain.ErrCommandNotFound.Error(), name)
				return domain.ErrCommandNotFound
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(spec); err != nil {
					return zerr.Wrap(err, "failed to encode command")
				}
				return nil
			}

			out := output.New(cmd.OutOrStdout())
			label := func(s string) string {
				return out.String(s).Foreground(out.Color(string(style.Slate))).String()
			}
			_, _ = fmt.Fprintf(out, "%s %s\n%s %s\n", label("path:"), spec.Path, label("args:"), spec.Args)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringP("project", "p", ".", "Project directory whose declared tools are searched first")
	cmd.Flags().Bool("json", false, "Print the command as JSON")
	return cmd
}
