package cmd

import (
	"fmt"
	"strconv"

	"github.com/kerbaras/appassets/pkg/app"
	"github.com/kerbaras/appassets/pkg/app/components"
	"github.com/spf13/cobra"
)

var badgeCmd = &cobra.Command{
	Use:   "badge [count]",
	Short: "Render a notification badge",
	Long: `Render the notification badge for a pending count.

No count or a count of zero renders nothing. Counts above 99 render as "99+".

Examples:
  appassets badge 7
  appassets badge 250
  appassets badge --preview`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := parseBadgeArg(args)
		if err != nil {
			return err
		}

		preview, _ := cmd.Flags().GetBool("preview")
		if preview {
			return app.NewApp(count).Run()
		}

		if rendered := components.Badge(count).Render(); rendered != "" {
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
		}
		return nil
	},
}

func init() {
	badgeCmd.Flags().Bool("preview", false, "Open an interactive preview")
}

func parseBadgeArg(args []string) (*int, error) {
	if len(args) == 0 {
		return nil, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid count %q: must be a whole number", args[0])
	}
	return &n, nil
}
