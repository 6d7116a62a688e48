package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/jeffutter/graphql-document-utils/ioc"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start", "s"},
		Short:   "启动HTTP服务",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fx.New(
				ioc.Get(),
				ioc.Supply(lo.Must(cmd.Flags().GetString(configFlag)), overrides(cmd)...),
			).Run()
		},
	}
}
