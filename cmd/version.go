package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeffutter/graphql-document-utils/std"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "输出版本信息",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "graphql-document-utils %s (commit %s, built %s)\n",
				std.Version, std.GitCommit, std.BuildTime)
			return err
		},
	}
}
