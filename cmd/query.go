package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeffutter/graphql-document-utils/utl"
)

func newQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "查询文档相关命令",
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize",
		Short: "输出查询的规范形式",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			minify, _ := cmd.Flags().GetBool("minify")

			docs, err := loadDocuments(cmd)
			if err != nil {
				return err
			}
			query, err := readSource(cmd, path)
			if err != nil {
				return err
			}
			out, err := docs.Normalize(query, minify)
			if err != nil {
				return err
			}
			return write(cmd, out)
		},
	}
	normalizeCmd.Flags().StringP("path", "p", utl.STDIN, "查询文件路径，\"-\"表示标准输入")
	normalizeCmd.Flags().BoolP("minify", "m", false, "压缩为单行")

	queryCmd.AddCommand(normalizeCmd)
	return queryCmd
}
