package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jeffutter/graphql-document-utils/gql"
	"github.com/jeffutter/graphql-document-utils/svc"
	"github.com/jeffutter/graphql-document-utils/utl"
)

const (
	schemaFlag = "schema"
	queryFlag  = "query"
)

var errStdinTwice = errors.New("schema与查询不能同时从标准输入读取")

func newSchemaCmd() *cobra.Command {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "schema文档相关命令",
	}
	schemaCmd.PersistentFlags().StringP(schemaFlag, "s", utl.STDIN, "schema文件路径，\"-\"表示标准输入")

	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "格式化schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, _ := cmd.Flags().GetBool("sort")
			return format(cmd, sort)
		},
	}
	formatCmd.Flags().Bool("sort", false, "按类别与名称排序定义")

	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "按类别与名称排序schema定义",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return format(cmd, true)
		},
	}

	focusCmd := &cobra.Command{
		Use:   "focus TYPE...",
		Short: "只保留从指定类型可达的定义",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, schema, err := prepare(cmd)
			if err != nil {
				return err
			}
			var ops []gql.Option
			if cmd.Flags().Changed("arguments") {
				arguments, _ := cmd.Flags().GetBool("arguments")
				ops = append(ops, gql.WithArguments(arguments))
			}
			out, _, err := docs.Focus(schema, utl.SplitNames(args...), ops...)
			if err != nil {
				return err
			}
			return write(cmd, out)
		},
	}
	focusCmd.Flags().Bool("arguments", false, "同时沿字段参数的输入类型展开")

	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "只保留查询使用到的类型与字段",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, schema, query, err := prepareQuery(cmd)
			if err != nil {
				return err
			}
			out, _, err := docs.Prune(schema, query)
			if err != nil {
				return err
			}
			return write(cmd, out)
		},
	}
	pruneCmd.Flags().StringP(queryFlag, "q", "", "查询文件路径，\"-\"表示标准输入")
	_ = pruneCmd.MarkFlagRequired(queryFlag)

	usageCmd := &cobra.Command{
		Use:   "usage",
		Short: "以JSON输出查询使用到的类型及字段",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, schema, query, err := prepareQuery(cmd)
			if err != nil {
				return err
			}
			usage, _, err := docs.Usage(schema, query)
			if err != nil {
				return err
			}
			data, err := utl.MarshalIndentJSON(usage, "", "  ")
			if err != nil {
				return err
			}
			return write(cmd, string(data))
		},
	}
	usageCmd.Flags().StringP(queryFlag, "q", "", "查询文件路径，\"-\"表示标准输入")
	_ = usageCmd.MarkFlagRequired(queryFlag)

	schemaCmd.AddCommand(formatCmd, sortCmd, focusCmd, pruneCmd, usageCmd)
	return schemaCmd
}

func format(cmd *cobra.Command, sort bool) error {
	docs, schema, err := prepare(cmd)
	if err != nil {
		return err
	}
	out, err := docs.Format(schema, sort)
	if err != nil {
		return err
	}
	return write(cmd, out)
}

func prepare(cmd *cobra.Command) (*svc.Documents, svc.Source, error) {
	docs, err := loadDocuments(cmd)
	if err != nil {
		return nil, svc.Source{}, err
	}
	path, _ := cmd.Flags().GetString(schemaFlag)
	schema, err := readSource(cmd, path)
	if err != nil {
		return nil, svc.Source{}, err
	}
	return docs, schema, nil
}

// prepareQuery 读取schema与查询，两者不能同时来自标准输入
func prepareQuery(cmd *cobra.Command) (*svc.Documents, svc.Source, svc.Source, error) {
	schemaPath, _ := cmd.Flags().GetString(schemaFlag)
	queryPath, _ := cmd.Flags().GetString(queryFlag)
	if schemaPath == utl.STDIN && queryPath == utl.STDIN {
		return nil, svc.Source{}, svc.Source{}, errStdinTwice
	}
	docs, schema, err := prepare(cmd)
	if err != nil {
		return nil, svc.Source{}, svc.Source{}, err
	}
	query, err := readSource(cmd, queryPath)
	if err != nil {
		return nil, svc.Source{}, svc.Source{}, err
	}
	return docs, schema, query, nil
}
