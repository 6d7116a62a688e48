package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jeffutter/graphql-document-utils/std"
	"github.com/jeffutter/graphql-document-utils/svc"
	"github.com/jeffutter/graphql-document-utils/utl"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "graphql-document-utils",
		Short:         "GraphQL 文档工具",
		Long:          `GraphQL 文档工具，用于格式化、排序、规范化查询以及按类型或查询裁剪schema`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "配置文件路径")
	rootCmd.PersistentFlags().String(logLevelFlag, "", "日志级别: trace, debug, info, warn, error")

	rootCmd.AddCommand(newQueryCmd(), newSchemaCmd(), newServeCmd(), newVersionCmd())
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDocuments 按命令行参数加载配置并创建文档服务
func loadDocuments(cmd *cobra.Command) (*svc.Documents, error) {
	ops := append([]std.KonfigOption{std.WithFilePath(lo.Must(cmd.Flags().GetString(configFlag)))}, overrides(cmd)...)
	k, err := std.NewKonfig(ops...)
	if err != nil {
		return nil, err
	}
	v, err := std.NewValidator()
	if err != nil {
		return nil, err
	}
	c, err := std.NewConfig(k, v)
	if err != nil {
		return nil, err
	}
	if _, err := std.NewLogger(c); err != nil {
		return nil, err
	}
	return svc.NewDocuments(c), nil
}

// overrides 命令行参数对应的配置覆盖项，serve与其他命令共用
func overrides(cmd *cobra.Command) []std.KonfigOption {
	var ops []std.KonfigOption
	if level := lo.Must(cmd.Flags().GetString(logLevelFlag)); level != "" {
		ops = append(ops, std.WithValue("log.level", level))
	}
	return ops
}

// readSource 读取路径对应的文档，"-"表示标准输入
func readSource(cmd *cobra.Command, path string) (svc.Source, error) {
	text, err := utl.ReadSource(path, cmd.InOrStdin())
	if err != nil {
		return svc.Source{}, err
	}
	return svc.Source{Name: utl.SourceName(path), Text: text}, nil
}

// write 输出结果，保证以换行结尾
func write(cmd *cobra.Command, out string) error {
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
