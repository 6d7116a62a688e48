package gql

// 默认根操作类型
const (
	ROOT_QUERY        = "Query"
	ROOT_MUTATION     = "Mutation"
	ROOT_SUBSCRIPTION = "Subscription"
)

// 遍历与输出的默认值
const (
	// DEFAULT_LIMIT 遍历与选择集嵌套的最大深度
	DEFAULT_LIMIT = 4096
	// DEFAULT_INDENT 打印文档时的缩进
	DEFAULT_INDENT = "  "
)

// 闭包的操作名称，用于日志与指标
const (
	OPERATION_FOCUS = "focus"
	OPERATION_PRUNE = "prune"
)
