package gql

// Option 闭包计算选项
type Option func(*options)

type options struct {
	limit     int
	arguments bool
}

func newOptions(ops ...Option) *options {
	o := &options{limit: DEFAULT_LIMIT}
	for _, op := range ops {
		op(o)
	}
	return o
}

// WithLimit 设置最大遍历深度，非正数使用默认值
func WithLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

// WithArguments 可达性闭包是否沿字段参数的输入类型继续遍历
func WithArguments(arguments bool) Option {
	return func(o *options) {
		o.arguments = arguments
	}
}
