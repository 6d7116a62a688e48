package gql

import "errors"

// ErrDepthExceeded 遍历或选择集嵌套超过了深度限制
var ErrDepthExceeded = errors.New("超过最大遍历深度")
