package xmacfmt

// Option 配置 [Run] 的选项函数。
type Option func(*runOptions)

type runOptions struct {
	concurrency int
}

func defaultOptions() *runOptions {
	return &runOptions{concurrency: 1}
}

// WithConcurrency 设置并发处理候选的 goroutine 上限。
// n <= 1 时串行处理（默认）。输出顺序不受并发度影响。
func WithConcurrency(n int) Option {
	return func(o *runOptions) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}
