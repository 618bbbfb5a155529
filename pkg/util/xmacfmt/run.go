package xmacfmt

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/macfmt/pkg/util/xmac"
)

// Item 是单个候选的处理结果。
type Item struct {
	// Source 扫描得到的候选子串原文。
	Source string
	// Family 候选匹配到的模式族。
	Family xmac.Family
	// Offset 候选在输入中的字节偏移。
	Offset int
	// Addr 解析结果，仅在 Err 为 nil 时有效。
	Addr xmac.Addr
	// Output 格式化后的输出行，仅在 Err 为 nil 时有效。
	Output string
	// Err 解析错误（*xmac.ParseError）。
	Err error
}

// OK 报告该候选是否解析成功。
func (it Item) OK() bool {
	return it.Err == nil
}

// Diagnostic 描述一个解析失败的候选。
type Diagnostic struct {
	Source string
	Err    error
}

// String 返回面向用户的诊断文本。
func (d Diagnostic) String() string {
	return fmt.Sprintf("Error parsing '%s': %v", d.Source, d.Err)
}

// Result 是一次 [Run] 的结果，Items 保持扫描顺序。
type Result struct {
	Notation xmac.Notation
	Policy   xmac.CasePolicy
	Items    []Item
}

// Lines 返回所有解析成功的输出行，顺序与扫描顺序一致。
func (r *Result) Lines() []string {
	if r == nil {
		return nil
	}
	var lines []string
	for _, it := range r.Items {
		if it.OK() {
			lines = append(lines, it.Output)
		}
	}
	return lines
}

// Diagnostics 返回所有解析失败的候选，顺序与扫描顺序一致。
func (r *Result) Diagnostics() []Diagnostic {
	if r == nil {
		return nil
	}
	var diags []Diagnostic
	for _, it := range r.Items {
		if !it.OK() {
			diags = append(diags, Diagnostic{Source: it.Source, Err: it.Err})
		}
	}
	return diags
}

// Run 扫描 text 中的 MAC 地址，并把每个候选格式化为 n 写法、p 大小写。
//
// 没有任何候选时返回 [ErrNoAddressesFound] 和 nil 结果。
// 单个候选解析失败只记录在对应 [Item] 中，不影响其他候选，也不会让 Run 返回错误；
// 即使全部候选都失败，Run 也返回成功。
//
// ctx 被取消时返回包装后的 ctx.Err()。
func Run(ctx context.Context, text string, n xmac.Notation, p xmac.CasePolicy, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(options)
	}

	matches := xmac.ScanMatches(text)
	if len(matches) == 0 {
		return nil, ErrNoAddressesFound
	}

	res := &Result{
		Notation: n,
		Policy:   p,
		Items:    make([]Item, len(matches)),
	}

	var err error
	if options.concurrency <= 1 || len(matches) == 1 {
		err = runSerial(ctx, matches, res)
	} else {
		err = runParallel(ctx, matches, res, options.concurrency)
	}
	if err != nil {
		return nil, fmt.Errorf("xmacfmt: %w", err)
	}
	return res, nil
}

func runSerial(ctx context.Context, matches []xmac.Match, res *Result) error {
	for i, m := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.Items[i] = process(m, res.Notation, res.Policy)
	}
	return nil
}

// runParallel 并发处理候选。每个 goroutine 只写自己的槽位，无需加锁。
func runParallel(ctx context.Context, matches []xmac.Match, res *Result, limit int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, m := range matches {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Items[i] = process(m, res.Notation, res.Policy)
			return nil
		})
	}
	return g.Wait()
}

// process 解析并格式化单个候选。
func process(m xmac.Match, n xmac.Notation, p xmac.CasePolicy) Item {
	it := Item{Source: m.Text, Family: m.Family, Offset: m.Offset}
	addr, err := xmac.Parse(m.Text)
	if err != nil {
		it.Err = err
		return it
	}
	it.Addr = addr
	it.Output = xmac.Format(addr, n, p)
	return it
}
