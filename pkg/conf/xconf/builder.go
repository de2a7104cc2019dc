package xconf

import (
	"fmt"
	"io"
)

// Builder 收集配置源并构建 Root。
// 加入顺序即优先级：后加入的源覆盖先加入的源。
type Builder struct {
	sources    []Source
	properties map[string]any
}

// NewBuilder 创建空的配置构建器。
func NewBuilder() *Builder {
	return &Builder{
		properties: make(map[string]any),
	}
}

// Add 追加一个配置源（成为当前最高优先级），返回 b 以便链式调用。
func (b *Builder) Add(source Source) *Builder {
	if source != nil {
		b.sources = append(b.sources, source)
	}
	return b
}

// Sources 返回已注册源的只读副本。
func (b *Builder) Sources() []Source {
	out := make([]Source, len(b.sources))
	copy(out, b.sources)
	return out
}

// Properties 返回构建期在 Builder 与各 Source 之间共享数据的映射。
func (b *Builder) Properties() map[string]any {
	return b.properties
}

// Build 按注册顺序实例化全部 Provider 并完成首次加载，
// 返回立即可查询的 Root。任一源构建或首次加载失败时返回错误，
// 构建期错误（如非法的开关映射表）先于任何查询暴露。
// 失败时已实例化的 Provider 会被关闭，不遗留监视 goroutine。
func (b *Builder) Build() (Root, error) {
	providers := make([]Provider, 0, len(b.sources))
	for i, source := range b.sources {
		p, err := source.Build(b)
		if err != nil {
			closeProviders(providers)
			return nil, fmt.Errorf("xconf: build source #%d: %w", i, err)
		}
		providers = append(providers, p)
	}

	root, err := newRoot(providers)
	if err != nil {
		closeProviders(providers)
		return nil, err
	}
	return root, nil
}

func closeProviders(providers []Provider) {
	for _, p := range providers {
		if closer, ok := p.(io.Closer); ok {
			_ = closer.Close()
		}
	}
}
