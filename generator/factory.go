package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Xushengqwer/content_faker/dependencies"
	"github.com/Xushengqwer/content_faker/fakedata"
	"github.com/Xushengqwer/content_faker/repo"
)

// VariantDeps 变体工厂可用的依赖集合。
type VariantDeps struct {
	Source            *fakedata.Source
	Store             repo.ContentStore
	ImageSource       dependencies.ImageSourceClient
	RunID             string
	CustomFieldPrefix string
}

// variantFactory 按变体名组装内容生成器。
type variantFactory func(deps VariantDeps) *CoreGenerator

// registry 已注册的内容变体。键为 -type 选项的取值。
var registry = map[string]variantFactory{
	// core 只生成基础内容实体
	"core": func(deps VariantDeps) *CoreGenerator {
		return NewCoreGenerator(deps.Source, deps.Store, deps.ImageSource, deps.RunID)
	},
	// aioseo 在基础内容之上为每篇帖子追加 SEO 元数据
	"aioseo": func(deps VariantDeps) *CoreGenerator {
		hook := NewSEOMetaHook(deps.Source, deps.Store, deps.CustomFieldPrefix)
		return NewCoreGenerator(deps.Source, deps.Store, deps.ImageSource, deps.RunID, hook)
	},
}

// Variants 返回全部已注册变体名（字典序），用于帮助信息与错误提示。
func Variants() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewContentGenerator 按变体名创建内容生成器。
// 变体名未注册时报错，调用方应在任何批次开始前完成该校验。
func NewContentGenerator(variant string, deps VariantDeps) (*CoreGenerator, error) {
	factory, ok := registry[variant]
	if !ok {
		return nil, fmt.Errorf("未知的内容变体 %q，可用变体: %s",
			variant, strings.Join(Variants(), ", "))
	}
	return factory(deps), nil
}
