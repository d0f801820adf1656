package generator

import (
	"context"
	"strings"

	"github.com/Xushengqwer/content_faker/fakedata"
	"github.com/Xushengqwer/content_faker/models/dto"
	"github.com/Xushengqwer/content_faker/repo"
)

// replacementVariables 是 SEO 文本字段可用的替换变量词表，
// 由宿主 SEO 插件在渲染时展开为真实内容。
var replacementVariables = []string{
	"#author_first_name",
	"#author_last_name",
	"#author_name",
	"#categories",
	"#current_date",
	"#current_day",
	"#current_month",
	"#current_year",
	"#permalink",
	"#post_content",
	"#post_date",
	"#post_day",
	"#post_month",
	"#post_title",
	"#post_year",
	"#post_excerpt_only",
	"#post_excerpt",
	"#separator_sa",
	"#site_title",
	"#tagline",
	"#taxonomy_title",
}

// 镜像到帖子元数据的键，方便只认 post meta 的主题 / 导出工具读取。
var seoMirrorMetaKeys = [6]string{
	"_aioseo_title",
	"_aioseo_description",
	"_aioseo_og_title",
	"_aioseo_og_description",
	"_aioseo_twitter_title",
	"_aioseo_twitter_description",
}

// SEOMetaHook 是 SEO 变体挂到帖子创建后的钩子：为每篇帖子写一条
// SEO 元数据记录，并把六个文本字段镜像为帖子元数据。
type SEOMetaHook struct {
	source            *fakedata.Source
	store             repo.ContentStore
	customFieldPrefix string
}

// NewSEOMetaHook 创建 SEO 元数据钩子。customFieldPrefix 用于把帖子
// 已有的自定义字段并入替换变量词表（形如 #custom_field-<key>）。
func NewSEOMetaHook(source *fakedata.Source, store repo.ContentStore, customFieldPrefix string) *SEOMetaHook {
	return &SEOMetaHook{
		source:            source,
		store:             store,
		customFieldPrefix: customFieldPrefix,
	}
}

// buildVocabulary 组装本篇帖子可用的替换变量：基础词表加上帖子
// 自定义字段派生的 token。
func (h *SEOMetaHook) buildVocabulary(ctx context.Context, postID uint64) ([]string, error) {
	vocabulary := make([]string, len(replacementVariables))
	copy(vocabulary, replacementVariables)

	if h.customFieldPrefix != "" {
		keys, err := h.store.PostCustomFieldKeys(ctx, postID, h.customFieldPrefix)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			vocabulary = append(vocabulary, "#custom_field-"+key)
		}
	}
	return vocabulary, nil
}

// textField 从词表中不放回地抽 2~5 个 token，用空格拼接。
func (h *SEOMetaHook) textField(vocabulary []string) string {
	tokens := h.source.ElementStrings(vocabulary, h.source.NumberBetween(2, 5))
	return strings.Join(tokens, " ")
}

func (h *SEOMetaHook) PostCreated(ctx context.Context, postID uint64, _ *dto.PostFields) error {
	vocabulary, err := h.buildVocabulary(ctx, postID)
	if err != nil {
		return err
	}

	meta := &dto.SEOMetaFields{
		PostID:             postID,
		Title:              h.textField(vocabulary),
		Description:        h.textField(vocabulary),
		OgTitle:            h.textField(vocabulary),
		OgDescription:      h.textField(vocabulary),
		TwitterTitle:       h.textField(vocabulary),
		TwitterDescription: h.textField(vocabulary),

		OgObjectType:          "default",
		OgImageType:           "default",
		TwitterCard:           "default",
		TwitterImageType:      "default",
		TwitterUseOg:          false,
		SchemaType:            "default",
		PillarContent:         false,
		RobotsDefault:         true,
		RobotsMaxSnippet:      -1,
		RobotsMaxVideoPreview: -1,
		RobotsMaxImagePreview: "large",
		Priority:              "default",
		Frequency:             "default",
	}
	if err := h.store.CreateSEOMeta(ctx, meta); err != nil {
		return err
	}

	mirrored := [6]string{
		meta.Title, meta.Description,
		meta.OgTitle, meta.OgDescription,
		meta.TwitterTitle, meta.TwitterDescription,
	}
	for i, key := range seoMirrorMetaKeys {
		if err := h.store.AddPostMeta(ctx, postID, key, mirrored[i]); err != nil {
			return err
		}
	}
	return nil
}
