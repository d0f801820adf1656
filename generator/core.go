package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/content_faker/constant"
	"github.com/Xushengqwer/content_faker/dependencies"
	"github.com/Xushengqwer/content_faker/fakedata"
	"github.com/Xushengqwer/content_faker/models/dto"
	"github.com/Xushengqwer/content_faker/repo"
)

// PostCreatedHook 在帖子创建成功后执行的扩展点。
// SEO 变体通过它给每篇帖子追加元数据，核心变体不挂任何钩子。
// 钩子失败会使整条帖子计为失败（帖子本体已落库，但批次照常继续）。
type PostCreatedHook interface {
	PostCreated(ctx context.Context, postID uint64, fields *dto.PostFields) error
}

// PostPools 生成一篇帖子时可引用的上游 ID 池。
// 任何池都允许为空，为空时对应引用被省略。
type PostPools struct {
	Authors     []uint64
	Attachments []uint64
	Parents     []uint64 // 仅页面使用：同批次已创建的页面
	Categories  []uint64
	Tags        []uint64
}

// CoreGenerator 生成内容侧实体：作者、词条、附件、帖子与页面。
type CoreGenerator struct {
	source      *fakedata.Source
	store       repo.ContentStore
	imageSource dependencies.ImageSourceClient
	runID       string
	hooks       []PostCreatedHook
}

// NewCoreGenerator 创建内容生成器。hooks 可为空。
func NewCoreGenerator(
	source *fakedata.Source,
	store repo.ContentStore,
	imageSource dependencies.ImageSourceClient,
	runID string,
	hooks ...PostCreatedHook,
) *CoreGenerator {
	return &CoreGenerator{
		source:      source,
		store:       store,
		imageSource: imageSource,
		runID:       runID,
		hooks:       hooks,
	}
}

// GenerateUser 创建一个指定角色的用户账号，role 为空时默认 author。
// 登录名与邮箱在单次运行内唯一。
func (g *CoreGenerator) GenerateUser(ctx context.Context, role string) (uint64, error) {
	if role == "" {
		role = constant.DefaultUserRole
	}
	login, err := g.source.Unique("user.login", g.source.Username)
	if err != nil {
		return 0, err
	}
	email, err := g.source.Unique("user.email", g.source.Email)
	if err != nil {
		return 0, err
	}

	fields := &dto.UserFields{
		Login:        login,
		Password:     g.source.Password(),
		URL:          g.source.URL(),
		Email:        email,
		FirstName:    g.source.FirstName(),
		LastName:     g.source.LastName(),
		Bio:          g.source.Phrase(),
		RegisteredAt: g.source.DateThisCentury(),
		Role:         role,
	}
	return g.store.CreateUser(ctx, fields)
}

// GenerateTerm 创建一个 taxonomy 词条。父级池非空时 50% 概率挂到
// 池中某个词条下，形成层级；名字在同 taxonomy 内唯一。
func (g *CoreGenerator) GenerateTerm(ctx context.Context, taxonomy string, parentPool []uint64) (uint64, error) {
	name, err := g.source.Unique("term."+taxonomy, g.source.Phrase)
	if err != nil {
		return 0, err
	}

	fields := &dto.TermFields{
		Name:        name,
		Description: g.source.Sentence(8),
	}
	if len(parentPool) > 0 && g.source.Bool() {
		if parentID, ok := g.source.Element(parentPool); ok {
			fields.ParentID = parentID
		}
	}

	termID, err := g.store.CreateTerm(ctx, taxonomy, fields)
	if err != nil {
		return 0, err
	}
	if err := g.store.SetTermMeta(ctx, termID, constant.SeedRunMetaKey, g.runID); err != nil {
		return 0, err
	}
	return termID, nil
}

// GenerateAttachment 按关键词下载一张图片并旁路存储为附件。
// index 用于拼接文件名（keyword0.jpg、keyword1.jpg ...）。
func (g *CoreGenerator) GenerateAttachment(ctx context.Context, width, height int, keyword string, index int) (uint64, error) {
	data, contentType, err := g.imageSource.FetchImage(ctx, width, height, keyword)
	if err != nil {
		return 0, err
	}

	media := &dto.MediaUpload{
		FileName:    fmt.Sprintf("%s%d.jpg", keyword, index),
		ContentType: contentType,
		Data:        data,
		Keyword:     keyword,
		Width:       width,
		Height:      height,
	}
	return g.store.StoreMedia(ctx, media)
}

// GeneratePost 创建一篇帖子或页面。
//   - 标题：帖子允许重复，页面在单次运行内唯一
//   - 正文：8~12 个内容块，图片块引用附件池
//   - 分类 1~2 个、标签 0~4 个，对应池为空则省略
//   - 页面在父级池非空时 25% 概率挂到已创建页面下
//   - 修改时间 50% 概率晚于发布时间，否则与发布时间相同
func (g *CoreGenerator) GeneratePost(ctx context.Context, postType string, pools PostPools) (uint64, error) {
	var title string
	var err error
	if postType == constant.PostTypePage {
		title, err = g.source.Unique("page.title", func() string { return g.source.Sentence(6) })
		if err != nil {
			return 0, err
		}
	} else {
		title = g.source.Sentence(6)
	}

	publishedAt := g.source.DateThisYear()
	modifiedAt := publishedAt
	if g.source.Bool() {
		modifiedAt = g.source.DateBetween(publishedAt, time.Now())
	}

	fields := &dto.PostFields{
		Type:        postType,
		Title:       title,
		Content:     buildPostContent(ctx, g.source, g.store, pools.Attachments),
		Status:      "publish",
		PublishedAt: publishedAt,
		ModifiedAt:  modifiedAt,
		CategoryIDs: g.source.Elements(pools.Categories, g.source.NumberBetween(1, 2)),
		TagIDs:      g.source.Elements(pools.Tags, g.source.NumberBetween(0, 4)),
	}
	if authorID, ok := g.source.Element(pools.Authors); ok {
		fields.AuthorID = authorID
	}
	if postType == constant.PostTypePage && len(pools.Parents) > 0 && g.source.BoolWeighted(25) {
		if parentID, ok := g.source.Element(pools.Parents); ok {
			fields.ParentID = parentID
		}
	}

	postID, err := g.store.CreatePost(ctx, fields)
	if err != nil {
		return 0, err
	}

	if attachmentID, ok := g.source.Element(pools.Attachments); ok {
		if err := g.store.SetFeaturedMedia(ctx, postID, attachmentID); err != nil {
			return 0, err
		}
	}
	if err := g.store.AddPostMeta(ctx, postID, constant.SeedRunMetaKey, g.runID); err != nil {
		return 0, err
	}

	for _, hook := range g.hooks {
		if err := hook.PostCreated(ctx, postID, fields); err != nil {
			return 0, fmt.Errorf("帖子 %d 的创建后钩子执行失败: %w", postID, err)
		}
	}
	return postID, nil
}
