package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xushengqwer/content_faker/fakedata"
)

// AttachmentURLResolver 把附件 ID 解析成可公开访问的 URL。
// repo.ContentStore 直接满足该接口。
type AttachmentURLResolver interface {
	AttachmentURL(ctx context.Context, attachmentID uint64) (string, error)
}

// 每篇帖子正文的块数区间
const (
	minContentBlocks = 8
	maxContentBlocks = 12
)

// 非图片块的概率（百分比）。图片块只在附件池非空时出现。
const paragraphBlockChance = 90

// paragraphBlock 渲染一个编辑器段落块。
func paragraphBlock(text string) string {
	return "<!-- wp:paragraph -->\n<p>" + text + "</p>\n<!-- /wp:paragraph -->"
}

// imageBlock 渲染一个编辑器图片块。
func imageBlock(attachmentID uint64, url string) string {
	return fmt.Sprintf("<!-- wp:image {\"id\":%d,\"sizeSlug\":\"large\"} -->\n"+
		"<figure class=\"wp-block-image size-large\"><img src=\"%s\" alt=\"\" class=\"wp-image-%d\"/></figure>\n"+
		"<!-- /wp:image -->", attachmentID, url, attachmentID)
}

// buildPostContent 组装帖子正文：8 到 12 个内容块，每块 90% 概率是段落，
// 否则从附件池随机挑一张图渲染图片块。附件池为空时全部退化为段落。
// 图片 URL 解析失败的块同样退化为段落，正文组装从不失败。
func buildPostContent(ctx context.Context, source *fakedata.Source, resolver AttachmentURLResolver, attachmentPool []uint64) string {
	blockCount := source.NumberBetween(minContentBlocks, maxContentBlocks)
	blocks := make([]string, 0, blockCount)

	for i := 0; i < blockCount; i++ {
		attachmentID, hasAttachment := uint64(0), false
		if !source.BoolWeighted(paragraphBlockChance) {
			attachmentID, hasAttachment = source.Element(attachmentPool)
		}

		if hasAttachment {
			url, err := resolver.AttachmentURL(ctx, attachmentID)
			if err == nil {
				blocks = append(blocks, imageBlock(attachmentID, url))
				continue
			}
		}
		blocks = append(blocks, paragraphBlock(source.Paragraph()))
	}

	return strings.Join(blocks, "\n")
}
