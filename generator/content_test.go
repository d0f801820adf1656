package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Xushengqwer/content_faker/fakedata"
)

// stubResolver 固定映射的附件 URL 解析器。
type stubResolver map[uint64]string

func (r stubResolver) AttachmentURL(_ context.Context, id uint64) (string, error) {
	url, ok := r[id]
	if !ok {
		return "", errors.New("附件不存在")
	}
	return url, nil
}

func countBlocks(content string) (paragraphs, images int) {
	return strings.Count(content, "<!-- /wp:paragraph -->"),
		strings.Count(content, "<!-- /wp:image -->")
}

func TestBuildPostContentEmptyPoolAllParagraphs(t *testing.T) {
	source := fakedata.New(7)
	content := buildPostContent(context.Background(), source, stubResolver{}, nil)

	paragraphs, images := countBlocks(content)
	if images != 0 {
		t.Fatalf("附件池为空时不应出现图片块，得到 %d 个", images)
	}
	if paragraphs < minContentBlocks || paragraphs > maxContentBlocks {
		t.Fatalf("块数 %d 超出 [%d, %d]", paragraphs, minContentBlocks, maxContentBlocks)
	}
	if !strings.HasPrefix(content, "<!-- wp:paragraph -->\n<p>") {
		t.Fatalf("段落块格式错误: %q", content[:40])
	}
	// 每个段落块都应有非空正文
	for _, block := range strings.Split(content, "<!-- /wp:paragraph -->") {
		if open := strings.Index(block, "<p>"); open >= 0 {
			text := block[open+len("<p>"):]
			if end := strings.Index(text, "</p>"); end <= 0 {
				t.Fatalf("段落块正文为空: %q", block)
			}
		}
	}
}

func TestBuildPostContentResolverFailureFallsBack(t *testing.T) {
	// 池非空但所有 URL 解析都失败，图片块应退化为段落
	source := fakedata.New(7)
	pool := []uint64{1, 2, 3}
	content := buildPostContent(context.Background(), source, stubResolver{}, pool)

	if _, images := countBlocks(content); images != 0 {
		t.Fatalf("解析失败时不应保留图片块，得到 %d 个", images)
	}
}

func TestBuildPostContentImageMarkup(t *testing.T) {
	resolver := stubResolver{
		1: "https://cdn.example.com/a.jpg",
		2: "https://cdn.example.com/b.jpg",
	}
	pool := []uint64{1, 2}

	// 每个块 10% 概率是图片，多试几个种子必然命中
	for seed := int64(1); seed <= 50; seed++ {
		source := fakedata.New(seed)
		content := buildPostContent(context.Background(), source, resolver, pool)
		if !strings.Contains(content, "<!-- wp:image ") {
			continue
		}

		if !strings.Contains(content, `"sizeSlug":"large"`) {
			t.Fatalf("图片块缺少 sizeSlug: %q", content)
		}
		for _, id := range pool {
			marker := fmt.Sprintf("{\"id\":%d,", id)
			if strings.Contains(content, marker) &&
				!strings.Contains(content, fmt.Sprintf("wp-image-%d", id)) {
				t.Fatalf("图片块 id 与 class 不一致: %q", content)
			}
		}
		return
	}
	t.Fatal("50 个种子内未产出任何图片块")
}

func TestBuildPostContentDeterministic(t *testing.T) {
	resolver := stubResolver{1: "https://cdn.example.com/a.jpg"}
	a := buildPostContent(context.Background(), fakedata.New(11), resolver, []uint64{1})
	b := buildPostContent(context.Background(), fakedata.New(11), resolver, []uint64{1})
	if a != b {
		t.Fatal("同一种子应产出完全相同的正文")
	}
}
