package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/Xushengqwer/content_faker/fakedata"
	"github.com/Xushengqwer/content_faker/models/dto"
	"github.com/Xushengqwer/content_faker/repo/memory"
)

func createPost(t *testing.T, store *memory.Store) uint64 {
	t.Helper()
	id, err := store.CreatePost(context.Background(), &dto.PostFields{
		Type: "post", Title: "demo", Status: "publish",
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestSEOMetaHookTextFields(t *testing.T) {
	store := memory.NewStore()
	hook := NewSEOMetaHook(fakedata.New(21), store, "")
	postID := createPost(t, store)

	if err := hook.PostCreated(context.Background(), postID, nil); err != nil {
		t.Fatal(err)
	}

	meta, ok := store.SEOMeta(postID)
	if !ok {
		t.Fatal("SEO 元数据未写入")
	}

	valid := make(map[string]struct{}, len(replacementVariables))
	for _, v := range replacementVariables {
		valid[v] = struct{}{}
	}
	fields := []string{
		meta.Title, meta.Description,
		meta.OgTitle, meta.OgDescription,
		meta.TwitterTitle, meta.TwitterDescription,
	}
	for _, field := range fields {
		tokens := strings.Split(field, " ")
		if len(tokens) < 2 || len(tokens) > 5 {
			t.Fatalf("token 数 %d 超出 [2,5]: %q", len(tokens), field)
		}
		seen := make(map[string]struct{})
		for _, token := range tokens {
			if _, ok := valid[token]; !ok {
				t.Fatalf("非法 token %q", token)
			}
			if _, dup := seen[token]; dup {
				t.Fatalf("同一字段内 token 重复: %q", field)
			}
			seen[token] = struct{}{}
		}
	}
}

func TestSEOMetaHookDefaults(t *testing.T) {
	store := memory.NewStore()
	hook := NewSEOMetaHook(fakedata.New(1), store, "")
	postID := createPost(t, store)

	if err := hook.PostCreated(context.Background(), postID, nil); err != nil {
		t.Fatal(err)
	}
	meta, _ := store.SEOMeta(postID)

	if meta.OgObjectType != "default" || meta.TwitterCard != "default" ||
		meta.SchemaType != "default" || meta.Priority != "default" || meta.Frequency != "default" {
		t.Fatalf("默认字段值错误: %+v", meta)
	}
	if !meta.RobotsDefault || meta.RobotsMaxSnippet != -1 ||
		meta.RobotsMaxVideoPreview != -1 || meta.RobotsMaxImagePreview != "large" {
		t.Fatalf("robots 默认值错误: %+v", meta)
	}
}

func TestSEOMetaHookMirrorsPostMeta(t *testing.T) {
	store := memory.NewStore()
	hook := NewSEOMetaHook(fakedata.New(8), store, "")
	postID := createPost(t, store)

	if err := hook.PostCreated(context.Background(), postID, nil); err != nil {
		t.Fatal(err)
	}
	meta, _ := store.SEOMeta(postID)
	post, _ := store.Post(postID)

	mirrors := map[string]string{
		"_aioseo_title":               meta.Title,
		"_aioseo_description":         meta.Description,
		"_aioseo_og_title":            meta.OgTitle,
		"_aioseo_og_description":      meta.OgDescription,
		"_aioseo_twitter_title":       meta.TwitterTitle,
		"_aioseo_twitter_description": meta.TwitterDescription,
	}
	for key, want := range mirrors {
		values := post.Meta[key]
		if len(values) != 1 || values[0] != want {
			t.Fatalf("镜像元数据 %q 错误: %v (期望 %q)", key, values, want)
		}
	}
}

func TestSEOMetaHookCustomFieldTokens(t *testing.T) {
	store := memory.NewStore()
	hook := NewSEOMetaHook(fakedata.New(1), store, "demo_")
	postID := createPost(t, store)
	ctx := context.Background()

	if err := store.AddPostMeta(ctx, postID, "demo_color", "red"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddPostMeta(ctx, postID, "other_key", "x"); err != nil {
		t.Fatal(err)
	}

	vocabulary, err := hook.buildVocabulary(ctx, postID)
	if err != nil {
		t.Fatal(err)
	}
	if len(vocabulary) != len(replacementVariables)+1 {
		t.Fatalf("词表大小 %d，期望 %d", len(vocabulary), len(replacementVariables)+1)
	}
	found := false
	for _, token := range vocabulary {
		if token == "#custom_field-demo_color" {
			found = true
		}
		if token == "#custom_field-other_key" {
			t.Fatal("前缀不匹配的自定义字段不应进入词表")
		}
	}
	if !found {
		t.Fatal("词表缺少 #custom_field-demo_color")
	}
}
