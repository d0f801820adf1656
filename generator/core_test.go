package generator

import (
	"context"
	"testing"

	"github.com/Xushengqwer/content_faker/constant"
	"github.com/Xushengqwer/content_faker/fakedata"
	"github.com/Xushengqwer/content_faker/repo/memory"
)

// stubImageSource 返回固定字节，不出网。
type stubImageSource struct{}

func (stubImageSource) FetchImage(_ context.Context, _, _ int, _ string) ([]byte, string, error) {
	return []byte{0xFF, 0xD8, 0xFF}, "image/jpeg", nil
}

func contains(pool []uint64, id uint64) bool {
	for _, v := range pool {
		if v == id {
			return true
		}
	}
	return false
}

func TestGenerateUser(t *testing.T) {
	store := memory.NewStore()
	gen := NewCoreGenerator(fakedata.New(1), store, stubImageSource{}, "run-1")

	id, err := gen.GenerateUser(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	user, ok := store.User(id)
	if !ok {
		t.Fatalf("用户 %d 未入库", id)
	}
	if user.Fields.Login == "" || user.Fields.Email == "" {
		t.Fatal("登录名与邮箱不应为空")
	}
	// 未指定角色时默认 author
	if user.Fields.Role != constant.DefaultUserRole {
		t.Fatalf("角色应为 author，得到 %q", user.Fields.Role)
	}
	if user.Fields.RegisteredAt.IsZero() {
		t.Fatal("注册时间不应为零值")
	}

	editorID, err := gen.GenerateUser(context.Background(), "editor")
	if err != nil {
		t.Fatal(err)
	}
	editor, _ := store.User(editorID)
	if editor.Fields.Role != "editor" {
		t.Fatalf("角色应为 editor，得到 %q", editor.Fields.Role)
	}
}

func TestGenerateTermHierarchy(t *testing.T) {
	store := memory.NewStore()
	gen := NewCoreGenerator(fakedata.New(3), store, stubImageSource{}, "run-1")
	ctx := context.Background()

	var created []uint64
	for i := 0; i < 40; i++ {
		id, err := gen.GenerateTerm(ctx, constant.TaxonomyCategory, created)
		if err != nil {
			t.Fatal(err)
		}
		created = append(created, id)
	}

	names := make(map[string]struct{})
	withParent := 0
	for i, id := range created {
		term, ok := store.Term(id)
		if !ok {
			t.Fatalf("词条 %d 未入库", id)
		}
		if _, dup := names[term.Fields.Name]; dup {
			t.Fatalf("同 taxonomy 下名字重复: %q", term.Fields.Name)
		}
		names[term.Fields.Name] = struct{}{}

		if term.Meta[constant.SeedRunMetaKey] != "run-1" {
			t.Fatalf("词条 %d 缺少运行标记", id)
		}
		if term.Fields.ParentID != 0 {
			withParent++
			// 父级只能是本批次更早创建的词条
			if !contains(created[:i], term.Fields.ParentID) {
				t.Fatalf("词条 %d 的父级 %d 不在先前创建的池中", id, term.Fields.ParentID)
			}
		}
	}
	// 首个词条没有可用父级
	first, _ := store.Term(created[0])
	if first.Fields.ParentID != 0 {
		t.Fatal("首个词条不应有父级")
	}
	// 40 次 50% 抽取，两种情况都应出现
	if withParent == 0 || withParent == len(created)-1 {
		t.Fatalf("层级分布异常: %d/%d 带父级", withParent, len(created))
	}
}

func TestGenerateAttachment(t *testing.T) {
	store := memory.NewStore()
	gen := NewCoreGenerator(fakedata.New(1), store, stubImageSource{}, "run-1")

	id, err := gen.GenerateAttachment(context.Background(), 640, 480, "wordpress", 3)
	if err != nil {
		t.Fatal(err)
	}
	url, err := store.AttachmentURL(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	// 文件名由关键词与序号拼接
	if want := "wordpress3.jpg"; url[len(url)-len(want):] != want {
		t.Fatalf("附件 URL 未包含预期文件名: %q", url)
	}
}

func seedPools(t *testing.T, store *memory.Store, gen *CoreGenerator) PostPools {
	t.Helper()
	ctx := context.Background()

	pools := PostPools{}
	for i := 0; i < 3; i++ {
		id, err := gen.GenerateUser(ctx, constant.DefaultUserRole)
		if err != nil {
			t.Fatal(err)
		}
		pools.Authors = append(pools.Authors, id)
	}
	for i := 0; i < 4; i++ {
		id, err := gen.GenerateTerm(ctx, constant.TaxonomyCategory, pools.Categories)
		if err != nil {
			t.Fatal(err)
		}
		pools.Categories = append(pools.Categories, id)
	}
	for i := 0; i < 5; i++ {
		id, err := gen.GenerateTerm(ctx, constant.TaxonomyTag, nil)
		if err != nil {
			t.Fatal(err)
		}
		pools.Tags = append(pools.Tags, id)
	}
	for i := 0; i < 2; i++ {
		id, err := gen.GenerateAttachment(ctx, 640, 480, "wordpress", i)
		if err != nil {
			t.Fatal(err)
		}
		pools.Attachments = append(pools.Attachments, id)
	}
	return pools
}

func TestGeneratePostReferences(t *testing.T) {
	store := memory.NewStore()
	gen := NewCoreGenerator(fakedata.New(9), store, stubImageSource{}, "run-9")
	ctx := context.Background()
	pools := seedPools(t, store, gen)

	for i := 0; i < 30; i++ {
		id, err := gen.GeneratePost(ctx, constant.PostTypePost, pools)
		if err != nil {
			t.Fatal(err)
		}
		post, ok := store.Post(id)
		if !ok {
			t.Fatalf("帖子 %d 未入库", id)
		}

		if post.Fields.Status != "publish" {
			t.Fatalf("状态应为 publish，得到 %q", post.Fields.Status)
		}
		if !contains(pools.Authors, post.Fields.AuthorID) {
			t.Fatalf("作者 %d 不在池中", post.Fields.AuthorID)
		}
		if n := len(post.Fields.CategoryIDs); n < 1 || n > 2 {
			t.Fatalf("分类数 %d 超出 [1,2]", n)
		}
		for _, cid := range post.Fields.CategoryIDs {
			if !contains(pools.Categories, cid) {
				t.Fatalf("分类 %d 不在池中", cid)
			}
		}
		if n := len(post.Fields.TagIDs); n > 4 {
			t.Fatalf("标签数 %d 超出上限 4", n)
		}
		for _, tid := range post.Fields.TagIDs {
			if !contains(pools.Tags, tid) {
				t.Fatalf("标签 %d 不在池中", tid)
			}
		}
		if post.Fields.ModifiedAt.Before(post.Fields.PublishedAt) {
			t.Fatal("修改时间不应早于发布时间")
		}
		if !contains(pools.Attachments, post.FeaturedMediaID) {
			t.Fatalf("特色图 %d 不在附件池中", post.FeaturedMediaID)
		}
		if post.Fields.ParentID != 0 {
			t.Fatal("普通帖子不应有父级")
		}

		marks := post.Meta[constant.SeedRunMetaKey]
		if len(marks) != 1 || marks[0] != "run-9" {
			t.Fatalf("帖子 %d 运行标记错误: %v", id, marks)
		}
	}
}

func TestGeneratePostEmptyPoolsOmitsReferences(t *testing.T) {
	store := memory.NewStore()
	gen := NewCoreGenerator(fakedata.New(5), store, stubImageSource{}, "run-5")

	id, err := gen.GeneratePost(context.Background(), constant.PostTypePost, PostPools{})
	if err != nil {
		t.Fatal(err)
	}
	post, _ := store.Post(id)
	if post.Fields.AuthorID != 0 || post.FeaturedMediaID != 0 ||
		len(post.Fields.CategoryIDs) != 0 || len(post.Fields.TagIDs) != 0 {
		t.Fatal("上游池为空时所有引用都应省略")
	}
}

func TestGeneratePageTitlesUniqueAndParents(t *testing.T) {
	store := memory.NewStore()
	gen := NewCoreGenerator(fakedata.New(13), store, stubImageSource{}, "run-13")
	ctx := context.Background()

	var created []uint64
	titles := make(map[string]struct{})
	for i := 0; i < 30; i++ {
		id, err := gen.GeneratePost(ctx, constant.PostTypePage, PostPools{Parents: created})
		if err != nil {
			t.Fatal(err)
		}
		post, _ := store.Post(id)
		if post.Fields.Type != constant.PostTypePage {
			t.Fatalf("类型应为 page，得到 %q", post.Fields.Type)
		}
		if _, dup := titles[post.Fields.Title]; dup {
			t.Fatalf("页面标题重复: %q", post.Fields.Title)
		}
		titles[post.Fields.Title] = struct{}{}

		if post.Fields.ParentID != 0 && !contains(created, post.Fields.ParentID) {
			t.Fatalf("页面 %d 的父级 %d 不在已创建池中", id, post.Fields.ParentID)
		}
		created = append(created, id)
	}
}
