// Package memory 提供 ContentStore / StorefrontStore 的进程内实现。
// 用途有二：测试里充当存储替身，以及作为内置 mock 店面服务（cmd/mockstore）
// 的后端。所有记录只存活在进程内存中。
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Xushengqwer/content_faker/models/dto"
)

// UserRecord 内存中的用户记录。
type UserRecord struct {
	ID     uint64
	Fields dto.UserFields
}

// TermRecord 内存中的词条记录。
type TermRecord struct {
	ID       uint64
	Taxonomy string
	Fields   dto.TermFields
	Meta     map[string]string
}

// AttachmentRecord 内存中的附件记录。
type AttachmentRecord struct {
	ID     uint64
	Upload dto.MediaUpload
	URL    string
}

// PostRecord 内存中的帖子记录。
type PostRecord struct {
	ID              uint64
	Fields          dto.PostFields
	FeaturedMediaID uint64
	Meta            map[string][]string // 同键可多值，与帖子元数据语义一致
}

// Store 进程内存储，实现 repo.ContentStore 与 repo.StorefrontStore。
// 并发安全：mock 店面服务会从多个请求 goroutine 调用。
type Store struct {
	mu     sync.Mutex
	nextID uint64

	users       map[uint64]*UserRecord
	terms       map[uint64]*TermRecord
	attachments map[uint64]*AttachmentRecord
	posts       map[uint64]*PostRecord
	seoMetas    map[uint64]*dto.SEOMetaFields // key: postID

	productCategories map[uint64]*dto.ProductCategoryCreateRequest
	brands            map[uint64]*dto.BrandCreateRequest
	products          map[uint64]*dto.ProductCreateRequest
	reviews           map[uint64]*dto.ReviewCreateRequest
}

// NewStore 创建空的进程内存储。
func NewStore() *Store {
	return &Store{
		users:             make(map[uint64]*UserRecord),
		terms:             make(map[uint64]*TermRecord),
		attachments:       make(map[uint64]*AttachmentRecord),
		posts:             make(map[uint64]*PostRecord),
		seoMetas:          make(map[uint64]*dto.SEOMetaFields),
		productCategories: make(map[uint64]*dto.ProductCategoryCreateRequest),
		brands:            make(map[uint64]*dto.BrandCreateRequest),
		products:          make(map[uint64]*dto.ProductCreateRequest),
		reviews:           make(map[uint64]*dto.ReviewCreateRequest),
	}
}

// allocate 分配下一个标识符。调用方必须已持有锁。
func (s *Store) allocate() uint64 {
	s.nextID++
	return s.nextID
}

// --- repo.ContentStore ---

func (s *Store) CreateUser(_ context.Context, fields *dto.UserFields) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocate()
	s.users[id] = &UserRecord{ID: id, Fields: *fields}
	return id, nil
}

func (s *Store) CreateTerm(_ context.Context, taxonomy string, fields *dto.TermFields) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocate()
	s.terms[id] = &TermRecord{
		ID:       id,
		Taxonomy: taxonomy,
		Fields:   *fields,
		Meta:     make(map[string]string),
	}
	return id, nil
}

func (s *Store) StoreMedia(_ context.Context, media *dto.MediaUpload) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocate()
	s.attachments[id] = &AttachmentRecord{
		ID:     id,
		Upload: *media,
		URL:    fmt.Sprintf("https://demo.local/media/%d/%s", id, media.FileName),
	}
	return id, nil
}

func (s *Store) AttachmentURL(_ context.Context, attachmentID uint64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attachment, ok := s.attachments[attachmentID]
	if !ok {
		return "", fmt.Errorf("附件 %d 不存在", attachmentID)
	}
	return attachment.URL, nil
}

func (s *Store) CreatePost(_ context.Context, fields *dto.PostFields) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocate()
	s.posts[id] = &PostRecord{
		ID:     id,
		Fields: *fields,
		Meta:   make(map[string][]string),
	}
	return id, nil
}

func (s *Store) SetFeaturedMedia(_ context.Context, postID, attachmentID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return fmt.Errorf("帖子 %d 不存在", postID)
	}
	post.FeaturedMediaID = attachmentID
	return nil
}

func (s *Store) AddPostMeta(_ context.Context, postID uint64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return fmt.Errorf("帖子 %d 不存在", postID)
	}
	post.Meta[key] = append(post.Meta[key], value)
	return nil
}

func (s *Store) SetTermMeta(_ context.Context, termID uint64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	term, ok := s.terms[termID]
	if !ok {
		return fmt.Errorf("词条 %d 不存在", termID)
	}
	term.Meta[key] = value
	return nil
}

func (s *Store) PostCustomFieldKeys(_ context.Context, postID uint64, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return nil, fmt.Errorf("帖子 %d 不存在", postID)
	}
	var keys []string
	for key := range post.Meta {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *Store) CreateSEOMeta(_ context.Context, meta *dto.SEOMetaFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.seoMetas[meta.PostID]; dup {
		return fmt.Errorf("帖子 %d 已存在 SEO 元数据记录", meta.PostID)
	}
	clone := *meta
	s.seoMetas[meta.PostID] = &clone
	return nil
}

// --- repo.StorefrontStore ---

func (s *Store) CreateProductCategory(_ context.Context, req *dto.ProductCategoryCreateRequest) (uint64, error) {
	if req.Name == "" {
		return 0, fmt.Errorf("商品分类名称不能为空")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocate()
	clone := *req
	s.productCategories[id] = &clone
	return id, nil
}

func (s *Store) CreateBrand(_ context.Context, req *dto.BrandCreateRequest) (uint64, error) {
	if req.Name == "" {
		return 0, fmt.Errorf("品牌名称不能为空")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocate()
	clone := *req
	s.brands[id] = &clone
	return id, nil
}

func (s *Store) CreateProduct(_ context.Context, req *dto.ProductCreateRequest) (uint64, error) {
	if req.Name == "" {
		return 0, fmt.Errorf("商品名称不能为空")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocate()
	clone := *req
	s.products[id] = &clone
	return id, nil
}

func (s *Store) CreateReview(_ context.Context, req *dto.ReviewCreateRequest) (uint64, error) {
	if req.ProductID == 0 {
		return 0, fmt.Errorf("评价缺少 product_id")
	}
	s.mu.Lock()
	if _, ok := s.products[req.ProductID]; !ok {
		s.mu.Unlock()
		return 0, fmt.Errorf("商品 %d 不存在", req.ProductID)
	}
	id := s.allocate()
	clone := *req
	s.reviews[id] = &clone
	s.mu.Unlock()
	return id, nil
}

// --- 只读访问（测试与 mock 店面的查询端） ---

// User 按 ID 取用户记录。
func (s *Store) User(id uint64) (*UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

// Term 按 ID 取词条记录。
func (s *Store) Term(id uint64) (*TermRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.terms[id]
	return t, ok
}

// Post 按 ID 取帖子记录。
func (s *Store) Post(id uint64) (*PostRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	return p, ok
}

// SEOMeta 按帖子 ID 取 SEO 元数据记录。
func (s *Store) SEOMeta(postID uint64) (*dto.SEOMetaFields, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.seoMetas[postID]
	return m, ok
}

// Product 按 ID 取商品。
func (s *Store) Product(id uint64) (*dto.ProductCreateRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok
}

// Review 按 ID 取评价。
func (s *Store) Review(id uint64) (*dto.ReviewCreateRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	return r, ok
}

// Counts 各实体的记录数，用于测试断言与 mock 店面的状态接口。
type Counts struct {
	Users             int `json:"users"`
	Terms             int `json:"terms"`
	Attachments       int `json:"attachments"`
	Posts             int `json:"posts"`
	SEOMetas          int `json:"seoMetas"`
	ProductCategories int `json:"productCategories"`
	Brands            int `json:"brands"`
	Products          int `json:"products"`
	Reviews           int `json:"reviews"`
}

// Stats 当前记录数快照。
func (s *Store) Stats() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counts{
		Users:             len(s.users),
		Terms:             len(s.terms),
		Attachments:       len(s.attachments),
		Posts:             len(s.posts),
		SEOMetas:          len(s.seoMetas),
		ProductCategories: len(s.productCategories),
		Brands:            len(s.brands),
		Products:          len(s.products),
		Reviews:           len(s.reviews),
	}
}
