package mysql

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_faker/constant"
	"github.com/Xushengqwer/content_faker/dependencies"
	"github.com/Xushengqwer/content_faker/models/dto"
	"github.com/Xushengqwer/content_faker/models/entities"
	"github.com/Xushengqwer/content_faker/repo"
)

// contentStore 是 repo.ContentStore 的 MySQL/GORM 实现。
// 媒体二进制不落库：上传到 COS 后只在 attachments 表里记 URL 与对象键。
type contentStore struct {
	db        *gorm.DB
	cosClient dependencies.COSClientInterface // 可为 nil，此时媒体旁路存储不可用
	logger    *core.ZapLogger
}

// NewContentStore 构造 MySQL 内容存储适配器。
// cosClient 传 nil 表示 COS 未配置：StoreMedia 将对每次调用返回错误，
// 由批次执行器降级为附件逐项警告。
func NewContentStore(db *gorm.DB, cosClient dependencies.COSClientInterface, logger *core.ZapLogger) repo.ContentStore {
	return &contentStore{
		db:        db,
		cosClient: cosClient,
		logger:    logger,
	}
}

func (s *contentStore) CreateUser(ctx context.Context, fields *dto.UserFields) (uint64, error) {
	// 与平台侧一致，密码只存 bcrypt 散列
	hash, err := bcrypt.GenerateFromPassword([]byte(fields.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("密码散列失败: %w", err)
	}

	user := &entities.User{
		Login:        fields.Login,
		PasswordHash: string(hash),
		URL:          fields.URL,
		Email:        fields.Email,
		FirstName:    fields.FirstName,
		LastName:     fields.LastName,
		Bio:          fields.Bio,
		RegisteredAt: fields.RegisteredAt,
		Role:         fields.Role,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		s.logger.Error("插入用户记录失败", zap.String("login", fields.Login), zap.Error(err))
		return 0, fmt.Errorf("插入用户记录失败: %w", err)
	}
	return user.ID, nil
}

func (s *contentStore) CreateTerm(ctx context.Context, taxonomy string, fields *dto.TermFields) (uint64, error) {
	term := &entities.Term{
		Taxonomy:    taxonomy,
		Name:        fields.Name,
		Description: fields.Description,
		ParentID:    fields.ParentID,
	}
	if err := s.db.WithContext(ctx).Create(term).Error; err != nil {
		s.logger.Error("插入词条记录失败",
			zap.String("taxonomy", taxonomy), zap.String("name", fields.Name), zap.Error(err))
		return 0, fmt.Errorf("插入词条记录失败: %w", err)
	}
	return term.ID, nil
}

// buildMediaObjectKey 生成 COS 对象键：demo/media/YYYYMMDD/uuid.ext
func (s *contentStore) buildMediaObjectKey(fileName string) string {
	datePrefix := time.Now().Format("20060102")
	extension := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s%s/%s%s",
		constant.COSObjectKeyPrefixDemoMedia, datePrefix, uuid.NewString(), extension)
}

func (s *contentStore) StoreMedia(ctx context.Context, media *dto.MediaUpload) (uint64, error) {
	if s.cosClient == nil {
		return 0, fmt.Errorf("媒体存储不可用: COS 未配置")
	}

	objectKey := s.buildMediaObjectKey(media.FileName)
	publicURL, err := s.cosClient.UploadFile(ctx, objectKey,
		bytes.NewReader(media.Data), int64(len(media.Data)), media.ContentType)
	if err != nil {
		return 0, fmt.Errorf("上传媒体文件到 COS 失败: %w", err)
	}

	attachment := &entities.Attachment{
		FileName:    media.FileName,
		ContentType: media.ContentType,
		URL:         publicURL,
		ObjectKey:   objectKey,
		Keyword:     media.Keyword,
		Width:       media.Width,
		Height:      media.Height,
		FileSize:    int64(len(media.Data)),
	}
	if err := s.db.WithContext(ctx).Create(attachment).Error; err != nil {
		// 数据库插入失败时清理已上传的对象，避免产生孤儿文件
		if delErr := s.cosClient.DeleteObject(ctx, objectKey); delErr != nil {
			s.logger.Warn("回滚 COS 对象失败，可能残留孤儿文件",
				zap.String("objectKey", objectKey), zap.Error(delErr))
		}
		return 0, fmt.Errorf("插入附件记录失败: %w", err)
	}
	return attachment.ID, nil
}

func (s *contentStore) AttachmentURL(ctx context.Context, attachmentID uint64) (string, error) {
	var attachment entities.Attachment
	if err := s.db.WithContext(ctx).First(&attachment, attachmentID).Error; err != nil {
		return "", fmt.Errorf("查询附件 %d 失败: %w", attachmentID, err)
	}
	return attachment.URL, nil
}

func (s *contentStore) CreatePost(ctx context.Context, fields *dto.PostFields) (uint64, error) {
	var postID uint64

	// 帖子主体与词条关联在一个事务内写入
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := &entities.Post{
			Type:        fields.Type,
			AuthorID:    fields.AuthorID,
			Title:       fields.Title,
			Content:     fields.Content,
			Status:      fields.Status,
			PublishedAt: fields.PublishedAt,
			ModifiedAt:  fields.ModifiedAt,
			ParentID:    fields.ParentID,
		}
		if err := tx.Create(post).Error; err != nil {
			return fmt.Errorf("插入帖子记录失败: %w", err)
		}

		termIDs := make([]uint64, 0, len(fields.CategoryIDs)+len(fields.TagIDs))
		termIDs = append(termIDs, fields.CategoryIDs...)
		termIDs = append(termIDs, fields.TagIDs...)
		if len(termIDs) > 0 {
			relations := make([]*entities.PostTerm, len(termIDs))
			for i, termID := range termIDs {
				relations[i] = &entities.PostTerm{PostID: post.ID, TermID: termID}
			}
			if err := tx.Create(&relations).Error; err != nil {
				return fmt.Errorf("插入帖子词条关联失败: %w", err)
			}
		}

		postID = post.ID
		return nil
	})
	if err != nil {
		s.logger.Error("创建帖子事务失败", zap.String("title", fields.Title), zap.Error(err))
		return 0, err
	}
	return postID, nil
}

func (s *contentStore) SetFeaturedMedia(ctx context.Context, postID, attachmentID uint64) error {
	result := s.db.WithContext(ctx).Model(&entities.Post{}).
		Where("id = ?", postID).
		Update("featured_media_id", attachmentID)
	if result.Error != nil {
		return fmt.Errorf("设置帖子 %d 特色图失败: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("设置特色图失败: 帖子 %d 不存在", postID)
	}
	return nil
}

func (s *contentStore) AddPostMeta(ctx context.Context, postID uint64, key, value string) error {
	meta := &entities.PostMeta{PostID: postID, MetaKey: key, MetaValue: value}
	if err := s.db.WithContext(ctx).Create(meta).Error; err != nil {
		return fmt.Errorf("插入帖子元数据失败 (post=%d, key=%s): %w", postID, key, err)
	}
	return nil
}

func (s *contentStore) SetTermMeta(ctx context.Context, termID uint64, key, value string) error {
	meta := &entities.TermMeta{TermID: termID, MetaKey: key, MetaValue: value}
	if err := s.db.WithContext(ctx).Create(meta).Error; err != nil {
		return fmt.Errorf("插入词条元数据失败 (term=%d, key=%s): %w", termID, key, err)
	}
	return nil
}

func (s *contentStore) PostCustomFieldKeys(ctx context.Context, postID uint64, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&entities.PostMeta{}).
		Where("post_id = ? AND meta_key LIKE ?", postID, prefix+"%").
		Distinct().
		Pluck("meta_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("查询帖子 %d 自定义字段键失败: %w", postID, err)
	}
	return keys, nil
}

func (s *contentStore) CreateSEOMeta(ctx context.Context, meta *dto.SEOMetaFields) error {
	record := &entities.SEOMeta{
		PostID:                meta.PostID,
		Title:                 meta.Title,
		Description:           meta.Description,
		OgTitle:               meta.OgTitle,
		OgDescription:         meta.OgDescription,
		TwitterTitle:          meta.TwitterTitle,
		TwitterDescription:    meta.TwitterDescription,
		OgObjectType:          meta.OgObjectType,
		OgImageType:           meta.OgImageType,
		TwitterCard:           meta.TwitterCard,
		TwitterImageType:      meta.TwitterImageType,
		TwitterUseOg:          meta.TwitterUseOg,
		SchemaType:            meta.SchemaType,
		PillarContent:         meta.PillarContent,
		RobotsDefault:         meta.RobotsDefault,
		RobotsMaxSnippet:      meta.RobotsMaxSnippet,
		RobotsMaxVideoPreview: meta.RobotsMaxVideoPreview,
		RobotsMaxImagePreview: meta.RobotsMaxImagePreview,
		Priority:              meta.Priority,
		Frequency:             meta.Frequency,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("插入 SEO 元数据记录失败 (post=%d): %w", meta.PostID, err)
	}
	return nil
}
