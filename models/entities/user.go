package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// User 演示作者账号实体
// - 表名: users
// - 密码以 bcrypt 散列存储，明文只存在于生成过程的内存中
type User struct {
	entities.BaseModel // 嵌入自定义的 BaseModel，包含 ID, CreatedAt, UpdatedAt, DeletedAt

	// 登录名，单次填充运行内由随机字段源保证唯一
	Login string `gorm:"type:varchar(60);not null;uniqueIndex"`

	// bcrypt 密码散列
	PasswordHash string `gorm:"type:varchar(255);not null"`

	// 个人主页 URL
	URL string `gorm:"type:varchar(255)"`

	Email     string `gorm:"type:varchar(100);not null"`
	FirstName string `gorm:"type:varchar(50)"`
	LastName  string `gorm:"type:varchar(50)"`

	// 个人简介，随机段落
	Bio string `gorm:"type:text"`

	// 注册时间，取值范围为本世纪内的随机时刻
	RegisteredAt time.Time `gorm:"not null"`

	// 角色，填充工具默认创建 author
	Role string `gorm:"type:varchar(30);not null;default:author"`
}
