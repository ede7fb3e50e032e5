package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Skill categories are free-form strings; these four are the ones the
// public resume groups by.
const (
	SkillCategoryProgramming = "programming"
	SkillCategoryServer      = "server"
	SkillCategoryGame        = "game"
	SkillCategoryMobile      = "mobile"
)

// DefaultProjectImagePath 是未提供图片时项目使用的占位图。
const DefaultProjectImagePath = "/assets/projects/project-placeholder.svg"

// User 表示系统中的账号信息。
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PersonalInfo 表示个人信息快照。允许存在多行历史记录，
// id 最大的一行视为当前版本。
type PersonalInfo struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"size:255" json:"name"`
	Title         string         `gorm:"size:255" json:"title"`
	Experience    string         `gorm:"size:255" json:"experience"`
	DesiredSalary string         `gorm:"size:255" json:"desiredSalary"`
	Email         string         `gorm:"size:255" json:"email"`
	Phone         string         `gorm:"size:64" json:"phone"`
	Location      string         `gorm:"size:255" json:"location"`
	Military      string         `gorm:"size:255" json:"military"`
	Introduction  datatypes.JSON `json:"introduction"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// DesiredCondition 表示希望条件快照，同样取 id 最大的一行。
type DesiredCondition struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Field          string    `gorm:"size:255" json:"field"`
	EmploymentType string    `gorm:"size:64" json:"employmentType"`
	Location       string    `gorm:"size:255" json:"location"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Skill 属于某个分类，展示顺序为插入顺序。
type Skill struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Category  string    `gorm:"size:64;index" json:"category"`
	Name      string    `gorm:"size:255" json:"name"`
	Level     string    `gorm:"size:32" json:"level"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Keyword 是扁平的标签列表。
type Keyword struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Keyword   string    `gorm:"size:255" json:"keyword"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Experience 表示一段工作经历。Achievements 与 Technologies 以 JSON 数组
// 存储，避免分隔字符串在读写边界上的拆接错误。
type Experience struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `gorm:"index" json:"userId"`
	Company      string         `gorm:"size:255" json:"company"`
	Position     string         `gorm:"size:255" json:"position"`
	Period       string         `gorm:"size:255" json:"period"`
	Salary       string         `gorm:"size:255" json:"salary"`
	Project      string         `gorm:"size:255" json:"project,omitempty"`
	Achievements datatypes.JSON `json:"achievements"`
	Technologies datatypes.JSON `json:"technologies"`
	DisplayOrder int            `gorm:"column:display_order;index" json:"order"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Education 表示一段教育经历。
type Education struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `gorm:"index" json:"userId"`
	Institution  string    `gorm:"size:255" json:"institution"`
	Type         string    `gorm:"size:64" json:"type"`
	Period       string    `gorm:"size:255" json:"period"`
	Department   string    `gorm:"size:255" json:"department,omitempty"`
	Major        string    `gorm:"size:255" json:"major,omitempty"`
	Location     string    `gorm:"size:255" json:"location,omitempty"`
	DisplayOrder int       `gorm:"column:display_order;index" json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Project 表示一个项目条目。
type Project struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `gorm:"index" json:"userId"`
	Name         string         `gorm:"size:255" json:"name"`
	Company      string         `gorm:"size:255" json:"company"`
	Period       string         `gorm:"size:255" json:"period"`
	Description  string         `json:"description"`
	Technologies datatypes.JSON `json:"technologies"`
	ImagePath    string         `gorm:"size:512" json:"imagePath"`
	DisplayOrder int            `gorm:"column:display_order;index" json:"order"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// BeforeCreate 填充占位图路径。
func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ImagePath == "" {
		p.ImagePath = DefaultProjectImagePath
	}
	return nil
}
