package api

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"foliocms/internal/database"
	"foliocms/internal/errcode"
)

// 各实体的请求体。字段全部用指针（或切片）表达"未提供"，
// 同一个结构同时服务创建与部分更新。

func bindValidationError(err error) error {
	return fmt.Errorf("%w: %v", errcode.ErrValidation, err)
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func uintVal(p *uint) uint {
	if p == nil {
		return 0
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// jsonStrings 把字符串切片编码为 JSON 数组列，nil 按空数组存储。
func jsonStrings(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(data)
}

type personalInfoRequest struct {
	Name          *string  `json:"name"`
	Title         *string  `json:"title"`
	Experience    *string  `json:"experience"`
	DesiredSalary *string  `json:"desiredSalary"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Location      *string  `json:"location"`
	Military      *string  `json:"military"`
	Introduction  []string `json:"introduction"`
}

func bindPersonalInfo(c *gin.Context) (database.PersonalInfo, map[string]any, error) {
	var req personalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return database.PersonalInfo{}, nil, bindValidationError(err)
	}

	record := database.PersonalInfo{
		Name:          strVal(req.Name),
		Title:         strVal(req.Title),
		Experience:    strVal(req.Experience),
		DesiredSalary: strVal(req.DesiredSalary),
		Email:         strVal(req.Email),
		Phone:         strVal(req.Phone),
		Location:      strVal(req.Location),
		Military:      strVal(req.Military),
		Introduction:  jsonStrings(req.Introduction),
	}

	updates := map[string]any{}
	putString(updates, "name", req.Name)
	putString(updates, "title", req.Title)
	putString(updates, "experience", req.Experience)
	putString(updates, "desired_salary", req.DesiredSalary)
	putString(updates, "email", req.Email)
	putString(updates, "phone", req.Phone)
	putString(updates, "location", req.Location)
	putString(updates, "military", req.Military)
	if req.Introduction != nil {
		updates["introduction"] = jsonStrings(req.Introduction)
	}
	return record, updates, nil
}

type desiredConditionRequest struct {
	Field          *string `json:"field"`
	EmploymentType *string `json:"employmentType"`
	Location       *string `json:"location"`
}

func bindDesiredCondition(c *gin.Context) (database.DesiredCondition, map[string]any, error) {
	var req desiredConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return database.DesiredCondition{}, nil, bindValidationError(err)
	}

	record := database.DesiredCondition{
		Field:          strVal(req.Field),
		EmploymentType: strVal(req.EmploymentType),
		Location:       strVal(req.Location),
	}

	updates := map[string]any{}
	putString(updates, "field", req.Field)
	putString(updates, "employment_type", req.EmploymentType)
	putString(updates, "location", req.Location)
	return record, updates, nil
}

type skillRequest struct {
	Category *string `json:"category"`
	Name     *string `json:"name"`
	Level    *string `json:"level"`
}

func bindSkill(c *gin.Context) (database.Skill, map[string]any, error) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return database.Skill{}, nil, bindValidationError(err)
	}

	record := database.Skill{
		Category: strVal(req.Category),
		Name:     strVal(req.Name),
		Level:    strVal(req.Level),
	}

	updates := map[string]any{}
	putString(updates, "category", req.Category)
	putString(updates, "name", req.Name)
	putString(updates, "level", req.Level)
	return record, updates, nil
}

type keywordRequest struct {
	Keyword *string `json:"keyword"`
}

func bindKeyword(c *gin.Context) (database.Keyword, map[string]any, error) {
	var req keywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return database.Keyword{}, nil, bindValidationError(err)
	}

	record := database.Keyword{Keyword: strVal(req.Keyword)}

	updates := map[string]any{}
	putString(updates, "keyword", req.Keyword)
	return record, updates, nil
}

type experienceRequest struct {
	UserID       *uint    `json:"userId"`
	Company      *string  `json:"company"`
	Position     *string  `json:"position"`
	Period       *string  `json:"period"`
	Salary       *string  `json:"salary"`
	Project      *string  `json:"project"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	Order        *int     `json:"order"`
}

func bindExperience(c *gin.Context) (database.Experience, map[string]any, error) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return database.Experience{}, nil, bindValidationError(err)
	}

	record := database.Experience{
		UserID:       uintVal(req.UserID),
		Company:      strVal(req.Company),
		Position:     strVal(req.Position),
		Period:       strVal(req.Period),
		Salary:       strVal(req.Salary),
		Project:      strVal(req.Project),
		Achievements: jsonStrings(req.Achievements),
		Technologies: jsonStrings(req.Technologies),
		DisplayOrder: intVal(req.Order),
	}

	updates := map[string]any{}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	putString(updates, "company", req.Company)
	putString(updates, "position", req.Position)
	putString(updates, "period", req.Period)
	putString(updates, "salary", req.Salary)
	putString(updates, "project", req.Project)
	if req.Achievements != nil {
		updates["achievements"] = jsonStrings(req.Achievements)
	}
	if req.Technologies != nil {
		updates["technologies"] = jsonStrings(req.Technologies)
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	return record, updates, nil
}

type educationRequest struct {
	UserID      *uint   `json:"userId"`
	Institution *string `json:"institution"`
	Type        *string `json:"type"`
	Period      *string `json:"period"`
	Department  *string `json:"department"`
	Major       *string `json:"major"`
	Location    *string `json:"location"`
	Order       *int    `json:"order"`
}

func bindEducation(c *gin.Context) (database.Education, map[string]any, error) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return database.Education{}, nil, bindValidationError(err)
	}

	record := database.Education{
		UserID:       uintVal(req.UserID),
		Institution:  strVal(req.Institution),
		Type:         strVal(req.Type),
		Period:       strVal(req.Period),
		Department:   strVal(req.Department),
		Major:        strVal(req.Major),
		Location:     strVal(req.Location),
		DisplayOrder: intVal(req.Order),
	}

	updates := map[string]any{}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	putString(updates, "institution", req.Institution)
	putString(updates, "type", req.Type)
	putString(updates, "period", req.Period)
	putString(updates, "department", req.Department)
	putString(updates, "major", req.Major)
	putString(updates, "location", req.Location)
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	return record, updates, nil
}

type projectRequest struct {
	UserID       *uint    `json:"userId"`
	Name         *string  `json:"name"`
	Company      *string  `json:"company"`
	Period       *string  `json:"period"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	ImagePath    *string  `json:"imagePath"`
	Order        *int     `json:"order"`
}

func bindProject(c *gin.Context) (database.Project, map[string]any, error) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return database.Project{}, nil, bindValidationError(err)
	}

	record := database.Project{
		UserID:       uintVal(req.UserID),
		Name:         strVal(req.Name),
		Company:      strVal(req.Company),
		Period:       strVal(req.Period),
		Description:  strVal(req.Description),
		Technologies: jsonStrings(req.Technologies),
		ImagePath:    strVal(req.ImagePath),
		DisplayOrder: intVal(req.Order),
	}

	updates := map[string]any{}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	putString(updates, "name", req.Name)
	putString(updates, "company", req.Company)
	putString(updates, "period", req.Period)
	putString(updates, "description", req.Description)
	if req.Technologies != nil {
		updates["technologies"] = jsonStrings(req.Technologies)
	}
	putString(updates, "image_path", req.ImagePath)
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	return record, updates, nil
}

func putString(updates map[string]any, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
