package resume

// View 是公开简历接口返回的聚合对象。列表条目均为裁剪后的形状，
// 不携带内部字段（id、时间戳、归属）。
type View struct {
	PersonalInfo      PersonalInfoView      `json:"personalInfo"`
	DesiredConditions DesiredConditionsView `json:"desiredConditions"`
	Introduction      []string              `json:"introduction"`
	Skills            SkillsView            `json:"skills"`
	Experience        []ExperienceView      `json:"experience"`
	Education         []EducationView       `json:"education"`
	Projects          []ProjectView         `json:"projects"`
	Portfolio         []string              `json:"portfolio"`
}

// PersonalInfoView 是个人信息的公开形状。
type PersonalInfoView struct {
	Name          string `json:"name"`
	Experience    string `json:"experience"`
	DesiredSalary string `json:"desiredSalary"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Location      string `json:"location"`
	Military      string `json:"military"`
}

// DesiredConditionsView 是希望条件的公开形状。
type DesiredConditionsView struct {
	Field          string `json:"field"`
	EmploymentType string `json:"employmentType"`
	Location       string `json:"location"`
}

// SkillsView 按四个固定分类归组技能，并附带关键字列表。
type SkillsView struct {
	Programming []SkillView `json:"programming"`
	Server      []SkillView `json:"server"`
	Game        []SkillView `json:"game"`
	Mobile      []SkillView `json:"mobile"`
	Keywords    []string    `json:"keywords"`
}

// SkillView 是单个技能的公开形状。
type SkillView struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// ExperienceView 是单段工作经历的公开形状。
type ExperienceView struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Period       string   `json:"period"`
	Salary       string   `json:"salary"`
	Project      string   `json:"project,omitempty"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

// EducationView 是单段教育经历的公开形状。
type EducationView struct {
	Institution string `json:"institution"`
	Type        string `json:"type"`
	Period      string `json:"period"`
	Department  string `json:"department,omitempty"`
	Major       string `json:"major,omitempty"`
	Location    string `json:"location,omitempty"`
}

// ProjectView 是单个项目的公开形状。
type ProjectView struct {
	Name         string   `json:"name"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}
