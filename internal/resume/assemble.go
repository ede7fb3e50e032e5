package resume

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"gorm.io/datatypes"

	"foliocms/internal/content"
	"foliocms/internal/database"
	"foliocms/internal/errcode"
)

// Assembler 将内容存取层的当前状态拼装成一份公开简历。
type Assembler struct {
	stores *content.Stores
	logger *slog.Logger
}

// NewAssembler 构造拼装器。
func NewAssembler(stores *content.Stores, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{stores: stores, logger: logger}
}

// Assemble 返回当前公开简历。个人信息或希望条件任一缺失、
// 或任何读取失败时，整体回落到占位简历，绝不向上抛错。
func (a *Assembler) Assemble(ctx context.Context) View {
	personalInfo, err := a.stores.PersonalInfo.Latest(ctx)
	if err != nil {
		a.logFallback("personal info", err)
		return DefaultView()
	}
	desiredCondition, err := a.stores.DesiredConditions.Latest(ctx)
	if err != nil {
		a.logFallback("desired condition", err)
		return DefaultView()
	}

	skills, err := a.assembleSkills(ctx)
	if err != nil {
		a.logFallback("skills", err)
		return DefaultView()
	}

	experiences, err := a.stores.Experiences.List(ctx)
	if err != nil {
		a.logFallback("experiences", err)
		return DefaultView()
	}
	educations, err := a.stores.Educations.List(ctx)
	if err != nil {
		a.logFallback("educations", err)
		return DefaultView()
	}
	projects, err := a.stores.Projects.List(ctx)
	if err != nil {
		a.logFallback("projects", err)
		return DefaultView()
	}

	view := View{
		PersonalInfo: PersonalInfoView{
			Name:          personalInfo.Name,
			Experience:    personalInfo.Experience,
			DesiredSalary: personalInfo.DesiredSalary,
			Email:         personalInfo.Email,
			Phone:         personalInfo.Phone,
			Location:      personalInfo.Location,
			Military:      personalInfo.Military,
		},
		DesiredConditions: DesiredConditionsView{
			Field:          desiredCondition.Field,
			EmploymentType: desiredCondition.EmploymentType,
			Location:       desiredCondition.Location,
		},
		Introduction: decodeStrings(personalInfo.Introduction),
		Skills:       skills,
		Experience:   make([]ExperienceView, 0, len(experiences)),
		Education:    make([]EducationView, 0, len(educations)),
		Projects:     make([]ProjectView, 0, len(projects)),
		Portfolio:    []string{},
	}

	for _, e := range experiences {
		view.Experience = append(view.Experience, ExperienceView{
			Company:      e.Company,
			Position:     e.Position,
			Period:       e.Period,
			Salary:       e.Salary,
			Project:      e.Project,
			Achievements: decodeStrings(e.Achievements),
			Technologies: decodeStrings(e.Technologies),
		})
	}
	for _, e := range educations {
		view.Education = append(view.Education, EducationView{
			Institution: e.Institution,
			Type:        e.Type,
			Period:      e.Period,
			Department:  e.Department,
			Major:       e.Major,
			Location:    e.Location,
		})
	}
	for _, p := range projects {
		view.Projects = append(view.Projects, ProjectView{
			Name:         p.Name,
			Company:      p.Company,
			Period:       p.Period,
			Description:  p.Description,
			Technologies: decodeStrings(p.Technologies),
		})
	}

	return view
}

func (a *Assembler) assembleSkills(ctx context.Context) (SkillsView, error) {
	view := SkillsView{Keywords: []string{}}

	categories := []struct {
		name   string
		target *[]SkillView
	}{
		{database.SkillCategoryProgramming, &view.Programming},
		{database.SkillCategoryServer, &view.Server},
		{database.SkillCategoryGame, &view.Game},
		{database.SkillCategoryMobile, &view.Mobile},
	}
	for _, category := range categories {
		skills, err := a.stores.Skills.ByCategory(ctx, category.name)
		if err != nil {
			return SkillsView{}, err
		}
		*category.target = make([]SkillView, 0, len(skills))
		for _, s := range skills {
			*category.target = append(*category.target, SkillView{Name: s.Name, Level: s.Level})
		}
	}

	keywords, err := a.stores.Keywords.List(ctx)
	if err != nil {
		return SkillsView{}, err
	}
	for _, k := range keywords {
		view.Keywords = append(view.Keywords, k.Keyword)
	}

	return view, nil
}

func (a *Assembler) logFallback(component string, err error) {
	if errors.Is(err, errcode.ErrNotFound) {
		return
	}
	a.logger.Warn("resume assembly fell back to defaults",
		slog.String("component", component),
		slog.Any("error", err),
	)
}

// decodeStrings 将 JSON 数组列解码为字符串切片，空值与坏数据都按空列表处理。
func decodeStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil || values == nil {
		return []string{}
	}
	return values
}
