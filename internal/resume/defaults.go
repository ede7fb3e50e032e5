package resume

// DefaultView 返回数据库为空或读取失败时使用的占位简历。
// 公开接口永远返回 200，失败路径一律落到这个对象上。
func DefaultView() View {
	return View{
		PersonalInfo: PersonalInfoView{
			Name:          "홍길동",
			Experience:    "10년",
			DesiredSalary: "협의 가능",
			Email:         "hello@example.com",
			Phone:         "010-0000-0000",
			Location:      "서울",
			Military:      "군필",
		},
		DesiredConditions: DesiredConditionsView{
			Field:          "서버 개발",
			EmploymentType: "정규직",
			Location:       "서울 전지역",
		},
		Introduction: []string{
			"서버 네트워크 모듈 개발 및 기본 프레임워크 개발이 가능합니다.",
			"다양한 프로젝트 경험을 바탕으로 안정적인 서버 시스템을 구축합니다.",
		},
		Skills: SkillsView{
			Programming: []SkillView{
				{Name: "C++", Level: "advanced"},
				{Name: "Go", Level: "intermediate"},
			},
			Server: []SkillView{
				{Name: "TCP/IP Networking", Level: "advanced"},
			},
			Game: []SkillView{
				{Name: "MMORPG 서버 개발", Level: "advanced"},
			},
			Mobile: []SkillView{
				{Name: "iOS/Android 앱 개발", Level: "intermediate"},
			},
			Keywords: []string{"네트워크", "IOCP", "DB"},
		},
		Experience: []ExperienceView{
			{
				Company:      "예시 회사",
				Position:     "서버 개발자",
				Period:       "2020.01 - 2023.12",
				Salary:       "협의",
				Achievements: []string{"서버 아키텍처 개선", "응답 시간 30% 단축"},
				Technologies: []string{"C++", "MSSQL"},
			},
		},
		Education: []EducationView{
			{
				Institution: "예시 대학교",
				Type:        "university",
				Period:      "2010 - 2014",
				Major:       "컴퓨터공학",
			},
		},
		Projects: []ProjectView{
			{
				Name:         "예시 프로젝트",
				Company:      "예시 회사",
				Period:       "2022 - 2023",
				Description:  "서버 성능 최적화 프로젝트",
				Technologies: []string{"C++", "MSSQL"},
			},
		},
		Portfolio: []string{},
	}
}
