package model

// Portfolio 作品集数据文档，字段顺序即JSON输出顺序
type Portfolio struct {
	Profile        Profile         `json:"profile" yaml:"profile"`
	Experience     []Experience    `json:"experience" yaml:"experience"`
	Education      []Education     `json:"education" yaml:"education"`
	Skills         Skills          `json:"skills" yaml:"skills"`
	Projects       []Project       `json:"projects" yaml:"projects"`
	Certifications []Certification `json:"certifications" yaml:"certifications"`
}

// NewPortfolio 创建空文档，所有列表初始化为空切片（序列化为[]而不是null）
func NewPortfolio() *Portfolio {
	return &Portfolio{
		Experience: []Experience{},
		Education:  []Education{},
		Skills: Skills{
			Technical: []TechnicalSkill{},
			Languages: []LanguageSkill{},
			Soft:      []string{},
		},
		Projects:       []Project{},
		Certifications: []Certification{},
	}
}

// ========== Profile ==========

// Profile 个人资料
type Profile struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Location string `json:"location" yaml:"location"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`       // 需手动补充
	LinkedIn string `json:"linkedin" yaml:"linkedin"` // 基础URL + Public Profile URL最后一段
	GitHub   string `json:"github" yaml:"github"`     // 需手动补充
	Website  string `json:"website" yaml:"website"`
	Photo    string `json:"photo" yaml:"photo"`
	About    string `json:"about" yaml:"about"`
}

// ========== Experience ==========

// Experience 工作经历
type Experience struct {
	Position     string   `json:"position" yaml:"position"`
	Company      string   `json:"company" yaml:"company"`
	Location     string   `json:"location" yaml:"location"`
	StartDate    string   `json:"startDate" yaml:"startDate"`
	EndDate      string   `json:"endDate" yaml:"endDate"`
	Current      bool     `json:"current" yaml:"current"`
	Description  string   `json:"description" yaml:"description"`
	Achievements []string `json:"achievements" yaml:"achievements"`
}

// ========== Education ==========

// Education 教育经历
type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Location    string `json:"location" yaml:"location"` // LinkedIn导出不提供
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
}

// ========== Skills ==========

// Skills 技能分组
type Skills struct {
	Technical []TechnicalSkill `json:"technical" yaml:"technical"`
	Languages []LanguageSkill  `json:"languages" yaml:"languages"`
	Soft      []string         `json:"soft" yaml:"soft"` // 保留给手动整理
}

// TechnicalSkill 技术技能
type TechnicalSkill struct {
	Name     string `json:"name" yaml:"name"`
	Level    string `json:"level" yaml:"level"`
	Category string `json:"category" yaml:"category"`
}

// LanguageSkill 语言能力
type LanguageSkill struct {
	Name  string `json:"name" yaml:"name"`
	Level string `json:"level" yaml:"level"`
}

// SkillCategoryTechnical 技术技能分类
const SkillCategoryTechnical = "technical"

// ========== Projects ==========

// Project 项目
type Project struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	StartDate    string   `json:"startDate" yaml:"startDate"`
	EndDate      string   `json:"endDate" yaml:"endDate"`
	URL          string   `json:"url" yaml:"url"`
	Image        string   `json:"image" yaml:"image"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Category     string   `json:"category" yaml:"category"`
}

// ========== Certifications ==========

// Certification 证书
type Certification struct {
	Name        string `json:"name" yaml:"name"`
	Issuer      string `json:"issuer" yaml:"issuer"`
	Date        string `json:"date" yaml:"date"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

// ========== Stats ==========

// Stats 各分类条目数量
type Stats struct {
	Experience     int `json:"experience"`
	Education      int `json:"education"`
	Skills         int `json:"skills"`
	Languages      int `json:"languages"`
	Certifications int `json:"certifications"`
	Projects       int `json:"projects"`
}

// Stats 统计文档中各分类的数量
func (p *Portfolio) Stats() Stats {
	return Stats{
		Experience:     len(p.Experience),
		Education:      len(p.Education),
		Skills:         len(p.Skills.Technical),
		Languages:      len(p.Skills.Languages),
		Certifications: len(p.Certifications),
		Projects:       len(p.Projects),
	}
}

// ========== Scraped profile ==========

// ScrapedProfile 从公开LinkedIn页面抓取的部分资料
type ScrapedProfile struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Location string `json:"location" yaml:"location"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	About    string `json:"about" yaml:"about"`
}

// ScrapedDocument 抓取结果文档，需要用户手动合并到作品集
type ScrapedDocument struct {
	Profile ScrapedProfile `json:"profile" yaml:"profile"`
}
