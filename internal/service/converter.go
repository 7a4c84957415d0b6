package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"linkedin-portfolio-go/internal/fetcher"
	"linkedin-portfolio-go/internal/model"
	"linkedin-portfolio-go/internal/utils"
)

// LinkedIn导出文件名
const (
	ProfileFile        = "Profile.csv"
	PositionsFile      = "Positions.csv"
	EducationFile      = "Education.csv"
	SkillsFile         = "Skills.csv"
	CertificationsFile = "Certifications.csv"
	LanguagesFile      = "Languages.csv"
	ProjectsFile       = "Projects.csv"
)

// RequiredFiles 缺失时只警告，不中止
var RequiredFiles = []string{ProfileFile, PositionsFile}

// exportSource 一个导出CSV及其转换函数
type exportSource struct {
	file     string
	required bool
	convert  func(c *Converter, doc *model.Portfolio, table *fetcher.Table)
}

// sources 固定的转换顺序
var sources = []exportSource{
	{ProfileFile, true, (*Converter).convertProfile},
	{PositionsFile, true, (*Converter).convertPositions},
	{EducationFile, false, (*Converter).convertEducation},
	{SkillsFile, false, (*Converter).convertSkills},
	{CertificationsFile, false, (*Converter).convertCertifications},
	{LanguagesFile, false, (*Converter).convertLanguages},
	{ProjectsFile, false, (*Converter).convertProjects},
}

// Converter LinkedIn数据导出(GDPR) → 作品集文档转换器
type Converter struct {
	exportDir string
	reader    fetcher.TableReader
	locale    model.Locale
	logger    *zap.Logger
	progress  io.Writer
}

// NewConverter 创建转换器。reader为nil时使用默认CSV读取器，progress为nil时不输出进度
func NewConverter(exportDir string, reader fetcher.TableReader, locale model.Locale, logger *zap.Logger, progress io.Writer) *Converter {
	if reader == nil {
		reader = fetcher.NewCSVReader()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Converter{
		exportDir: exportDir,
		reader:    reader,
		locale:    locale,
		logger:    logger,
		progress:  progress,
	}
}

// MissingRequired 返回缺失的必需文件
func (c *Converter) MissingRequired() []string {
	var missing []string
	for _, name := range RequiredFiles {
		if !c.fileExists(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Convert 按固定顺序转换所有存在的CSV文件。
// 文件不存在时跳过；必需文件存在但无法读取时返回错误，可选文件无法读取时记录警告并跳过。
func (c *Converter) Convert() (*model.Portfolio, error) {
	doc := model.NewPortfolio()

	for _, src := range sources {
		if !c.fileExists(src.file) {
			c.logger.Debug("Source not present, skipping", zap.String("file", src.file))
			continue
		}

		if msg, ok := c.locale.Text.Progress[src.file]; ok {
			fmt.Fprintln(c.progress, msg)
		}

		table, err := c.reader.ReadFile(c.path(src.file))
		if err != nil {
			if src.required {
				return nil, fmt.Errorf("failed to convert %s: %w", src.file, err)
			}
			c.logger.Warn("Optional source unavailable", zap.String("file", src.file), zap.Error(err))
			continue
		}
		if table.Encoding != "" && table.Encoding != fetcher.DefaultEncodings[0].Name {
			c.logger.Info("Decoded with fallback encoding",
				zap.String("file", src.file),
				zap.String("encoding", table.Encoding))
		}

		src.convert(c, doc, table)
		c.logger.Debug("Source converted", zap.String("file", src.file), zap.Int("rows", len(table.Rows)))
	}

	return doc, nil
}

func (c *Converter) path(name string) string {
	return filepath.Join(c.exportDir, name)
}

func (c *Converter) fileExists(name string) bool {
	_, err := os.Stat(c.path(name))
	return !errors.Is(err, os.ErrNotExist)
}

func (c *Converter) fullDate(value string) string {
	return utils.FormatLinkedInDate(value, utils.DateFull, c.locale.Months)
}

func (c *Converter) yearDate(value string) string {
	return utils.FormatLinkedInDate(value, utils.DateYearOnly, c.locale.Months)
}

// convertProfile 只取第一行
func (c *Converter) convertProfile(doc *model.Portfolio, table *fetcher.Table) {
	if len(table.Rows) == 0 {
		return
	}
	row := table.Rows[0]
	l := c.locale

	doc.Profile = model.Profile{
		Name:     row.Field("First Name", "") + " " + row.Field("Last Name", ""),
		Title:    row.Field("Headline", l.DefaultTitle),
		Location: row.Field("Geo Location", l.DefaultLocation),
		Email:    row.Field("Email Address", l.DefaultEmail),
		Phone:    l.PhonePlaceholder,
		LinkedIn: utils.LinkedInProfileURL(row.Field("Public Profile URL", "")),
		GitHub:   "",
		Website:  row.Field("Websites", ""),
		Photo:    l.PhotoPlaceholder,
		About:    row.Field("Summary", l.DefaultAbout),
	}
}

func (c *Converter) convertPositions(doc *model.Portfolio, table *fetcher.Table) {
	l := c.locale
	for _, row := range table.Rows {
		finishedOn := row.Field("Finished On", "")
		current := finishedOn == ""

		endDate := l.Present
		if !current {
			endDate = c.fullDate(finishedOn)
		}

		doc.Experience = append(doc.Experience, model.Experience{
			Position:     row.Field("Title", l.DefaultPosition),
			Company:      row.Field("Company Name", l.DefaultCompany),
			Location:     row.Field("Location", ""),
			StartDate:    c.fullDate(row.Field("Started On", "")),
			EndDate:      endDate,
			Current:      current,
			Description:  row.Field("Description", ""),
			Achievements: []string{},
		})
	}
}

func (c *Converter) convertEducation(doc *model.Portfolio, table *fetcher.Table) {
	l := c.locale
	for _, row := range table.Rows {
		doc.Education = append(doc.Education, model.Education{
			Degree:      row.Field("Degree Name", l.DefaultDegree),
			Institution: row.Field("School Name", l.DefaultInstitution),
			Location:    "",
			StartDate:   c.yearDate(row.Field("Start Date", "")),
			EndDate:     c.yearDate(row.Field("End Date", "")),
			Description: row.Field("Notes", ""),
		})
	}
}

// convertSkills 导出不含熟练度，全部归入technical，之后手动整理
func (c *Converter) convertSkills(doc *model.Portfolio, table *fetcher.Table) {
	for _, row := range table.Rows {
		name := row.Field("Name", "")
		if name == "" {
			continue
		}
		doc.Skills.Technical = append(doc.Skills.Technical, model.TechnicalSkill{
			Name:     name,
			Level:    c.locale.DefaultSkillLevel,
			Category: model.SkillCategoryTechnical,
		})
	}
}

func (c *Converter) convertCertifications(doc *model.Portfolio, table *fetcher.Table) {
	l := c.locale
	for _, row := range table.Rows {
		doc.Certifications = append(doc.Certifications, model.Certification{
			Name:        row.Field("Name", l.DefaultCertName),
			Issuer:      row.Field("Authority", l.DefaultIssuer),
			Date:        c.fullDate(row.Field("Started On", "")),
			URL:         row.Field("Url", ""),
			Description: "",
		})
	}
}

func (c *Converter) convertLanguages(doc *model.Portfolio, table *fetcher.Table) {
	l := c.locale
	for _, row := range table.Rows {
		doc.Skills.Languages = append(doc.Skills.Languages, model.LanguageSkill{
			Name:  row.Field("Name", l.DefaultLanguage),
			Level: row.Field("Proficiency", l.DefaultSkillLevel),
		})
	}
}

func (c *Converter) convertProjects(doc *model.Portfolio, table *fetcher.Table) {
	l := c.locale
	for _, row := range table.Rows {
		doc.Projects = append(doc.Projects, model.Project{
			Title:        row.Field("Title", l.DefaultProject),
			Description:  row.Field("Description", ""),
			StartDate:    c.fullDate(row.Field("Started On", "")),
			EndDate:      c.fullDate(row.Field("Finished On", "")),
			URL:          row.Field("Url", ""),
			Image:        l.ProjectImage,
			Technologies: []string{},
			Category:     l.ProjectCategory,
		})
	}
}
