package model

import (
	"fmt"
	"sort"
	"strings"
)

// Locale 本地化文本：月份名、"至今"标签和各字段默认值
type Locale struct {
	Code string

	// Months 下标0不使用，1-12对应日历月份
	Months  [13]string
	Present string

	DefaultTitle       string
	DefaultLocation    string
	DefaultEmail       string
	DefaultAbout       string
	PhonePlaceholder   string
	PhotoPlaceholder   string
	DefaultPosition    string
	DefaultCompany     string
	DefaultDegree      string
	DefaultInstitution string
	DefaultSkillLevel  string
	DefaultCertName    string
	DefaultIssuer      string
	DefaultLanguage    string
	DefaultProject     string
	ProjectImage       string
	ProjectCategory    string

	// 抓取失败时的占位文本
	NameNotFound     string
	TitleNotFound    string
	LocationNotFound string

	Text Narration
}

// Narration 命令行进度与统计输出文本
type Narration struct {
	// Progress 按导出文件名索引的进度提示
	Progress map[string]string

	Banner           string
	SourceDir        string // 格式: 目录
	MissingFiles     string // 格式: 文件列表
	MissingFilesHint string
	Saved            string // 格式: 输出文件
	Summary          string
	Experience       string
	Education        string
	Skills           string
	Languages        string
	Certifications   string
	Projects         string
	Done             string
	NextSteps        string
	NextReview       string // 格式: 输出文件
	NextImport       string
}

// LocaleFR 法语（默认）
var LocaleFR = Locale{
	Code: "fr",
	Months: [13]string{"", "Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre"},
	Present: "Présent",

	DefaultTitle:       "Professionnel",
	DefaultLocation:    "France",
	DefaultEmail:       "email@example.com",
	DefaultAbout:       "À propos de moi...",
	PhonePlaceholder:   "+33 X XX XX XX XX",
	PhotoPlaceholder:   "images/profile.jpg",
	DefaultPosition:    "Poste",
	DefaultCompany:     "Entreprise",
	DefaultDegree:      "Diplôme",
	DefaultInstitution: "Établissement",
	DefaultSkillLevel:  "Intermédiaire",
	DefaultCertName:    "Certification",
	DefaultIssuer:      "Organisme",
	DefaultLanguage:    "Langue",
	DefaultProject:     "Projet",
	ProjectImage:       "images/project-placeholder.jpg",
	ProjectCategory:    "Professionnel",

	NameNotFound:     "Nom non trouvé",
	TitleNotFound:    "Titre non trouvé",
	LocationNotFound: "Localisation non trouvée",

	Text: Narration{
		Progress: map[string]string{
			"Profile.csv":        "Conversion du profil...",
			"Positions.csv":      "Conversion de l'expérience professionnelle...",
			"Education.csv":      "Conversion de la formation...",
			"Skills.csv":         "Conversion des compétences...",
			"Certifications.csv": "Conversion des certifications...",
			"Languages.csv":      "Conversion des langues...",
			"Projects.csv":       "Conversion des projets...",
		},
		Banner:           "CONVERSION LINKEDIN EXPORT -> PORTFOLIO",
		SourceDir:        "Dossier source : %s",
		MissingFiles:     "Fichiers manquants : %s",
		MissingFilesHint: "Vérifiez que vous avez bien sélectionné ces catégories lors de l'export",
		Saved:            "Données sauvegardées dans : %s",
		Summary:          "Statistiques :",
		Experience:       "Expériences",
		Education:        "Formations",
		Skills:           "Compétences",
		Languages:        "Langues",
		Certifications:   "Certifications",
		Projects:         "Projets",
		Done:             "Conversion terminée avec succès !",
		NextSteps:        "Prochaines étapes :",
		NextReview:       "Vérifiez et complétez les données dans %s (téléphone, réalisations, images...)",
		NextImport:       "Importez-les dans le portfolio ou remplacez data.json",
	},
}

// LocaleEN 英语
var LocaleEN = Locale{
	Code: "en",
	Months: [13]string{"", "January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	Present: "Present",

	DefaultTitle:       "Professional",
	DefaultLocation:    "France",
	DefaultEmail:       "email@example.com",
	DefaultAbout:       "About me...",
	PhonePlaceholder:   "+33 X XX XX XX XX",
	PhotoPlaceholder:   "images/profile.jpg",
	DefaultPosition:    "Position",
	DefaultCompany:     "Company",
	DefaultDegree:      "Degree",
	DefaultInstitution: "Institution",
	DefaultSkillLevel:  "Intermediate",
	DefaultCertName:    "Certification",
	DefaultIssuer:      "Issuer",
	DefaultLanguage:    "Language",
	DefaultProject:     "Project",
	ProjectImage:       "images/project-placeholder.jpg",
	ProjectCategory:    "Professional",

	NameNotFound:     "Name not found",
	TitleNotFound:    "Title not found",
	LocationNotFound: "Location not found",

	Text: Narration{
		Progress: map[string]string{
			"Profile.csv":        "Converting profile...",
			"Positions.csv":      "Converting positions...",
			"Education.csv":      "Converting education...",
			"Skills.csv":         "Converting skills...",
			"Certifications.csv": "Converting certifications...",
			"Languages.csv":      "Converting languages...",
			"Projects.csv":       "Converting projects...",
		},
		Banner:           "LINKEDIN EXPORT -> PORTFOLIO",
		SourceDir:        "Source directory: %s",
		MissingFiles:     "Missing files: %s",
		MissingFilesHint: "Check that these categories were selected when requesting the export",
		Saved:            "Data saved to: %s",
		Summary:          "Summary:",
		Experience:       "Experience",
		Education:        "Education",
		Skills:           "Skills",
		Languages:        "Languages",
		Certifications:   "Certifications",
		Projects:         "Projects",
		Done:             "Conversion completed",
		NextSteps:        "Next steps:",
		NextReview:       "Review and complete %s (phone, achievements, images...)",
		NextImport:       "Import it into the portfolio store or replace data.json",
	},
}

var locales = map[string]Locale{
	LocaleFR.Code: LocaleFR,
	LocaleEN.Code: LocaleEN,
}

// LookupLocale 按代码查找Locale（大小写不敏感）
func LookupLocale(code string) (Locale, error) {
	l, ok := locales[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Locale{}, fmt.Errorf("unknown locale %q (available: %s)", code, strings.Join(LocaleCodes(), ", "))
	}
	return l, nil
}

// LocaleCodes 返回所有可用的locale代码
func LocaleCodes() []string {
	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
