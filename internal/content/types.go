package content

import "html/template"

// Portfolio is the complete set of static records rendered by the site.
type Portfolio struct {
	Profile        Profile         `yaml:"profile"`
	Nav            []NavLink       `yaml:"nav"`
	Highlights     []Highlight     `yaml:"highlights"`
	Stats          []Stat          `yaml:"stats"`
	Experience     []Job           `yaml:"experience"`
	Skills         []SkillCategory `yaml:"skills"`
	Projects       []Project       `yaml:"projects"`
	Education      []Degree        `yaml:"education"`
	Certifications []Certification `yaml:"certifications"`
	Learning       []string        `yaml:"learning"`
	Contact        []ContactItem   `yaml:"contact"`
	Social         []Link          `yaml:"social"`
	Chat           ChatScript      `yaml:"chat"`
}

// Profile describes the site owner.
type Profile struct {
	Name      string   `yaml:"name"`
	FullName  string   `yaml:"full_name"`
	Title     string   `yaml:"title"`
	Location  string   `yaml:"location"`
	Tagline   string   `yaml:"tagline"`
	Summary   string   `yaml:"summary"`
	Email     string   `yaml:"email"`
	Phone     string   `yaml:"phone"`
	ResumeURL string   `yaml:"resume_url"`
	Photo     string   `yaml:"photo"`
	Available bool     `yaml:"available"`
	About     []string `yaml:"about"`

	// AboutHTML holds the rendered About paragraphs.
	AboutHTML []template.HTML `yaml:"-"`
}

// NavLink is a top navigation entry pointing at a page section.
type NavLink struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// Href returns the in-page anchor for the link.
func (n NavLink) Href() string {
	return "#" + n.ID
}

type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Job is one entry of the experience timeline.
type Job struct {
	Company      string   `yaml:"company"`
	Role         string   `yaml:"role"`
	Location     string   `yaml:"location"`
	Period       string   `yaml:"period"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Skills       []string `yaml:"skills"`
	Current      bool     `yaml:"current"`
}

// TopAchievements returns at most n achievements, in authored order.
func (j Job) TopAchievements(n int) []string {
	if n < 0 {
		n = 0
	}
	if len(j.Achievements) <= n {
		return j.Achievements
	}
	return j.Achievements[:n]
}

// SkillCategory is one tab of the skill panel.
type SkillCategory struct {
	Name   string  `yaml:"name"`
	Skills []Skill `yaml:"skills"`
}

// Skill is a named proficiency expressed as a percentage.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category"`
	Technologies []string `yaml:"technologies"`
	Features     []string `yaml:"features"`
	GitHub       string   `yaml:"github"`
	Demo         string   `yaml:"demo"`
	Accent       string   `yaml:"accent"`

	DescriptionHTML template.HTML `yaml:"-"`
}

type Degree struct {
	Degree       string   `yaml:"degree"`
	Institution  string   `yaml:"institution"`
	Location     string   `yaml:"location"`
	Period       string   `yaml:"period"`
	Status       string   `yaml:"status"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Courses      []string `yaml:"courses"`
}

type Certification struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
	Year   string `yaml:"year"`
}

// ContactItem is a labelled way of reaching the owner.
type ContactItem struct {
	Label  string `yaml:"label"`
	Value  string `yaml:"value"`
	Href   string `yaml:"href"`
	Accent string `yaml:"accent"`
}

// Link is an outbound link such as a social profile.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// ChatScript is the widget's fixed text: greeting, prompts, and canned replies.
type ChatScript struct {
	Greeting     string        `yaml:"greeting"`
	Apology      string        `yaml:"apology"`
	Placeholder  string        `yaml:"placeholder"`
	Suggestions  []string      `yaml:"suggestions"`
	SystemPrompt string        `yaml:"system_prompt"`
	Replies      []CannedReply `yaml:"replies"`
	DefaultReply string        `yaml:"default_reply"`
}

// CannedReply is returned when any of its keywords occurs in a question.
type CannedReply struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}
