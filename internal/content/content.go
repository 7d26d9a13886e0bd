// Package content loads the read-only records rendered by the portfolio.
package content

import (
	"bytes"
	_ "embed"
	"html/template"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultDocument []byte

var markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// Default returns the embedded portfolio.
func Default() (*Portfolio, error) {
	return Parse(defaultDocument)
}

// Load reads a portfolio document from path, or the embedded one when path is empty.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading content %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "content %s", path)
	}
	return p, nil
}

// Parse decodes, validates, and renders a portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "decoding portfolio")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.render(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks what the templates rely on.
func (p *Portfolio) Validate() error {
	if p.Profile.Name == "" {
		return errors.New("profile.name is required")
	}
	if len(p.Nav) == 0 {
		return errors.New("at least one nav link is required")
	}
	seen := make(map[string]bool, len(p.Nav))
	for _, n := range p.Nav {
		if n.ID == "" || strings.ContainsAny(n.ID, "# ") {
			return errors.Errorf("nav link %q has invalid id %q", n.Name, n.ID)
		}
		if seen[n.ID] {
			return errors.Errorf("duplicate nav id %q", n.ID)
		}
		seen[n.ID] = true
	}

	if len(p.Skills) == 0 {
		return errors.New("at least one skill category is required")
	}
	for _, cat := range p.Skills {
		if len(cat.Skills) == 0 {
			return errors.Errorf("skill category %q is empty", cat.Name)
		}
		for _, s := range cat.Skills {
			if s.Level < 0 || s.Level > 100 {
				return errors.Errorf("skill %q level %d out of range 0..100", s.Name, s.Level)
			}
		}
	}

	titles := make(map[string]bool, len(p.Projects))
	for _, pr := range p.Projects {
		if titles[pr.Title] {
			return errors.Errorf("duplicate project %q", pr.Title)
		}
		titles[pr.Title] = true
	}

	if p.Chat.Greeting == "" || p.Chat.Apology == "" || p.Chat.DefaultReply == "" {
		return errors.New("chat greeting, apology and default_reply are required")
	}
	for _, r := range p.Chat.Replies {
		if len(r.Keywords) == 0 || r.Reply == "" {
			return errors.Errorf("canned reply %q needs keywords and a reply", r.Name)
		}
	}
	return nil
}

func (p *Portfolio) render() error {
	p.Profile.AboutHTML = make([]template.HTML, 0, len(p.Profile.About))
	for i, para := range p.Profile.About {
		h, err := renderMarkdown(para)
		if err != nil {
			return errors.Wrapf(err, "rendering about paragraph %d", i)
		}
		p.Profile.AboutHTML = append(p.Profile.AboutHTML, h)
	}
	for i := range p.Projects {
		h, err := renderMarkdown(p.Projects[i].Description)
		if err != nil {
			return errors.Wrapf(err, "rendering project %q", p.Projects[i].Title)
		}
		p.Projects[i].DescriptionHTML = h
	}
	return nil
}

// renderMarkdown converts trusted authored markdown to HTML. Raw HTML in the
// source is dropped by goldmark's default renderer.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// SectionIDs returns the page section ids in document order: home first,
// then every nav target.
func (p *Portfolio) SectionIDs() []string {
	ids := make([]string, 0, len(p.Nav)+1)
	ids = append(ids, "home")
	for _, n := range p.Nav {
		if n.ID != "home" {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// SkillPanel returns the category shown for tab index, clamping index into range.
func (p *Portfolio) SkillPanel(index int) (SkillCategory, int) {
	if index < 0 {
		index = 0
	}
	if index >= len(p.Skills) {
		index = len(p.Skills) - 1
	}
	return p.Skills[index], index
}

// AllSkills flattens every category, in order, for the tech cloud.
func (p *Portfolio) AllSkills() []Skill {
	var out []Skill
	for _, c := range p.Skills {
		out = append(out, c.Skills...)
	}
	return out
}
