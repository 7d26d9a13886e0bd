package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Tarun-surendra/portfolio/internal/chat"
	"github.com/Tarun-surendra/portfolio/internal/contact"
	"github.com/Tarun-surendra/portfolio/internal/content"
	"github.com/Tarun-surendra/portfolio/internal/nav"
)

const maxChatBodySize = 256 << 10

type skillsView struct {
	Categories []content.SkillCategory
	Active     int
	Category   content.SkillCategory
}

func (s *Server) skills(index int) skillsView {
	cat, idx := s.portfolio.SkillPanel(index)
	return skillsView{Categories: s.portfolio.Skills, Active: idx, Category: cat}
}

type contactView struct {
	Status       string
	Form         contact.Form
	ResetAfterMS int64
}

func newContactView(sub *contact.Submission) contactView {
	return contactView{
		Status:       sub.Status().String(),
		Form:         sub.Form(),
		ResetAfterMS: sub.ResetAfter().Milliseconds(),
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	theme := nav.ThemeFromHint(c.GetHeader(nav.PrefersColorSchemeHeader))
	c.Header("Accept-CH", nav.PrefersColorSchemeHeader)
	c.Header("Vary", nav.PrefersColorSchemeHeader)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"p":              s.portfolio,
		"theme":          theme,
		"themeHinted":    c.GetHeader(nav.PrefersColorSchemeHeader) != "",
		"sections":       s.highlighter.Attr(),
		"threshold":      s.highlighter.Threshold,
		"scrolledOffset": nav.ScrolledOffset,
		"active":         s.highlighter.Active(nil),
		"skills":         s.skills(0),
		"contact":        newContactView(contact.NewSubmission(contact.Form{})),
		"chatMode":       s.chat.Mode(),
		"chatMaxTurns":   chat.MaxTurns,
		"year":           time.Now().Year(),
	})
}

// handleSkills renders the skill panel for one category tab.
func (s *Server) handleSkills(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid skill category")
		return
	}
	c.HTML(http.StatusOK, "skills-panel", s.skills(index))
}

// handleContactForm returns a blank idle form, used when a status display expires.
func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", newContactView(contact.NewSubmission(contact.Form{})))
}

// handleContact relays the form and renders the resulting state. Failures
// still answer 200 so the fragment replaces the form in place.
func (s *Server) handleContact(c *gin.Context) {
	var form contact.Form
	bindErr := c.ShouldBind(&form)
	if bindErr == nil && !form.Complete() {
		bindErr = contact.ErrIncomplete
	}

	sub := contact.NewSubmission(form)
	if bindErr != nil {
		slog.Debug("contact form rejected", "fields", invalidFields(bindErr), "request_id", c.GetString(requestIDHeader))
		if err := sub.Reject(bindErr); err != nil {
			slog.Error("contact form state", "error", err, "request_id", c.GetString(requestIDHeader))
		}
	} else if err := sub.Submit(c.Request.Context(), s.relay, s.toName); err != nil {
		slog.Error("contact relay failed", "error", err, "request_id", c.GetString(requestIDHeader))
	} else {
		slog.Info("contact message relayed", "request_id", c.GetString(requestIDHeader))
	}

	c.HTML(http.StatusOK, "contact-form", newContactView(sub))
}

// invalidFields names the form fields that failed validation, without their values.
func invalidFields(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return fields
}

type chatRequest struct {
	Messages []chat.Turn `json:"messages"`
}

type chatResponse struct {
	Reply string    `json:"reply"`
	Role  chat.Role `json:"role"`
	Mode  string    `json:"mode"`
}

// handleChat answers the transcript held by the browser, cut to its trailing
// window. The server keeps no conversation state.
func (s *Server) handleChat(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxChatBodySize)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	turns := chat.Window(req.Messages)
	if err := chat.Validate(turns); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turn := s.chat.Answer(c.Request.Context(), turns)
	c.JSON(http.StatusOK, chatResponse{Reply: turn.Content, Role: turn.Role, Mode: s.chat.Mode()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "chat_mode": s.chat.Mode()})
}
