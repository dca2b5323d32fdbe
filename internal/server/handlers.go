package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Emynado01/portfolio/internal/contact"
	"github.com/Emynado01/portfolio/internal/content"
	"github.com/Emynado01/portfolio/internal/view"
)

// pageData is everything the templates read for one render.
type pageData struct {
	State        view.State
	Views        []view.View
	Profile      content.Profile
	ProjectCount int
	SkillGroups  []content.SkillGroup
	Experiences  []content.Experience
	Projects     []content.Project
	Filters      []content.Filter
	Modal        contact.Snapshot
}

func (s *Server) routes(r *gin.RouterGroup) {
	r.GET("/", s.handleIndex)
	r.POST("/view/:view", s.handleSelectTab)
	r.POST("/projects/filter", s.handleFilter)
	r.POST("/theme/toggle", s.handleToggleTheme)

	r.POST("/contact/open", s.handleOpenModal)
	r.POST("/contact/close", s.handleCloseModal)
	r.POST("/contact/field", s.handleUpdateField)
	r.POST("/contact/submit", s.handleSubmit)
	r.GET("/contact/status", s.handleStatus)
}

func (s *Server) page(session *Session) pageData {
	state := session.State()
	return pageData{
		State:        state,
		Views:        view.Views,
		Profile:      s.content.Profile(),
		ProjectCount: s.content.ProjectCount(),
		SkillGroups:  s.content.SkillGroups(),
		Experiences:  s.content.Experiences(),
		Projects:     content.VisibleProjects(s.content.Projects(), state.Filter),
		Filters:      content.Filters,
		Modal:        session.Form().Snapshot(),
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page(currentSession(c)))
}

func (s *Server) handleSelectTab(c *gin.Context) {
	v, err := view.ParseView(c.Param("view"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	session := currentSession(c)
	session.Apply(func(st view.State) view.State { return view.SelectTab(st, v) })
	c.HTML(http.StatusOK, "app", s.page(session))
}

func (s *Server) handleFilter(c *gin.Context) {
	f, err := content.ParseFilter(c.PostForm("filter"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	session := currentSession(c)
	session.Apply(func(st view.State) view.State { return view.SetFilter(st, f) })
	c.HTML(http.StatusOK, "projects", s.page(session))
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	session := currentSession(c)
	session.Apply(view.ToggleTheme)
	c.HTML(http.StatusOK, "app", s.page(session))
}

func (s *Server) handleOpenModal(c *gin.Context) {
	session := currentSession(c)
	if session.State().View != view.Contact {
		c.String(http.StatusConflict, "the contact form opens from the contact view")
		return
	}
	session.Form().Open()
	c.HTML(http.StatusOK, "modal", session.Form().Snapshot())
}

func (s *Server) handleCloseModal(c *gin.Context) {
	form := currentSession(c).Form()
	form.CloseModal()
	c.HTML(http.StatusOK, "modal", form.Snapshot())
}

func (s *Server) handleUpdateField(c *gin.Context) {
	field, err := contact.ParseField(c.PostForm("field"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	err = currentSession(c).Form().UpdateField(field, c.PostForm(string(field)))
	switch {
	case errors.Is(err, contact.ErrModalClosed):
		c.String(http.StatusConflict, err.Error())
	case err != nil:
		c.String(http.StatusBadRequest, err.Error())
	default:
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleSubmit(c *gin.Context) {
	session := currentSession(c)
	form := session.Form()

	for _, field := range []contact.Field{contact.FieldName, contact.FieldEmail, contact.FieldSubject} {
		value, ok := c.GetPostForm(string(field))
		if !ok {
			continue
		}
		if err := form.UpdateField(field, value); err != nil {
			s.renderStatus(c, http.StatusConflict, form.Snapshot())
			return
		}
	}

	_, err := form.Submit()
	switch {
	case errors.Is(err, contact.ErrModalClosed):
		s.renderStatus(c, http.StatusConflict, form.Snapshot())
		return
	case errors.Is(err, contact.ErrInvalidEmail):
		s.log.WithFields(map[string]any{"session": session.ID}).Debug("contact form rejected locally")
	case errors.Is(err, contact.ErrSubmitInProgress):
		s.log.WithFields(map[string]any{"session": session.ID}).Debug("duplicate submit ignored")
	}
	s.renderStatus(c, http.StatusOK, form.Snapshot())
}

// handleStatus is polled by the modal while a submission is unresolved.
func (s *Server) handleStatus(c *gin.Context) {
	s.renderStatus(c, http.StatusOK, currentSession(c).Form().Snapshot())
}

// renderStatus returns the status strip, or retargets the whole modal once it has closed.
func (s *Server) renderStatus(c *gin.Context, code int, snap contact.Snapshot) {
	if !snap.Open {
		c.Header("HX-Retarget", "#modal")
		c.Header("HX-Reswap", "outerHTML")
		c.HTML(code, "modal", snap)
		return
	}
	c.HTML(code, "modal-status", snap)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.registry.Len(),
	})
}
