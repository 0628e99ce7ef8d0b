package session

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/coursefront/internal/services/web/platform/i18n"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/coursefront/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/coursefront/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	next := requestmeta.LocalPath(r.URL.Query().Get("next"), routepath.Root)
	if h.SignedIn(r) {
		h.Redirect(w, r, next)
		return
	}
	h.writeLoginPage(w, r, next, http.StatusOK)
}

func (h handlers) writeLoginPage(w http.ResponseWriter, r *http.Request, next string, status int) {
	loc := h.Localizer(r)
	h.WritePage(w, r, webi18n.Text(loc, "session.title", "Sign in"), status, webtemplates.LoginPage(webtemplates.LoginView{Next: next, Loc: loc}))
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	next := requestmeta.LocalPath(r.PostForm.Get("next"), routepath.Root)
	notices := flash.FromContext(httpx.RequestContext(r))

	session, err := h.service.signIn(r.Context(), r.PostForm.Get("token"))
	if messages, ok := validationMessages(err); ok {
		for _, message := range messages {
			notices.NotifyError(message)
		}
		h.writeLoginPage(w, r, next, modulehandler.InvalidFormStatus(r))
		return
	}
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	sessioncookie.Write(w, r, session.ID, session.ExpiresAt, h.SchemePolicy())
	notices.NotifySuccess(webi18n.Text(h.Localizer(r), "session.signed_in", "You are signed in."))
	h.Redirect(w, r, next)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := sessioncookie.Read(r); ok {
		if err := h.service.signOut(r.Context(), sessionID); err != nil {
			h.WriteError(w, r, err)
			return
		}
	}
	sessioncookie.Clear(w, r, h.SchemePolicy())
	flash.FromContext(httpx.RequestContext(r)).Info(webi18n.Text(h.Localizer(r), "session.signed_out", "You are signed out."))
	h.Redirect(w, r, routepath.Root)
}
