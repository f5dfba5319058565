package main

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/krugerlabs/taskdash/apiclient"
	"github.com/krugerlabs/taskdash/core/authsession"
	"github.com/krugerlabs/taskdash/core/logger"
)

const credentialCookie = "accessToken"

var loginTmpl = template.Must(template.New("login").Parse(`<!doctype html>
<title>Sign in</title>
<h1>Sign in</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <input name="email" type="email" placeholder="Email" required>
  <input name="password" type="password" placeholder="Password" required>
  <button type="submit">Sign in</button>
</form>`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!doctype html>
<title>Dashboard</title>
<h1>Welcome, {{.Username}}</h1>
<form method="post" action="/logout"><button type="submit">Sign out</button></form>
<h2>Projects</h2>
<ul>{{range .Projects}}<li>{{.Name}}</li>{{else}}<li>No projects yet.</li>{{end}}</ul>
<h2>Tasks</h2>
<ul>{{range .Tasks}}<li>{{.Title}} ({{.Status}})</li>{{else}}<li>No tasks yet.</li>{{end}}</ul>`))

// handlers owns the page endpoints. Every request builds its view through
// the session service; the service reads credentials from the store, while
// the route guard upstream has already consulted only the cookie.
type handlers struct {
	session  *authsession.Service
	projects *apiclient.ProjectService
	tasks    *apiclient.TaskService
	log      *slog.Logger
}

func (h *handlers) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /login", h.loginPage)
	mux.HandleFunc("POST /login", h.loginSubmit)
	mux.HandleFunc("POST /logout", h.logout)
	mux.HandleFunc("GET /dashboard", h.dashboard)
}

func (h *handlers) loginPage(w http.ResponseWriter, r *http.Request) {
	state := h.session.State()
	h.render(w, loginTmpl, map[string]any{"Error": state.Error})
}

func (h *handlers) loginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	creds := authsession.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := h.session.Login(ctx, creds); err != nil {
		h.log.WarnContext(ctx, "login failed",
			logger.UserEmail(creds.Email), logger.Error(err))
		h.render(w, loginTmpl, map[string]any{"Error": h.session.State().Error})
		return
	}

	// The cookie write is separate from the store write inside Login; the
	// two can diverge if either side fails after the other succeeded.
	http.SetCookie(w, &http.Cookie{
		Name:     credentialCookie,
		Value:    h.session.State().Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// 303 so the browser follows with a GET; the guard's own redirects
	// stay 307 because they only ever reroute navigations.
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     credentialCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.session.Initialize(ctx)
	state := h.session.State()
	if !state.IsAuthenticated || state.User == nil {
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
		return
	}

	projects, err := h.projects.List(ctx)
	if err != nil {
		h.handleAPIError(w, r, err, "list projects")
		return
	}
	tasks, err := h.tasks.List(ctx, apiclient.TaskFilters{})
	if err != nil {
		h.handleAPIError(w, r, err, "list tasks")
		return
	}

	h.render(w, dashboardTmpl, map[string]any{
		"Username": state.User.Username,
		"Projects": projects,
		"Tasks":    tasks,
	})
}

func (h *handlers) handleAPIError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if apiclient.IsUnauthorized(err) {
		// The 401 hook has already cleared the stored credentials; drop
		// the cookie too and send the user back to sign in.
		http.SetCookie(w, &http.Cookie{
			Name: credentialCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true,
		})
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
		return
	}
	h.log.ErrorContext(r.Context(), "backend call failed",
		logger.Event(op), logger.Error(err))
	http.Error(w, "service unavailable", http.StatusBadGateway)
}

func (h *handlers) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.log.Error("render failed", logger.Error(err))
	}
}
