package folio

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contactThanks   = "Thank you for your message! I'll get back to you soon."
	contactInvalid  = "Please fill in your name, a valid email and a message."
	maxMessageBytes = 5000
)

// handleContact accepts the contact form. Messages are not stored or sent;
// each one is logged with a reference id.
func (a *App) handleContact(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many messages, try again in a minute")
	}

	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	message := strings.TrimSpace(c.FormValue("message"))

	flash := contactThanks
	if _, err := mail.ParseAddress(email); err != nil || name == "" || message == "" || len(message) > maxMessageBytes {
		flash = contactInvalid
	} else {
		ref := uuid.NewString()
		c.Logger().Infof("contact %s: message from %q <%s>, %d bytes", ref, name, email, len(message))
	}

	if err := addFlash(c, flash); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/#contact")
}

// handleTheme switches to the next supported theme and redirects back.
func (a *App) handleTheme(c echo.Context) error {
	next := a.nextTheme(a.theme(c))
	if err := setTheme(c, next); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, localPath(c.FormValue("return")))
}

// localPath keeps redirects on this site.
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}
