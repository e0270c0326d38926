// Package session handles saving/loading the signed-in user to/from the
// cookie session.
package session

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/sessions"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

const sessionName = "sessionid"

var sessionStore *sessions.CookieStore

// InitSessionStorage starts up session storage or crashes the program with
// an error.
func InitSessionStorage() {
	secretKey := os.Getenv("SECRET_KEY")

	if len(secretKey) == 0 {
		fmt.Fprintf(os.Stderr, "No SECRET_KEY variable set!\n")
		os.Exit(1)
	}

	sessionStore = sessions.NewCookieStore([]byte(secretKey))
}

// LoadUser reads the signed-in user from the request's session.
func LoadUser(request *http.Request) (model.User, bool) {
	session, err := sessionStore.Get(request, sessionName)

	if err != nil {
		return model.User{}, false
	}

	email, ok := session.Values["email"].(string)

	if !ok || email == "" {
		return model.User{}, false
	}

	name, _ := session.Values["name"].(string)
	planValue, _ := session.Values["plan"].(string)
	plan, err := model.ParsePlan(planValue)

	if err != nil {
		plan = model.PlanFree
	}

	return model.User{Email: email, Name: name, Plan: plan}, true
}

// SaveUser stores the user in the session cookie.
func SaveUser(writer http.ResponseWriter, request *http.Request, user model.User) error {
	session, _ := sessionStore.Get(request, sessionName)
	session.Values["email"] = user.Email
	session.Values["name"] = user.Name
	session.Values["plan"] = string(user.Plan)

	return session.Save(request, writer)
}

// Clear wipes the session, signing the user out.
func Clear(writer http.ResponseWriter, request *http.Request) error {
	session, _ := sessionStore.Get(request, sessionName)

	for key := range session.Values {
		delete(session.Values, key)
	}

	return session.Save(request, writer)
}
