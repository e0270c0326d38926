// Package auth defines routes for the demo sign-in, plan upgrades, and
// session inspection.
package auth

import (
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/alioayf27-debug/trackstock/internal/model"
	"github.com/alioayf27-debug/trackstock/internal/route/view"
	"github.com/alioayf27-debug/trackstock/internal/session"
)

// OwnerEmail is the special account that always signs in as the Owner plan.
const OwnerEmail = "owner@trackstock.io"

// Handler holds the auth route configuration.
type Handler struct {
	// OwnerPasswordHash is a bcrypt hash guarding the owner account. When
	// empty the owner login is open, like every other demo account.
	OwnerPasswordHash string
}

// Register mounts the auth routes.
func (handler *Handler) Register(router *mux.Router) {
	router.Handle("/api/login", view.Wrap(view.View{Post: handler.handleLogin}))
	router.Handle("/api/logout", view.Wrap(view.View{Post: handler.handleLogout}))
	router.Handle("/api/session", view.Wrap(view.View{Get: handler.handleSession}))
	router.Handle("/api/plan", view.Wrap(view.View{Post: handler.handleUpgrade}))
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Plan     string `json:"plan" validate:"required"`
	Password string `json:"password"`
}

func (handler *Handler) handleLogin(request *view.Request) any {
	var body loginRequest

	if response := request.BindJSON(&body); response != nil {
		return response
	}

	plan, err := model.ParsePlan(body.Plan)

	if err != nil {
		return view.BadRequest("invalid plan")
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	name := strings.SplitN(email, "@", 2)[0]

	if email == OwnerEmail {
		if handler.OwnerPasswordHash != "" {
			err := bcrypt.CompareHashAndPassword(
				[]byte(handler.OwnerPasswordHash),
				[]byte(body.Password),
			)

			if err != nil {
				return view.Forbidden("invalid owner credentials")
			}
		}

		plan = model.PlanOwner
		name = "The Owner"
		log.Info().Str("email", email).Msg("confirmation email sent for owner account verification")
	}

	user := model.User{Email: email, Name: name, Plan: plan}

	if err := session.SaveUser(request.ResponseWriter(), request.Request, user); err != nil {
		return err
	}

	return user
}

func (handler *Handler) handleLogout(request *view.Request) any {
	if err := session.Clear(request.ResponseWriter(), request.Request); err != nil {
		return err
	}

	return view.OK(map[string]string{"status": "signed out"})
}

func (handler *Handler) handleSession(request *view.Request) any {
	user, ok := session.LoadUser(request.Request)

	if !ok {
		return view.Unauthorized()
	}

	return view.OK(user)
}

type upgradeRequest struct {
	Plan string `json:"plan" validate:"required"`
}

func (handler *Handler) handleUpgrade(request *view.Request) any {
	user, ok := session.LoadUser(request.Request)

	if !ok {
		return view.Unauthorized()
	}

	var body upgradeRequest

	if response := request.BindJSON(&body); response != nil {
		return response
	}

	plan, err := model.ParsePlan(body.Plan)

	if err != nil {
		return view.BadRequest("invalid plan")
	}

	// The owner tier is assigned by sign-in, never by self-upgrade.
	if plan == model.PlanOwner && user.Plan != model.PlanOwner {
		return view.Forbidden("the Owner plan cannot be selected")
	}

	user.Plan = plan

	if err := session.SaveUser(request.ResponseWriter(), request.Request, user); err != nil {
		return err
	}

	return view.OK(user)
}
