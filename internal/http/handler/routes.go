package handler

import "net/http"

// Routes registers every page and API route on a new mux. Sign in and the
// signed-in account routes refuse a session whose user was deleted; every
// other route signs such a session out and carries on.
func Routes(accounts *AccountHandler, pages *PageHandler, static http.Handler, guard SessionGuard) *http.ServeMux {
	mux := http.NewServeMux()

	live := func(h http.HandlerFunc) http.Handler { return guard.RequireLiveUser(h) }
	lax := func(h http.Handler) http.Handler { return guard.DropStaleUser(h) }

	mux.Handle(Home, lax(http.HandlerFunc(pages.HandleHome)))
	mux.Handle(Static, lax(static))

	mux.Handle(CreateUser, lax(http.HandlerFunc(accounts.HandleCreateUser)))
	mux.Handle(GetAuthor, lax(http.HandlerFunc(accounts.HandleGetAuthor)))
	mux.Handle(GetAuthorBare, lax(http.HandlerFunc(accounts.HandleGetAuthor)))
	mux.Handle(UpdateUser, live(accounts.HandleUpdateUser))
	mux.Handle(DeleteUser, live(accounts.HandleDeleteUser))

	mux.Handle(SignIn, live(accounts.HandleSignIn))
	mux.Handle(SignOut, lax(http.HandlerFunc(accounts.HandleSignOut)))

	mux.Handle(CatchAll, lax(http.HandlerFunc(pages.HandleNotFound)))

	return mux
}
