// Package authsession implements the client-side session state machine: how
// a bearer token obtained from the auth gateway becomes, and stops being,
// the application's belief about the current identity.
//
// The service moves through four derived phases (unauthenticated,
// authenticating, authenticated, auth_error) driven by Initialize, Login,
// Register, Logout, and SetToken. Identity is always recomputed from the
// token; nothing caches a second copy of the user that could drift.
//
//	store := credstore.NewFile(path)
//	session := authsession.New(store, gateway, authsession.WithLogger(log))
//
//	session.Initialize(ctx)
//	if err := session.Login(ctx, authsession.Credentials{Email: email, Password: pass}); err != nil {
//		// err is also recorded in session.State().Error for the form
//	}
//
// Two trust checks exist in the application and they read different storage:
// this service reads the token slot, while the route guard reads the request
// cookie. Neither is a cache of the other, and the pair can disagree during
// the windows where only one has been written. See the middleware package
// for the guard's side of that contract.
package authsession
