// Package apiclient is the typed HTTP client for the task management backend.
//
// Client owns the transport concerns every call shares: base URL resolution,
// a request timeout, bearer-token injection from the credential store, and
// the global 401 hook. Service types (AuthService, ProjectService,
// TaskService) are thin wrappers that map endpoints to Go types.
//
//	client, err := apiclient.New(apiclient.Config{BaseURL: "https://api.example.com"}, store)
//	if err != nil {
//		return err
//	}
//	client.OnAuthFailure(func(ctx context.Context) {
//		// clear local credentials; the failed caller still gets its error
//	})
//
//	projects, err := apiclient.NewProjectService(client).List(ctx)
//
// Token injection reads the token slot on every request. A missing token is
// not an error; the request simply goes out unauthenticated and the backend
// answers 401, which triggers the hook. Backend error bodies have the shape
// {"message": "...", "errors": {...}} and are surfaced as *Error; transport
// failures use Status 0.
package apiclient
