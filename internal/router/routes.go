package router

const (
	PathRoot          = ""
	PathDashboard     = "dashboard"
	PathSignIn        = "signin"
	PathSignUp        = "signup"
	PathMyAccounts    = "myaccounts"
	PathStatements    = "statements"
	PathCreateAccount = "createaccount"
	PathTransfer      = "transfer"
	PathProfile       = "profile"
)

// ParamAccountNumber preselects an account on pages that list statements.
const ParamAccountNumber = "accountNumber"

// Route is static navigation metadata for one path.
type Route struct {
	Path      string
	Label     string
	IconClass string
	Redirect  string
}

// Routes is the navigation table in display order.
var Routes = []Route{
	{Path: PathRoot, Redirect: PathDashboard},
	{Path: PathDashboard, Label: "Dashboard", IconClass: "oj-ux-ico-home"},
	{Path: PathSignIn, Label: "Sign In", IconClass: "oj-ux-ico-information-s"},
	{Path: PathSignUp, Label: "Sign Up", IconClass: "oj-ux-ico-information-s"},
	{Path: PathMyAccounts, Label: "My Accounts", IconClass: "oj-ux-ico-content-item-list"},
	{Path: PathStatements, Label: "Statements", IconClass: "oj-ux-ico-information-s"},
	{Path: PathCreateAccount, Label: "Create Account", IconClass: "oj-ux-ico-edit-plus"},
	{Path: PathTransfer, Label: "Transfer", IconClass: "oj-ux-ico-transfer-money"},
	{Path: PathProfile, Label: "Profile", IconClass: "oj-ux-ico-user-configuration"},
}

// Lookup finds the route for path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// IsAuthPage reports whether path is one of the pages used to obtain a session.
func IsAuthPage(path string) bool {
	return path == PathSignIn || path == PathSignUp
}

// NavRoutes returns the routes shown in the navigation bar.
func NavRoutes() []Route {
	var out []Route
	for _, r := range Routes {
		if r.Redirect != "" || IsAuthPage(r.Path) {
			continue
		}
		out = append(out, r)
	}
	return out
}
