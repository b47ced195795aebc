package domain

// Page is the closed set of abstract page identifiers the web client
// navigates between. Keeping it a typed enumeration (rather than ad hoc
// strings) lets the route table stay exhaustive in one place.
type Page string

const (
	PageHome                Page = "home"
	PageCreators            Page = "creators"
	PageLogin               Page = "login"
	PageCoins               Page = "coins"
	PagePaymentSummary      Page = "payment-summary"
	PagePaymentGateway      Page = "payment-gateway"
	PagePayUCallback        Page = "payu-callback"
	PageCreatorRegistration Page = "creator-registration"
	PageAbout               Page = "about"
	PageGuidelines          Page = "guidelines"
	PagePrivacy             Page = "privacy"
	PageTerms               Page = "terms"
	PageRefund              Page = "refund"
	PageSafety              Page = "safety"
	PageSupport             Page = "support"
	PageProducts            Page = "products"
	PagePricing             Page = "pricing"
	PageApp                 Page = "app"
)

// pagePaths is the canonical page -> route table.
var pagePaths = map[Page]string{
	PageHome:                "/",
	PageCreators:            "/creators",
	PageLogin:               "/login",
	PageCoins:               "/coins",
	PagePaymentSummary:      "/payment-summary",
	PagePaymentGateway:      "/payment-gateway",
	PagePayUCallback:        "/payu/callback",
	PageCreatorRegistration: "/creator-registration",
	PageAbout:               "/about",
	PageGuidelines:          "/guidelines",
	PagePrivacy:             "/privacy",
	PageTerms:               "/terms",
	PageRefund:              "/refund",
	PageSafety:              "/safety",
	PageSupport:             "/support",
	PageProducts:            "/products",
	PagePricing:             "/pricing",
	PageApp:                 "/app",
}

// bareChromePaths lists routes rendered without the surrounding
// header/footer chrome. A static deny table, not computed.
var bareChromePaths = map[string]bool{
	"/login":           true,
	"/coins":           true,
	"/payment-summary": true,
	"/payment-gateway": true,
	"/payu/callback":   true,
}

// PageFromSlug maps an identifier string to a Page. Unknown identifiers
// fall back to home; navigation never fails.
func PageFromSlug(slug string) Page {
	p := Page(slug)
	if _, ok := pagePaths[p]; ok {
		return p
	}
	return PageHome
}

// Path returns the concrete route for a page. Unknown pages map to "/".
func (p Page) Path() string {
	if path, ok := pagePaths[p]; ok {
		return path
	}
	return "/"
}

// Resolve applies the access policy to a navigation target:
// the coins page requires a session, and a logged-in user asking for the
// login page is sent to coins instead. Every other target passes through.
func Resolve(target Page, authenticated bool) Page {
	if target == PageCoins && !authenticated {
		return PageLogin
	}
	if target == PageLogin && authenticated {
		return PageCoins
	}
	return target
}

// HideChrome reports whether the given route suppresses header and footer.
func HideChrome(path string) bool {
	return bareChromePaths[path]
}
