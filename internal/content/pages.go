// Package content holds the fixed copy for the static informational and
// legal pages. Copy is plain text; layout and styling live with the
// templates.
package content

import "github.com/Biffle-Ltd/biffle-chat-web/domain"

// PageCopy is one static page's renderable content.
type PageCopy struct {
	Title string
	Body  string
}

// PlayStoreURL is where /app sends visitors.
const PlayStoreURL = "https://play.google.com/store/apps/details?id=ai.biffle"

// Static maps the static-content pages to their copy.
var Static = map[domain.Page]PageCopy{
	domain.PageHome: {
		Title: "Biffle — Meet your favorite creators",
		Body:  "Discover amazing creators, buy coins, and enjoy exclusive interactions.",
	},
	domain.PageCreators: {
		Title: "Create on Biffle",
		Body:  "Share your content, connect with fans, and monetize your passion.",
	},
	domain.PageAbout: {
		Title: "About Us",
		Body:  "Biffle connects fans with creators through live, one-to-one experiences.",
	},
	domain.PageGuidelines: {
		Title: "Community Guidelines",
		Body:  "Our community standards for creators and fans.",
	},
	domain.PagePrivacy: {
		Title: "Privacy Policy",
		Body:  "How Biffle collects, uses, and protects your information.",
	},
	domain.PageTerms: {
		Title: "Terms of Service",
		Body:  "The terms governing your use of Biffle.",
	},
	domain.PageRefund: {
		Title: "Refund Policy",
		Body:  "When and how coin purchases are refunded.",
	},
	domain.PageSafety: {
		Title: "Safety",
		Body:  "Tools and practices that keep interactions on Biffle safe.",
	},
	domain.PageSupport: {
		Title: "Contact Us",
		Body:  "Reach our support team for help with your account or purchases.",
	},
	domain.PageProducts: {
		Title: "Products & Services",
		Body:  "Coins, creator interactions, and everything else Biffle offers.",
	},
	domain.PagePricing: {
		Title: "Pricing",
		Body:  "Coin packages and what they cost.",
	},
}
