package extension

import "strings"

const (
	CategoryProductivity  = "Productivity"
	CategoryCommunication = "Communication"
	CategoryEntertainment = "Entertainment"
	CategorySocialMedia   = "Social Media"
	CategoryOther         = "Other"
)

var productivityKeywords = []string{
	"github", "gitlab", "bitbucket", "stackoverflow", "docs.", "jira",
	"notion", "trello", "asana", "clickup", "figma", "miro", "dev", "code",
}

var communicationKeywords = []string{
	"gmail", "outlook", "mail", "slack", "teams", "zoom", "meet", "chat",
}

var entertainmentKeywords = []string{
	"youtube", "netflix", "hulu", "disney", "prime", "video", "tv",
	"movie", "game", "play",
}

var socialMediaKeywords = []string{
	"facebook", "twitter", "instagram", "tiktok", "reddit", "linkedin",
	"pinterest", "snapchat", "whatsapp", "social",
}

// Categorize buckets a domain by substring match against the keyword lists,
// checked in productivity, communication, entertainment, social order.
func Categorize(domain string) string {
	d := strings.ToLower(domain)

	for _, kw := range productivityKeywords {
		if strings.Contains(d, kw) {
			return CategoryProductivity
		}
	}
	for _, kw := range communicationKeywords {
		if strings.Contains(d, kw) {
			return CategoryCommunication
		}
	}
	for _, kw := range entertainmentKeywords {
		if strings.Contains(d, kw) {
			return CategoryEntertainment
		}
	}
	for _, kw := range socialMediaKeywords {
		if strings.Contains(d, kw) {
			return CategorySocialMedia
		}
	}
	return CategoryOther
}
