package parser

import (
	"regexp"

	"chat-stats/domain"
)

// authored splits "<author>: <message>" on the first colon-space of the first line.
var authored = regexp.MustCompile(`(?s)^(?P<author>[^\n]+?):\s(?P<message>.*)$`)

var (
	authorGroup  = authored.SubexpIndex("author")
	messageGroup = authored.SubexpIndex("message")
)

// Classify separates the author from the message. A body without the delimiter
// is a system notification and keeps its whole text as message.
func Classify(body string) (author, message string) {
	parts := authored.FindStringSubmatch(body)
	if parts == nil {
		return domain.Notification, body
	}
	return parts[authorGroup], parts[messageGroup]
}
