package skill

import "bitbucket.org/sotavant/alexa-skill/internal/models"

// RequestKind is the closed set of request types the skill answers.
type RequestKind int

const (
	KindUnknown RequestKind = iota
	KindLaunch
)

func (k RequestKind) String() string {
	switch k {
	case KindLaunch:
		return models.TypeLaunchRequest
	default:
		return "unknown"
	}
}

// ParseRequestKind maps the wire tag from request.type onto a RequestKind.
func ParseRequestKind(tag string) (RequestKind, error) {
	switch tag {
	case models.TypeLaunchRequest:
		return KindLaunch, nil
	default:
		return KindUnknown, &UnsupportedRequestTypeError{Type: tag}
	}
}
