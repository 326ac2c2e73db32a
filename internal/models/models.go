package models

const (
	TypeLaunchRequest = "LaunchRequest"

	SpeechTypePlainText = "PlainText"

	// ResponseVersion уходит в каждом ответе, какую бы версию ни прислал запрос.
	ResponseVersion = "1.0.0"

	// SessionAttributeAlexaFs всегда присутствует в sessionAttributes со значением null.
	SessionAttributeAlexaFs = "AlexaFs"
)

// Request описывает входящий запрос к навыку.
type Request struct {
	Version string      `json:"version"`
	Session Session     `json:"session"`
	Request RequestBody `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes"`
	User        User           `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string      `json:"userId"`
	Permissions Permissions `json:"permissions"`
	AccessToken string      `json:"accessToken"`
}

type Permissions struct {
	ConsentToken string `json:"consentToken"`
}

// RequestBody описывает сам запрос; Type определяет ветку обработки.
type RequestBody struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	Locale    string `json:"locale"`
}

// Response описывает ответ навыка.
// Nil-значения сериализуются как null: клиенты ожидают ключи даже без данных.
type Response struct {
	Version           string          `json:"version"`
	SessionAttributes map[string]any  `json:"sessionAttributes"`
	Response          ResponsePayload `json:"response"`
}

type ResponsePayload struct {
	ShouldEndSession bool          `json:"shouldEndSession"`
	OutputSpeech     *OutputSpeech `json:"outputSpeech"`
	Reprompt         *Reprompt     `json:"reprompt"`
	Card             *Card         `json:"card"`
}

// OutputSpeech описывает текст, который нужно озвучить. SSML пуст для PlainText.
type OutputSpeech struct {
	Type string  `json:"type"`
	Text string  `json:"text"`
	SSML *string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
