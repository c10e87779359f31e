// Package speech builds the fixed set of speech response envelopes the bridge
// can return, localized by the request locale.
package speech

import "strings"

// Phrases is the text of every fixed reply in one language.
type Phrases struct {
	Launch          string
	LaunchReprompt  string
	AskQuery        string
	AskReprompt     string
	NotUnderstood   string
	NoAnswer        string
	GenericError    string
	ConfigError     string
	InvalidRequest  string
	Unauthenticated string
}

var portuguese = Phrases{
	Launch:          "Olá! Como posso ajudar?",
	LaunchReprompt:  "Pode me dizer o que você quer saber.",
	AskQuery:        "O que você quer perguntar?",
	AskReprompt:     "Diga a sua pergunta.",
	NotUnderstood:   "Desculpe, não entendi.",
	NoAnswer:        "Não encontrei uma resposta para isso.",
	GenericError:    "Desculpe, ocorreu um erro ao processar o seu pedido.",
	ConfigError:     "O serviço ainda não está configurado.",
	InvalidRequest:  "Pedido inválido.",
	Unauthenticated: "Não foi possível atender a este pedido.",
}

var english = Phrases{
	Launch:          "Hi! How can I help?",
	LaunchReprompt:  "You can tell me what you would like to know.",
	AskQuery:        "What would you like to ask?",
	AskReprompt:     "Please say your question.",
	NotUnderstood:   "Sorry, I did not understand that.",
	NoAnswer:        "I could not find an answer to that.",
	GenericError:    "Sorry, something went wrong while handling your request.",
	ConfigError:     "This service is not configured yet.",
	InvalidRequest:  "Invalid request.",
	Unauthenticated: "This request cannot be handled.",
}

var phrasebook = map[string]Phrases{
	"pt": portuguese,
	"en": english,
}

// For returns the phrases for a BCP-47 locale such as "pt-BR", matching on the
// language part. Unknown or empty locales get English.
func For(locale string) Phrases {
	lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(locale)), "-")
	if p, ok := phrasebook[lang]; ok {
		return p
	}
	return english
}
