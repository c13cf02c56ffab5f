package autoresponse

import "math/rand"

// Kind selects a canned-response pool.
type Kind string

const (
	KindGreeting Kind = "greeting"
	KindFarewell Kind = "farewell"
	KindWait     Kind = "wait"
	KindProblem  Kind = "problem"
)

// Fallback is returned for unknown or empty kinds.
const Fallback = "Desculpe, não entendi."

// Catalog hands out pre-authored acknowledgement strings.
type Catalog interface {
	Sample(kind Kind) string
}

// StaticCatalog picks uniformly at random from fixed per-kind lists.
type StaticCatalog struct {
	responses map[Kind][]string
	pick      func(n int) int
}

// NewStaticCatalog builds a catalog over the given lists.
func NewStaticCatalog(responses map[Kind][]string) *StaticCatalog {
	return &StaticCatalog{responses: responses, pick: rand.Intn}
}

// DefaultResponses returns the built-in Portuguese response lists.
func DefaultResponses() map[Kind][]string {
	return map[Kind][]string{
		KindGreeting: {
			"Olá! Como posso ajudar você hoje?",
			"Bem-vindo ao nosso suporte! Em que posso auxiliar?",
			"Oi! Estou aqui para ajudar. Qual é a sua dúvida?",
		},
		KindFarewell: {
			"Obrigado por entrar em contato! Tenha um ótimo dia!",
			"Foi um prazer ajudar! Até mais!",
			"Se precisar de mais alguma coisa, estamos à disposição!",
		},
		KindWait: {
			"Por favor, aguarde um momento enquanto processo sua solicitação.",
			"Estou analisando sua questão, só um instante.",
			"Aguarde um momento, já estou verificando isso para você.",
		},
		KindProblem: {
			"Sinto muito pelo inconveniente. Vamos investigar esse problema.",
			"Entendi o problema relatado. Nossa equipe já está verificando.",
			"Obrigado por reportar. Estamos analisando a falha agora mesmo.",
		},
	}
}

// Sample returns a uniformly random entry for the kind, or the fallback when
// the kind is unknown.
func (c *StaticCatalog) Sample(kind Kind) string {
	pool := c.responses[kind]
	if len(pool) == 0 {
		return Fallback
	}
	return pool[c.pick(len(pool))]
}
