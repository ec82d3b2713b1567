package conversation

// Wizard prompts
const (
	AskTitle       = "📝 ¿Cómo se llama el evento?"
	AskDate        = "📅 ¿Para qué día? Podés decir \"mañana\", \"lunes\" o \"15/07\"."
	AskTime        = "🕐 ¿A qué hora? Podés decir \"15:00\", \"3pm\" o \"todo el día\"."
	AskDeleteQuery = "🗑️ ¿Qué evento querés eliminar? Decime parte del título."

	ConfirmTemplate = "📋 Revisá el evento:\n\n• Título: %s\n• Fecha: %s\n• Hora: %s\n\n¿Lo agendo? (sí/no)"
)

// Retry replies, sent when input does not match what the step expects
const (
	ReplyBadDate     = "No entendí la fecha. Probá con \"mañana\", \"lunes\" o \"15/07\"."
	ReplyBadTime     = "No entendí la hora. Probá con \"15:00\", \"3pm\" o \"todo el día\"."
	ReplyConfirmHint = "Respondé \"sí\" para agendar o \"no\" para descartar."
)

// Terminal replies
const (
	ReplyCancelled = "Listo, cancelado. No guardé nada."
	ReplyDiscarded = "Ok, descarté el evento."
)

// Disambiguation
const (
	ChoiceHeader        = "🤔 Encontré varios eventos que coinciden:"
	ChoiceFooter        = "¿Cuál? Respondé con el número."
	ReplyChoiceTemplate = "Decime el número (1 a %d) o una parte única del título."
)

var affirmatives = map[string]bool{
	"si":        true,
	"s":         true,
	"dale":      true,
	"ok":        true,
	"confirmo":  true,
	"confirmar": true,
}

var negatives = map[string]bool{
	"no": true,
	"n":  true,
}
