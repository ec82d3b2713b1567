package telegram

import "time"

const (
	LogPrefixWebhook = "agenda.delivery.telegram.HandleWebhook"
	LogPrefixProcess = "agenda.delivery.telegram.processMessage"
)

const (
	defaultBackendWait = 30 * time.Second

	modeMarkdown = "Markdown"
)

// Bot commands. Free text outside these goes through the NLP parser.
const (
	CmdStart       = "/start"
	CmdHelp        = "/ayuda"
	CmdNew         = "/nuevo"
	CmdCancel      = "/cancelar"
	CmdAgenda      = "/agenda"
	CmdToday       = "/hoy"
	CmdDelete      = "/eliminar"
	CmdComplete    = "/completar"
	CmdSupplements = "/suplementos"
	CmdTook        = "/tome"
)

// Default listing windows, in days from today.
const (
	agendaWindowDays = 7
	todayWindowDays  = 1
)

const ReplyWelcome = "👋 Hola, soy tu asistente de agenda.\n\n" +
	"Escribime como le hablarías a una persona:\n" +
	"_\"Reunión con Juan mañana a las 3pm\"_\n" +
	"_\"Qué tengo esta semana?\"_\n" +
	"_\"Cancelá el turno del dentista\"_\n\n" +
	"Comandos:\n" +
	"/nuevo crear un evento paso a paso\n" +
	"/agenda ver los próximos 7 días\n" +
	"/hoy ver solo hoy\n" +
	"/eliminar borrar un evento\n" +
	"/completar marcar un evento como hecho\n" +
	"/suplementos plan de suplementos de hoy\n" +
	"/tome registrar una toma\n" +
	"/cancelar cortar lo que estemos haciendo"

const (
	ReplyUnknownCommand  = "No conozco ese comando. Mandá /ayuda para ver la lista."
	ReplyNothingToCancel = "No había nada en curso."
	ReplyUnparseable     = "No entendí el mensaje 😅. Probá de nuevo con algo como \"Dentista el lunes a las 10\" o usá /nuevo."
	ReplyOffTopic        = "Eso se escapa de lo mío: solo manejo tu agenda 🙂. Mandá /ayuda para ver qué puedo hacer."
	ReplyInternalError   = "Algo salió mal de mi lado. Probá de nuevo en un rato."
	ReplyBackendError    = "No pude hablar con el calendario 😕. Probá de nuevo en unos minutos."

	ReplyCompleteUsage = "Decime cuál: /completar <parte del título>."
	ReplyTookUsage     = "Decime cuál: /tome <nombre del suplemento>."

	ReplyNotFoundTemplate  = "No encontré ningún evento que coincida con \"%s\" en los próximos días."
	ReplyDeletedTemplate   = "🗑️ Listo, eliminé *%s*."
	ReplyCompletedTemplate = "✔️ Marqué *%s* como hecho."

	ReplyEmptyAgenda = "🗓 No tenés nada agendado en ese rango. Día libre 🎉"

	ReplySupplementsDisabled = "No tenés suplementos configurados."
	ReplyUnknownSupplement   = "No encontré ese suplemento en tu plan. Mandá /suplementos para ver la lista."
)
