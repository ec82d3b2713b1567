package reminder

import "time"

const (
	LogPrefixStart      = "reminder.Start"
	LogPrefixPending    = "reminder.pingPending"
	LogPrefixRollover   = "reminder.rollover"
	LogPrefixSupplement = "reminder.pingSupplement"
)

const (
	// Every two hours from 06:30 to 22:30.
	DefaultPendingSpec = "30 6-22/2 * * *"

	// Just before midnight, after the day is effectively over.
	DefaultRolloverSpec = "55 23 * * *"

	DefaultRepingDelay = 30 * time.Minute
)

const (
	HeaderPending = "⏳ Todavía te queda esto hoy:"

	ReplyRolledOverTemplate    = "🌙 Te pasé %d evento(s) sin completar para mañana."
	ReplySupplementDueTemplate = "💊 Hora de tomar %s. Avisame con /tome %s."
	ReplySupplementNagTemplate = "⏰ Seguís sin anotar %s. ¿Lo tomaste?"
)
