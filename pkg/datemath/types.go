package datemath

// Clock is a parsed time-of-day. AllDay marks expressions like
// "todo el día" where no clock time applies.
type Clock struct {
	Hour   int
	Minute int
	AllDay bool
}
