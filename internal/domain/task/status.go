package task

// Status represents where a Task is in its lifecycle.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// statusRank is the ordering table used by the "status then due date" sort.
var statusRank = map[Status]int{
	StatusTodo:       0,
	StatusInProgress: 1,
	StatusDone:       2,
}

// Statuses returns every status in rank order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank returns the sort position of the status, or -1 for unknown values.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw input into a Status. Names must match exactly, as
// the schema enum lists them, wherever a status is read: JSON bodies, path
// segments and tool arguments. The second return value is false otherwise.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.IsValid()
}
