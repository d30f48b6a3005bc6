package domain

// Typed identifiers, one per entity kind. They are opaque strings end to end
// (MongoDB hex IDs, ULIDs and legacy client-generated IDs all fit), but the
// distinct types keep a DayID from ever being passed where an ExerciseID is
// expected.
type (
	RoutineID        string
	DayID            string
	ExerciseID       string
	SessionID        string
	LoggedExerciseID string
	SetID            string
	EntryID          string
	RecipeID         string
)

func (id RoutineID) String() string        { return string(id) }
func (id DayID) String() string            { return string(id) }
func (id ExerciseID) String() string       { return string(id) }
func (id SessionID) String() string        { return string(id) }
func (id LoggedExerciseID) String() string { return string(id) }
func (id SetID) String() string            { return string(id) }
func (id EntryID) String() string          { return string(id) }
func (id RecipeID) String() string         { return string(id) }
